// Package paint resolves layer colors and the stroke styles of profile items.
//
// Colors come from the host data as CSS names ("sandybrown") or hex strings
// ("#f4a460", "#fa6"). A color that cannot be parsed leaves the box
// unfilled; its outline is still drawn so the layer stays visible.
package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Black is the outline color of layer boxes.
var Black = color.NRGBA{A: 0xff}

// ParseColor parses a CSS color name or a hex string: "#rgb", "#rrggbb" or
// "#aarrggbb" with alpha first, the way the host GIS writes it. The leading
// "#" is optional.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	digits := strings.TrimPrefix(s, "#")
	if !isHex(digits) {
		return color.NRGBA{}, false
	}
	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return color.NRGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
	case 8:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}
	return color.NRGBA{}, false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style describes how an item is filled and outlined.
type Style struct {
	Fill        color.NRGBA
	HasFill     bool
	Stroke      color.NRGBA
	StrokeWidth float64
	Dash        []float64
}

// BoxStyle returns the style of a layer box with the given fill color.
func BoxStyle(fill string) Style {
	c, ok := ParseColor(fill)
	return Style{Fill: c, HasFill: ok, Stroke: Black, StrokeWidth: 1}
}

// ConnectorStyle returns the style of a connector line. An unparsable color
// falls back to black.
func ConnectorStyle(stroke string, width float64, dash []float64) Style {
	c, ok := ParseColor(stroke)
	if !ok {
		c = Black
	}
	if width <= 0 {
		width = 1
	}
	return Style{Stroke: c, StrokeWidth: width, Dash: dash}
}

// TextStyle returns the style of caption text.
func TextStyle(fill string) Style {
	c, ok := ParseColor(fill)
	if !ok {
		c = Black
	}
	return Style{Fill: c, HasFill: true}
}

// CSS renders the style as an inline SVG style declaration.
func (s Style) CSS() string {
	var b strings.Builder
	if s.HasFill {
		b.WriteString("fill:" + Hex(s.Fill))
		if s.Fill.A != 0xff {
			b.WriteString(";fill-opacity:" + num(float64(s.Fill.A)/0xff))
		}
	} else {
		b.WriteString("fill:none")
	}
	if s.StrokeWidth > 0 {
		b.WriteString(";stroke:" + Hex(s.Stroke))
		b.WriteString(";stroke-width:" + num(s.StrokeWidth))
		if len(s.Dash) > 0 {
			parts := make([]string, len(s.Dash))
			for i, d := range s.Dash {
				parts[i] = num(d)
			}
			b.WriteString(";stroke-dasharray:" + strings.Join(parts, ","))
		}
	}
	return b.String()
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
