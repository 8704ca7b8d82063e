package scene

import (
	"unicode/utf8"

	"golang.org/x/image/font"

	"github.com/geocore/geocore/pkg/fonts"
	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/paint"
)

// Kind identifies the shape of an Item.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// SelectionPad is how far the highlight of a selected item reaches beyond
// its geometry.
const SelectionPad = 3.0

// glyphAspect is the advance of one monospace glyph relative to the font
// size. Used when the caption font cannot be loaded.
const glyphAspect = 0.6

// Item is one drawable element of a scene, in drawing units.
type Item struct {
	Kind   Kind
	HoleID string
	Label  string
	Style  paint.Style

	// Rect is the geometry of a KindRect item.
	Rect geom.Rect

	// Points is the polyline of a KindLine item.
	Points []geom.Point

	// Text, Anchor and FontSize describe a KindText item. The anchor is the
	// bottom-center of the text.
	Text     string
	Anchor   geom.Point
	FontSize float64

	selected bool
}

// Selected reports whether the item is highlighted.
func (it *Item) Selected() bool { return it.selected }

// Bounds returns the area the item covers on screen, including the
// selection highlight when it is selected.
func (it *Item) Bounds() geom.Rect {
	var r geom.Rect
	switch it.Kind {
	case KindRect:
		r = it.Rect.Normalized()
	case KindLine:
		r = geom.Bounds(it.Points)
	case KindText:
		w := textWidth(it.Text, it.FontSize)
		r = geom.R(it.Anchor.X-w/2, it.Anchor.Y-it.FontSize, w, it.FontSize)
	}
	if it.selected {
		r = r.Inflated(SelectionPad)
	}
	return r
}

// textWidth measures s in the caption font at size. SVG output names the
// same font first, and its monospace fallbacks share the advance.
func textWidth(s string, size float64) float64 {
	face, err := fonts.CaptionFace(size)
	if err != nil || size <= 0 {
		return float64(utf8.RuneCountInString(s)) * size * glyphAspect
	}
	defer face.Close()
	return float64(font.MeasureString(face, s)) / 64
}
