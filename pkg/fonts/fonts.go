// Package fonts provides the caption typeface shared by the vector and
// raster sinks.
//
// Raster output draws captions with Go Mono, which ships with
// golang.org/x/image and needs no system fonts. Vector output names the
// same family and falls back to the viewer's monospace font.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// FontFamily is the CSS font-family name of the caption font.
const FontFamily = "Go Mono"

// FallbackFontFamily is the CSS font-family list used in SVG output.
const FallbackFontFamily = `'Go Mono', 'DejaVu Sans Mono', monospace`

// Caption returns the parsed caption font. The result is cached after the
// first call.
var Caption = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// CaptionFace returns a face of the caption font at size points.
func CaptionFace(size float64) (font.Face, error) {
	f, err := Caption()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
