package sink

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/geocore/geocore/pkg/fonts"
	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/paint"
	"github.com/geocore/geocore/pkg/render/profile/scene"
)

type rasterPainter struct {
	dc *gg.Context
}

func (p rasterPainter) Rect(r geom.Rect, s paint.Style) {
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	p.finish(s)
}

func (p rasterPainter) Polyline(pts []geom.Point, s paint.Style) {
	if len(pts) == 0 {
		return
	}
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.finish(paint.Style{Stroke: s.Stroke, StrokeWidth: s.StrokeWidth, Dash: s.Dash})
}

func (p rasterPainter) Text(at geom.Point, text string, size float64, s paint.Style) {
	if size <= 0 {
		return
	}
	face, err := fonts.CaptionFace(size)
	if err != nil {
		return
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(s.Fill)
	p.dc.DrawStringAnchored(text, at.X, at.Y, 0.5, 0)
}

// finish fills and strokes the current path.
func (p rasterPainter) finish(s paint.Style) {
	if s.HasFill {
		p.dc.SetColor(s.Fill)
		p.dc.FillPreserve()
	}
	if s.StrokeWidth <= 0 {
		p.dc.ClearPath()
		return
	}
	p.dc.SetColor(s.Stroke)
	p.dc.SetLineWidth(s.StrokeWidth)
	p.dc.SetDash(s.Dash...)
	p.dc.Stroke()
}

// Rasterize renders s onto a transparent image of the target size rounded
// to whole pixels.
func Rasterize(s *scene.Scene, source, target geom.Rect) image.Image {
	w, h := target.PixelSize()
	dc := gg.NewContext(max(w, 1), max(h, 1))
	s.Render(rasterPainter{dc: dc}, target, source)
	return dc.Image()
}

func isJPEG(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

func exportRaster(s *scene.Scene, name string, source, target geom.Rect, opts Options) error {
	img := Rasterize(s, source, target)

	if isJPEG(name) {
		b := img.Bounds()
		bg := gg.NewContext(b.Dx(), b.Dy())
		bg.SetColor(color.White)
		bg.Clear()
		bg.DrawImage(img, 0, 0)
		q := opts.JPEGQuality
		if q <= 0 {
			q = DefaultOptions().JPEGQuality
		}
		if err := gg.SaveJPG(name, bg.Image(), q); err != nil {
			return ioErr(err, name)
		}
		return nil
	}
	if err := gg.SavePNG(name, img); err != nil {
		return ioErr(err, name)
	}
	return nil
}
