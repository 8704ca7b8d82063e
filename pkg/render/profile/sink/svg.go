package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"

	"github.com/geocore/geocore/pkg/fonts"
	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/paint"
	"github.com/geocore/geocore/pkg/render/profile/scene"
)

type svgPainter struct {
	canvas *svg.SVG
}

func (p svgPainter) Rect(r geom.Rect, s paint.Style) {
	p.canvas.Rect(r.X, r.Y, r.W, r.H, s.CSS())
}

func (p svgPainter) Polyline(pts []geom.Point, s paint.Style) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	p.canvas.Polyline(xs, ys, s.CSS())
}

func (p svgPainter) Text(at geom.Point, text string, size float64, s paint.Style) {
	p.canvas.Text(at.X, at.Y, text,
		fmt.Sprintf("text-anchor:middle;font-family:%s;font-size:%gpx;%s", fonts.FallbackFontFamily, size, s.CSS()))
}

// WriteSVG renders s as an SVG document sized to source, with target as
// its viewBox.
func WriteSVG(w io.Writer, s *scene.Scene, source, target geom.Rect, opts Options) {
	canvas := svg.New(w)
	canvas.Start(source.W, source.H,
		fmt.Sprintf(`viewBox="%g %g %g %g"`, target.X, target.Y, target.W, target.H))
	canvas.Title(opts.Title)
	canvas.Desc(opts.Description)
	canvas.Gid("profile-" + s.ID.String())
	s.Render(svgPainter{canvas: canvas}, target, source)
	canvas.Gend()
	canvas.End()
}

func exportSVG(s *scene.Scene, name string, source, target geom.Rect, opts Options) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return ioErr(err, name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr(cerr, name)
		}
	}()

	bw := bufio.NewWriter(f)
	WriteSVG(bw, s, source, target, opts)
	if err := bw.Flush(); err != nil {
		return ioErr(err, name)
	}
	return nil
}
