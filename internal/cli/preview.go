package cli

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/paint"
	"github.com/geocore/geocore/pkg/render/profile/scene"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

const (
	glyphFilled   = '█'
	glyphUnfilled = '░'
	glyphLink     = '·'
)

type cell struct {
	ch rune
	fg string
}

// preview rasterizes the visible part of a scene into terminal cells.
type preview struct {
	cells  [][]cell
	origin geom.Point
	unit   float64 // drawing units per column
}

// region returns the part of the scene the view currently shows.
func region(sc *scene.Scene) geom.Rect {
	v := sc.View()
	vis := v.Visible()
	s := v.Scale()
	c := vis.Center()
	w, h := vis.W/s, vis.H/s
	return geom.R(c.X-w/2, c.Y-h/2, w, h)
}

func newPreview(r geom.Rect, width, height int) *preview {
	p := &preview{cells: make([][]cell, height)}
	for i := range p.cells {
		p.cells[i] = make([]cell, width)
	}
	p.unit = math.Max(r.W/float64(width), r.H/(float64(height)*cellAspect))
	if p.unit <= 0 || math.IsNaN(p.unit) {
		p.unit = 1
	}
	// Center the region in the grid.
	c := r.Center()
	p.origin = geom.Point{
		X: c.X - p.unit*float64(width)/2,
		Y: c.Y - p.unit*cellAspect*float64(height)/2,
	}
	return p
}

// cellOf returns the column and row of a drawing point.
func (p *preview) cellOf(pt geom.Point) (col, row int) {
	return int(math.Floor((pt.X - p.origin.X) / p.unit)),
		int(math.Floor((pt.Y - p.origin.Y) / (p.unit * cellAspect)))
}

func (p *preview) set(col, row int, ch rune, fg string, overwrite bool) {
	if row < 0 || row >= len(p.cells) || col < 0 || col >= len(p.cells[row]) {
		return
	}
	if !overwrite && p.cells[row][col].ch != 0 {
		return
	}
	p.cells[row][col] = cell{ch: ch, fg: fg}
}

func (p *preview) rect(r geom.Rect, s paint.Style) {
	ch, fg := glyphUnfilled, paint.Hex(s.Stroke)
	if s.HasFill {
		ch, fg = glyphFilled, paint.Hex(s.Fill)
	}
	c0, r0 := p.cellOf(geom.Point{X: r.X, Y: r.Y})
	c1, r1 := p.cellOf(geom.Point{X: r.Right(), Y: r.Bottom()})
	// Thin layers still get one row.
	r1 = max(r1, r0)
	c1 = max(c1, c0)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p.set(col, row, ch, fg, true)
		}
	}
}

func (p *preview) line(pts []geom.Point, s paint.Style) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		steps := int(math.Ceil(math.Hypot(b.X-a.X, b.Y-a.Y)/p.unit)) + 1
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			col, row := p.cellOf(geom.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
			p.set(col, row, glyphLink, paint.Hex(s.Stroke), false)
		}
	}
}

func (p *preview) text(at geom.Point, s string, style paint.Style) {
	col, row := p.cellOf(at)
	col -= utf8.RuneCountInString(s) / 2
	for i, r := range []rune(s) {
		p.set(col+i, row-1, r, paint.Hex(style.Fill), true)
	}
}

// lines renders the grid, one string per row.
func (p *preview) lines() []string {
	out := make([]string, len(p.cells))
	for i, row := range p.cells {
		var b strings.Builder
		for j := 0; j < len(row); {
			k := j
			for k < len(row) && row[k].fg == row[j].fg {
				k++
			}
			run := make([]rune, 0, k-j)
			for _, c := range row[j:k] {
				if c.ch == 0 {
					c.ch = ' '
				}
				run = append(run, c.ch)
			}
			if row[j].fg == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(row[j].fg)).Render(string(run)))
			}
			j = k
		}
		out[i] = b.String()
	}
	return out
}

// renderPreview draws the visible region of sc into width × height cells.
func renderPreview(sc *scene.Scene, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	p := newPreview(region(sc), width, height)
	for _, it := range sc.Items() {
		switch it.Kind {
		case scene.KindRect:
			p.rect(it.Rect, it.Style)
		case scene.KindLine:
			p.line(it.Points, it.Style)
		case scene.KindText:
			p.text(it.Anchor, it.Text, it.Style)
		}
	}
	return strings.Join(p.lines(), "\n")
}
