// Package geom provides the small amount of planar geometry the profile
// renderer needs: points and axis-aligned rectangles in drawing units.
//
// Drawing coordinates follow screen conventions: x grows to the right and
// y grows downward.
package geom

import "math"

// Point is a position in drawing units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// A rectangle with zero width and height is empty.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the rectangle has no area and no extent.
func (r Rect) Empty() bool { return r.W == 0 && r.H == 0 }

// Normalized returns r with non-negative width and height.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles still contribute their corner point, so a zero-height
// box or a horizontal line extends the union.
func (r Rect) Union(o Rect) Rect {
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Adjusted moves the edges outward by the given amounts; negative values
// shrink the rectangle.
func (r Rect) Adjusted(left, top, right, bottom float64) Rect {
	return Rect{X: r.X - left, Y: r.Y - top, W: r.W + left + right, H: r.H + top + bottom}
}

// Inflated grows r by d on every side.
func (r Rect) Inflated(d float64) Rect { return r.Adjusted(d, d, d, d) }

// PixelSize returns the rectangle size rounded to whole pixels.
func (r Rect) PixelSize() (w, h int) {
	return int(math.Round(r.W)), int(math.Round(r.H))
}

// Bounds returns the bounding rectangle of a set of points.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{X: pts[0].X, Y: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.Union(Rect{X: p.X, Y: p.Y})
	}
	return r
}

// Transform maps a source rectangle onto a target rectangle.
// Each axis is scaled independently.
type Transform struct {
	sx, sy float64
	dx, dy float64
}

// Map returns the transform taking source onto target. A degenerate source
// axis maps with scale 1.
func Map(source, target Rect) Transform {
	sx, sy := 1.0, 1.0
	if source.W != 0 {
		sx = target.W / source.W
	}
	if source.H != 0 {
		sy = target.H / source.H
	}
	return Transform{
		sx: sx, sy: sy,
		dx: target.X - source.X*sx,
		dy: target.Y - source.Y*sy,
	}
}

// Point applies the transform to p.
func (t Transform) Point(p Point) Point {
	return Point{X: p.X*t.sx + t.dx, Y: p.Y*t.sy + t.dy}
}

// Rect applies the transform to r.
func (t Transform) Rect(r Rect) Rect {
	p := t.Point(Point{X: r.X, Y: r.Y})
	return Rect{X: p.X, Y: p.Y, W: r.W * t.sx, H: r.H * t.sy}
}

// Scale returns the per-axis scale factors.
func (t Transform) Scale() (sx, sy float64) { return t.sx, t.sy }
