package layout

import "github.com/geocore/geocore/pkg/render/profile/geom"

// UnitFactor converts profile units (centimetres) into drawing units.
const UnitFactor = 10

// Box is one layer of one hole, positioned in profile units.
// X is the left edge of the hole column; Y is the depth of the layer top.
type Box struct {
	HoleID  string
	X, Y    float64
	Width   float64
	Height  float64
	Label   string
	Color   string
	Texture string // carried, not painted
	IsFirst bool
	IsLast  bool
}

// Bottom returns the depth of the layer bottom.
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Rect returns the drawing rectangle of the box under the scale factors.
func (b Box) Rect(xFac, yFac float64) geom.Rect {
	return geom.Rect{
		X: b.X * UnitFactor * xFac,
		Y: b.Y * UnitFactor * yFac,
		W: b.Width * UnitFactor * xFac,
		H: b.Height * UnitFactor * yFac,
	}
}

// Boundary is one end of a connector: a horizontal position and a depth,
// both in profile units.
type Boundary struct {
	X     float64
	Depth float64
}

// Point returns the drawing position of the boundary.
func (b Boundary) Point(xFac, yFac float64) geom.Point {
	return geom.Point{X: b.X * UnitFactor * xFac, Y: b.Depth * UnitFactor * yFac}
}

// Link joins a layer boundary of one hole to the matching boundary of its
// right-hand neighbor.
type Link struct {
	Left, Right Boundary
	Label       string
}

// Points returns the link polyline in drawing units.
func (l Link) Points(xFac, yFac float64) []geom.Point {
	return []geom.Point{l.Left.Point(xFac, yFac), l.Right.Point(xFac, yFac)}
}

// Connector holds every link between two adjacent holes. A pair of holes
// without matching layers still gets a Connector, with no links.
type Connector struct {
	LeftHole  string
	RightHole string
	Links     []Link
}
