// Package drill defines drill holes, their raw layer records and the
// contract of the Layer Resolver.
//
// A [Hole] is one selected feature of the host GIS layer: a name, an easting
// (the xcoord attribute) and a northing (the ycoord attribute), plus the raw
// layer records attached to it. A [Resolver] interprets those records into an
// ordered, non-overlapping stack of [Layer] values and infers the [Link]s
// that connect matching layer boundaries of two neighboring holes.
//
// The default resolver lives in [resolver]; readers for JSON and XLSX input
// live in [source].
//
// [resolver]: github.com/geocore/geocore/pkg/drill/resolver
// [source]: github.com/geocore/geocore/pkg/drill/source
package drill

// Attribute names carried by every drill-hole feature.
const (
	AttrX    = "xcoord"
	AttrY    = "ycoord"
	AttrName = "name"
)

// Hole is a single drill-hole feature.
type Hole struct {
	Name    string   `json:"name"`
	X       float64  `json:"xcoord"` // easting
	Y       float64  `json:"ycoord"` // northing
	Records []Record `json:"layers,omitempty"`
}

// Attribute returns a numeric attribute by its host attribute name.
func (h Hole) Attribute(name string) (float64, bool) {
	switch name {
	case AttrX:
		return h.X, true
	case AttrY:
		return h.Y, true
	default:
		return 0, false
	}
}

// Record is one raw layer record of a hole as delivered by the host.
// Depths are measured downward from the top of the hole.
type Record struct {
	From    float64 `json:"from"`
	To      float64 `json:"to"`
	Label   string  `json:"label,omitempty"`
	Color   string  `json:"color,omitempty"`
	Texture string  `json:"texture,omitempty"`
}

// Layer is a resolved stratigraphic layer: a depth interval [Top, Bottom]
// with its paint attributes.
type Layer struct {
	Top     float64
	Bottom  float64
	Label   string
	Color   string
	Texture string
}

// Thickness returns the vertical extent of the layer.
func (l Layer) Thickness() float64 { return l.Bottom - l.Top }

// Link pairs a boundary depth in a left hole with the matching boundary
// depth in its right neighbor.
type Link struct {
	LeftDepth  float64
	RightDepth float64
	Label      string
}

// Resolver interprets raw records into layer stacks and infers links
// between neighboring holes.
type Resolver interface {
	// Resolve returns the hole's layers ordered top to bottom.
	// The layers do not overlap; the stack may be empty.
	Resolve(h Hole) ([]Layer, error)

	// Connect returns the links between two horizontally adjacent holes,
	// given their resolved stacks.
	Connect(left, right Hole, leftLayers, rightLayers []Layer) []Link
}
