// Package ordering arranges selected drill holes along a geographic axis.
//
// A profile is drawn left to right in the order produced here. Four
// directions are supported:
//
//   - [NorthSouth]: descending northing (ycoord)
//   - [SouthNorth]: ascending northing
//   - [WestEast]: ascending easting (xcoord)
//   - [EastWest]: descending easting
//
// Sorting is stable. Holes with equal coordinates are ordered by name and,
// if the names match too, keep their selection order, so the result is
// reproducible and applying the same direction twice changes nothing.
package ordering

import (
	"cmp"
	"slices"
	"strings"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/errors"
)

// Direction is one of the four drawing directions.
type Direction int

const (
	NorthSouth Direction = iota
	SouthNorth
	WestEast
	EastWest
)

// Default is the direction used when a profile is first opened.
const Default = NorthSouth

var names = [...]string{
	NorthSouth: "north-south",
	SouthNorth: "south-north",
	WestEast:   "west-east",
	EastWest:   "east-west",
}

var labels = [...]string{
	NorthSouth: "North ➔ South",
	SouthNorth: "South ➔ North",
	WestEast:   "West ➔ East",
	EastWest:   "East ➔ West",
}

// Directions returns all directions in menu order.
func Directions() []Direction {
	return []Direction{NorthSouth, SouthNorth, WestEast, EastWest}
}

// String returns the flag spelling, e.g. "north-south".
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return names[d]
}

// Label returns the menu caption, e.g. "North ➔ South".
func (d Direction) Label() string {
	if !d.Valid() {
		return "unknown"
	}
	return labels[d]
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool { return d >= NorthSouth && d <= EastWest }

// Attribute returns the coordinate attribute the direction sorts on.
func (d Direction) Attribute() string {
	if d == WestEast || d == EastWest {
		return drill.AttrX
	}
	return drill.AttrY
}

// Key returns the ascending sort key of h for direction d.
func (d Direction) Key(h drill.Hole) float64 {
	v, _ := h.Attribute(d.Attribute())
	if d == NorthSouth || d == EastWest {
		return -v
	}
	return v
}

// ParseDirection accepts the flag spelling ("north-south"), the short form
// ("ns", "sn", "we", "ew") or the compass pair ("n-s"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north-south", "ns", "n-s", "northsouth":
		return NorthSouth, nil
	case "south-north", "sn", "s-n", "southnorth":
		return SouthNorth, nil
	case "west-east", "we", "w-e", "westeast":
		return WestEast, nil
	case "east-west", "ew", "e-w", "eastwest":
		return EastWest, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (must be north-south, south-north, west-east or east-west)", s)
	}
}

// Sort returns a new slice holding holes in the order of direction d.
// The input is not modified.
func Sort(holes []drill.Hole, d Direction) []drill.Hole {
	out := slices.Clone(holes)
	slices.SortStableFunc(out, func(a, b drill.Hole) int {
		if c := cmp.Compare(d.Key(a), d.Key(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
