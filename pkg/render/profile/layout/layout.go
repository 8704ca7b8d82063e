// Package layout turns ordered drill holes into positioned layer boxes and
// the connectors between neighboring holes.
//
// All positions are in profile units; [UnitFactor] and the scale factors
// convert them into drawing units when the scene is painted.
package layout

import (
	"fmt"

	"github.com/geocore/geocore/pkg/drill"
)

// Default spacing, in profile units.
const (
	DefaultHoleWidth   = 2.0
	DefaultHoleSpacing = 5.0
)

// Profile is the layer stack of one hole at its slot in the ordering.
type Profile struct {
	HoleID string
	Index  int
	X      float64
	Width  float64
	Boxes  []Box
}

// Empty reports whether the hole resolved to no layers.
func (p Profile) Empty() bool { return len(p.Boxes) == 0 }

// Depth returns the bottom of the deepest box, or 0 for an empty profile.
func (p Profile) Depth() float64 {
	if len(p.Boxes) == 0 {
		return 0
	}
	return p.Boxes[len(p.Boxes)-1].Bottom()
}

// Collection holds the ordered profiles and one connector per pair of
// consecutive profiles.
type Collection struct {
	Profiles   []Profile
	Connectors []Connector
}

// Len returns the number of profiles.
func (c Collection) Len() int { return len(c.Profiles) }

// Single reports whether the collection is drawn in single-hole mode.
func (c Collection) Single() bool { return len(c.Profiles) <= 1 }

// Options control the horizontal geometry of a collection.
type Options struct {
	HoleWidth   float64
	HoleSpacing float64
}

// DefaultOptions returns the standard hole width and spacing.
func DefaultOptions() Options {
	return Options{HoleWidth: DefaultHoleWidth, HoleSpacing: DefaultHoleSpacing}
}

func (o Options) withDefaults() Options {
	if o.HoleWidth <= 0 {
		o.HoleWidth = DefaultHoleWidth
	}
	if o.HoleSpacing <= 0 {
		o.HoleSpacing = DefaultHoleSpacing
	}
	return o
}

// Assembler builds a Collection from holes that are already ordered.
type Assembler struct {
	Resolver drill.Resolver
	Options  Options
}

// Assemble resolves every hole and places it at index × HoleSpacing.
// Each adjacent pair gets one Connector whose links come from the resolver.
// A single hole gets no connectors.
func (a Assembler) Assemble(holes []drill.Hole) (Collection, error) {
	if a.Resolver == nil {
		return Collection{}, fmt.Errorf("assemble: no layer resolver")
	}
	opts := a.Options.withDefaults()

	var (
		pac    = Collection{Profiles: make([]Profile, 0, len(holes))}
		stacks = make([][]drill.Layer, len(holes))
	)
	for i, h := range holes {
		layers, err := a.Resolver.Resolve(h)
		if err != nil {
			return Collection{}, fmt.Errorf("resolve %s: %w", h.Name, err)
		}
		stacks[i] = layers
		pac.Profiles = append(pac.Profiles, profile(h.Name, i, float64(i)*opts.HoleSpacing, opts.HoleWidth, layers))
	}

	if pac.Single() {
		return pac, nil
	}
	for i := 1; i < len(holes); i++ {
		left, right := pac.Profiles[i-1], pac.Profiles[i]
		c := Connector{LeftHole: left.HoleID, RightHole: right.HoleID}
		for _, l := range a.Resolver.Connect(holes[i-1], holes[i], stacks[i-1], stacks[i]) {
			c.Links = append(c.Links, Link{
				Left:  Boundary{X: left.X + opts.HoleWidth, Depth: l.LeftDepth},
				Right: Boundary{X: right.X, Depth: l.RightDepth},
				Label: l.Label,
			})
		}
		pac.Connectors = append(pac.Connectors, c)
	}
	return pac, nil
}

func profile(id string, index int, x, width float64, layers []drill.Layer) Profile {
	p := Profile{HoleID: id, Index: index, X: x, Width: width, Boxes: make([]Box, len(layers))}
	for i, l := range layers {
		p.Boxes[i] = Box{
			HoleID:  id,
			X:       x,
			Y:       l.Top,
			Width:   width,
			Height:  max(l.Thickness(), 0),
			Label:   l.Label,
			Color:   l.Color,
			Texture: l.Texture,
			IsFirst: i == 0,
			IsLast:  i == len(layers)-1,
		}
	}
	return p
}
