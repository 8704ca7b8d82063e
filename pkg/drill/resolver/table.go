// Package resolver provides the default Layer Resolver.
//
// [Table] treats the raw records of a hole as a depth table: it orders
// records by depth, drops intervals it cannot draw and trims overlaps so the
// resulting stack is non-overlapping. Between neighboring holes it links the
// boundaries of layers that share a label, matching them top to bottom so
// that connectors never cross.
package resolver

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/notify"
)

// Table is the default [drill.Resolver].
type Table struct {
	// Notify receives warnings about records that had to be dropped or
	// trimmed. Nil discards them.
	Notify notify.Sink
}

// New returns a Table resolver reporting to n.
func New(n notify.Sink) *Table {
	return &Table{Notify: n}
}

// Resolve orders the hole's records by depth and returns a non-overlapping stack.
//
// Records with non-finite or negative depths, or with To < From, are skipped
// with a warning. A record starting above the bottom of its predecessor is
// trimmed to start at that bottom; if nothing remains it is skipped.
func (t *Table) Resolve(h drill.Hole) ([]drill.Layer, error) {
	records := slices.Clone(h.Records)
	slices.SortStableFunc(records, func(a, b drill.Record) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	layers := make([]drill.Layer, 0, len(records))
	for _, r := range records {
		if !validDepth(r.From) || !validDepth(r.To) || r.To < r.From {
			t.warn(h.Name, fmt.Sprintf("skipping layer %q: invalid depth interval %g..%g", r.Label, r.From, r.To))
			continue
		}
		top := r.From
		if n := len(layers); n > 0 && top < layers[n-1].Bottom {
			top = layers[n-1].Bottom
			if top >= r.To {
				t.warn(h.Name, fmt.Sprintf("skipping layer %q: covered by %q", r.Label, layers[n-1].Label))
				continue
			}
			t.warn(h.Name, fmt.Sprintf("layer %q overlaps %q, trimmed to start at %g", r.Label, layers[n-1].Label, top))
		}
		layers = append(layers, drill.Layer{
			Top:     top,
			Bottom:  r.To,
			Label:   r.Label,
			Color:   r.Color,
			Texture: r.Texture,
		})
	}
	return layers, nil
}

// Connect links the top and bottom boundaries of layers sharing a label.
//
// Layers are matched greedily from the top: each left layer is paired with
// the first unmatched right layer below the previous match carrying the same
// label. Unlabeled layers are never linked. A link identical to its
// predecessor (the bottom of one matched pair touching the top of the next on
// both sides) is emitted once.
func (t *Table) Connect(left, right drill.Hole, leftLayers, rightLayers []drill.Layer) []drill.Link {
	var links []drill.Link
	next := 0
	for _, l := range leftLayers {
		if l.Label == "" {
			continue
		}
		j := slices.IndexFunc(rightLayers[next:], func(r drill.Layer) bool { return r.Label == l.Label })
		if j < 0 {
			continue
		}
		r := rightLayers[next+j]
		next += j + 1

		links = appendLink(links, drill.Link{LeftDepth: l.Top, RightDepth: r.Top, Label: l.Label})
		links = appendLink(links, drill.Link{LeftDepth: l.Bottom, RightDepth: r.Bottom, Label: l.Label})
	}
	return links
}

func appendLink(links []drill.Link, l drill.Link) []drill.Link {
	if n := len(links); n > 0 && links[n-1].LeftDepth == l.LeftDepth && links[n-1].RightDepth == l.RightDepth {
		return links
	}
	return append(links, l)
}

func (t *Table) warn(hole, msg string) {
	if t.Notify == nil {
		return
	}
	t.Notify.Notify(hole, msg, notify.Warning)
}

func validDepth(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

var _ drill.Resolver = (*Table)(nil)
