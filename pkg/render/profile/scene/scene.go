// Package scene composes drill-hole profiles into a drawable scene.
//
// A [Scene] holds flat drawable items in drawing units: one rectangle per
// layer box, one line per connector link and, optionally, a caption per
// hole. Populate always starts from an empty scene and ends with the view
// reset, so every redraw is independent of earlier zooming.
//
// Export framing uses [Scene.BoundingRect], which clears any selection
// before measuring so a highlighted item cannot enlarge the output.
package scene

import (
	"github.com/google/uuid"

	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/layout"
	"github.com/geocore/geocore/pkg/render/profile/paint"
	"github.com/geocore/geocore/pkg/render/profile/scale"
)

// DefaultMargin is the space added around the content when framing an export.
const DefaultMargin = 5.0

// Options control how a collection is drawn.
type Options struct {
	ConnectorColor string
	ConnectorWidth float64
	ConnectorDash  []float64

	// Captions draws the hole name above each profile.
	Captions     bool
	CaptionSize  float64
	CaptionColor string
	CaptionGap   float64
}

// DefaultOptions returns gray dashed connectors and no captions.
func DefaultOptions() Options {
	return Options{
		ConnectorColor: "gray",
		ConnectorWidth: 1,
		ConnectorDash:  []float64{4, 2},
		CaptionSize:    10,
		CaptionColor:   "black",
		CaptionGap:     4,
	}
}

// Painter draws items onto an output surface.
type Painter interface {
	Rect(r geom.Rect, s paint.Style)
	Polyline(pts []geom.Point, s paint.Style)
	Text(anchor geom.Point, text string, size float64, s paint.Style)
}

// Scene is the composed drawing of one profile collection.
type Scene struct {
	ID    uuid.UUID
	items []*Item
	view  View
}

// New returns an empty scene with a fresh id.
func New() *Scene {
	return &Scene{ID: uuid.New(), view: View{scale: 1}}
}

// Clear removes all items.
func (s *Scene) Clear() { s.items = nil }

// Len returns the number of items.
func (s *Scene) Len() int { return len(s.items) }

// Add appends an item and returns it.
func (s *Scene) Add(it Item) *Item {
	p := &it
	s.items = append(s.items, p)
	return p
}

// Items returns a snapshot of the items in drawing order.
func (s *Scene) Items() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = *it
	}
	return out
}

// View returns the interactive view of the scene.
func (s *Scene) View() *View { return &s.view }

// Populate replaces the scene content with pac drawn under the factors of m.
// Connectors are skipped when pac holds a single profile.
func (s *Scene) Populate(pac layout.Collection, m *scale.Model, opts Options) {
	s.Clear()
	xFac, yFac := m.Factors()

	for _, p := range pac.Profiles {
		for _, b := range p.Boxes {
			s.Add(Item{
				Kind:   KindRect,
				HoleID: b.HoleID,
				Label:  b.Label,
				Rect:   b.Rect(xFac, yFac),
				Style:  paint.BoxStyle(b.Color),
			})
		}
	}

	if !pac.Single() {
		style := paint.ConnectorStyle(opts.ConnectorColor, opts.ConnectorWidth, opts.ConnectorDash)
		for _, c := range pac.Connectors {
			for _, l := range c.Links {
				s.Add(Item{
					Kind:   KindLine,
					HoleID: c.LeftHole,
					Label:  l.Label,
					Points: l.Points(xFac, yFac),
					Style:  style,
				})
			}
		}
	}

	if opts.Captions {
		style := paint.TextStyle(opts.CaptionColor)
		for _, p := range pac.Profiles {
			s.Add(Item{
				Kind:     KindText,
				HoleID:   p.HoleID,
				Text:     p.HoleID,
				Anchor:   geom.Point{X: (p.X + p.Width/2) * layout.UnitFactor * xFac, Y: -opts.CaptionGap},
				FontSize: opts.CaptionSize,
				Style:    style,
			})
		}
	}

	s.view.Reset()
	s.view.SetVisible(s.ItemsBoundingRect())
}

// Select highlights the item at index i.
func (s *Scene) Select(i int) {
	if i >= 0 && i < len(s.items) {
		s.items[i].selected = true
	}
}

// SelectHole highlights every item of a hole and returns how many matched.
func (s *Scene) SelectHole(id string) int {
	n := 0
	for _, it := range s.items {
		if it.HoleID == id {
			it.selected = true
			n++
		}
	}
	return n
}

// Selected returns the number of highlighted items.
func (s *Scene) Selected() int {
	n := 0
	for _, it := range s.items {
		if it.selected {
			n++
		}
	}
	return n
}

// ClearSelection removes all highlights.
func (s *Scene) ClearSelection() {
	for _, it := range s.items {
		it.selected = false
	}
}

// ItemsBoundingRect returns the smallest rectangle enclosing all items as
// they are currently shown. An empty scene yields the zero rectangle.
func (s *Scene) ItemsBoundingRect() geom.Rect {
	if len(s.items) == 0 {
		return geom.Rect{}
	}
	r := s.items[0].Bounds()
	for _, it := range s.items[1:] {
		r = r.Union(it.Bounds())
	}
	return r
}

// BoundingRect clears the selection and returns the content rectangle grown
// by margin on every side.
func (s *Scene) BoundingRect(margin float64) geom.Rect {
	s.ClearSelection()
	return s.ItemsBoundingRect().Inflated(margin)
}

// Render paints every item, mapping source onto target.
func (s *Scene) Render(p Painter, target, source geom.Rect) {
	t := geom.Map(source, target)
	_, sy := t.Scale()
	for _, it := range s.items {
		switch it.Kind {
		case KindRect:
			p.Rect(t.Rect(it.Rect), it.Style)
		case KindLine:
			pts := make([]geom.Point, len(it.Points))
			for i, pt := range it.Points {
				pts[i] = t.Point(pt)
			}
			p.Polyline(pts, it.Style)
		case KindText:
			p.Text(t.Point(it.Anchor), it.Text, it.FontSize*sy, it.Style)
		}
	}
}
