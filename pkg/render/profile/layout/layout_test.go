package layout

import (
	"errors"
	"testing"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/render/profile/geom"
)

// stubResolver returns canned stacks per hole and one link per adjacent pair.
type stubResolver struct {
	stacks map[string][]drill.Layer
	err    error
	calls  int
}

func (s *stubResolver) Resolve(h drill.Hole) ([]drill.Layer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stacks[h.Name], nil
}

func (s *stubResolver) Connect(left, right drill.Hole, _, _ []drill.Layer) []drill.Link {
	s.calls++
	return []drill.Link{{LeftDepth: 1, RightDepth: 2, Label: left.Name + "-" + right.Name}}
}

func twoLayers() []drill.Layer {
	return []drill.Layer{
		{Top: 0, Bottom: 1, Label: "sand", Color: "yellow"},
		{Top: 1, Bottom: 3, Label: "clay", Color: "#8b4513"},
	}
}

func holes(names ...string) []drill.Hole {
	out := make([]drill.Hole, len(names))
	for i, n := range names {
		out[i] = drill.Hole{Name: n}
	}
	return out
}

func TestAssembleProfileCount(t *testing.T) {
	tests := []struct {
		name           string
		holes          []drill.Hole
		wantConnectors int
	}{
		{"none", nil, 0},
		{"single", holes("A"), 0},
		{"pair", holes("A", "B"), 1},
		{"three", holes("A", "B", "C"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers(), "B": twoLayers(), "C": twoLayers()}}
			pac, err := Assembler{Resolver: r}.Assemble(tt.holes)
			if err != nil {
				t.Fatalf("Assemble: %v", err)
			}
			if pac.Len() != len(tt.holes) {
				t.Errorf("Len() = %d, want %d", pac.Len(), len(tt.holes))
			}
			if len(pac.Connectors) != tt.wantConnectors {
				t.Errorf("connectors = %d, want %d", len(pac.Connectors), tt.wantConnectors)
			}
		})
	}
}

func TestAssembleSingleSkipsConnect(t *testing.T) {
	r := &stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers()}}
	pac, err := Assembler{Resolver: r}.Assemble(holes("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !pac.Single() {
		t.Error("Single() = false for one hole")
	}
	if r.calls != 0 {
		t.Errorf("Connect called %d times for a single hole", r.calls)
	}
}

func TestAssemblePositions(t *testing.T) {
	r := &stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers(), "B": twoLayers()}}
	pac, err := Assembler{Resolver: r, Options: Options{HoleWidth: 2, HoleSpacing: 5}}.Assemble(holes("A", "B"))
	if err != nil {
		t.Fatal(err)
	}

	if got := pac.Profiles[1].X; got != 5 {
		t.Errorf("second profile X = %v, want 5", got)
	}
	if c := pac.Connectors[0]; c.LeftHole != "A" || c.RightHole != "B" {
		t.Errorf("connector holes = %s..%s, want A..B", c.LeftHole, c.RightHole)
	}
	c := pac.Connectors[0].Links[0]
	if c.Left.X != 2 || c.Right.X != 5 {
		t.Errorf("connector x = %v..%v, want 2..5", c.Left.X, c.Right.X)
	}
	if c.Left.Depth != 1 || c.Right.Depth != 2 {
		t.Errorf("connector depths = %v..%v, want 1..2", c.Left.Depth, c.Right.Depth)
	}
}

func TestAssembleBoxes(t *testing.T) {
	r := &stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers()}}
	pac, err := Assembler{Resolver: r}.Assemble(holes("A"))
	if err != nil {
		t.Fatal(err)
	}
	boxes := pac.Profiles[0].Boxes

	if len(boxes) != 2 {
		t.Fatalf("boxes = %d, want 2", len(boxes))
	}
	if !boxes[0].IsFirst || boxes[0].IsLast {
		t.Errorf("box 0 flags = first:%v last:%v", boxes[0].IsFirst, boxes[0].IsLast)
	}
	if boxes[1].IsFirst || !boxes[1].IsLast {
		t.Errorf("box 1 flags = first:%v last:%v", boxes[1].IsFirst, boxes[1].IsLast)
	}
	if boxes[1].Y != 1 || boxes[1].Height != 2 {
		t.Errorf("box 1 = y %v h %v, want y 1 h 2", boxes[1].Y, boxes[1].Height)
	}
	if boxes[0].Width != DefaultHoleWidth {
		t.Errorf("width = %v, want %v", boxes[0].Width, DefaultHoleWidth)
	}
	if got := pac.Profiles[0].Depth(); got != 3 {
		t.Errorf("Depth() = %v, want 3", got)
	}
}

func TestAssembleSingleBoxIsFirstAndLast(t *testing.T) {
	r := &stubResolver{stacks: map[string][]drill.Layer{"A": {{Top: 0, Bottom: 2, Label: "till"}}}}
	pac, err := Assembler{Resolver: r}.Assemble(holes("A"))
	if err != nil {
		t.Fatal(err)
	}
	b := pac.Profiles[0].Boxes[0]
	if !b.IsFirst || !b.IsLast {
		t.Errorf("flags = first:%v last:%v, want both", b.IsFirst, b.IsLast)
	}
}

func TestAssembleConnectorWithoutLinks(t *testing.T) {
	r := noLinks{&stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers(), "B": twoLayers()}}}
	pac, err := Assembler{Resolver: r}.Assemble(holes("A", "B"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pac.Connectors) != 1 || len(pac.Connectors[0].Links) != 0 {
		t.Errorf("connectors = %+v, want one without links", pac.Connectors)
	}
}

type noLinks struct{ *stubResolver }

func (noLinks) Connect(_, _ drill.Hole, _, _ []drill.Layer) []drill.Link { return nil }

func TestAssembleEmptyProfileKeepsSlot(t *testing.T) {
	r := &stubResolver{stacks: map[string][]drill.Layer{"A": twoLayers(), "C": twoLayers()}}
	pac, err := Assembler{Resolver: r}.Assemble(holes("A", "B", "C"))
	if err != nil {
		t.Fatal(err)
	}
	if !pac.Profiles[1].Empty() {
		t.Error("profile B should be empty")
	}
	if got := pac.Profiles[2].X; got != 2*DefaultHoleSpacing {
		t.Errorf("profile C at X %v, want %v", got, 2*DefaultHoleSpacing)
	}
	if pac.Profiles[1].Depth() != 0 {
		t.Errorf("empty Depth() = %v", pac.Profiles[1].Depth())
	}
}

func TestAssembleResolverError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Assembler{Resolver: &stubResolver{err: boom}}.Assemble(holes("A"))
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapping boom", err)
	}
}

func TestAssembleNoResolver(t *testing.T) {
	if _, err := (Assembler{}).Assemble(holes("A")); err == nil {
		t.Error("expected error without resolver")
	}
}

func TestBoxRect(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		xFac, yFac float64
		want       geom.Rect
	}{
		{"identity", Box{X: 5, Y: 1, Width: 2, Height: 2}, 1, 1, geom.R(50, 10, 20, 20)},
		{"double x", Box{X: 5, Y: 1, Width: 2, Height: 2}, 2, 1, geom.R(100, 10, 40, 20)},
		{"half y", Box{X: 0, Y: 4, Width: 2, Height: 2}, 1, 0.5, geom.R(0, 20, 20, 10)},
		{"zero height", Box{X: 0, Y: 3, Width: 2}, 1, 1, geom.R(0, 30, 20, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Rect(tt.xFac, tt.yFac); got != tt.want {
				t.Errorf("Rect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLinkPoints(t *testing.T) {
	c := Link{Left: Boundary{X: 2, Depth: 1}, Right: Boundary{X: 5, Depth: 3}}
	pts := c.Points(1, 2)
	want := []geom.Point{{X: 20, Y: 20}, {X: 50, Y: 60}}
	if len(pts) != 2 || pts[0] != want[0] || pts[1] != want[1] {
		t.Errorf("Points() = %v, want %v", pts, want)
	}
}
