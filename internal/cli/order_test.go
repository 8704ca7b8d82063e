package cli

import (
	"strings"
	"testing"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
)

func TestOrderTable(t *testing.T) {
	holes := []drill.Hole{
		{Name: "B1", X: 10, Y: 300},
		{Name: "B2", X: 30.5, Y: 100},
	}
	out := orderTable(ordering.Sort(holes, ordering.SouthNorth), ordering.SouthNorth)

	for _, want := range []string{"Hole", drill.AttrX, drill.AttrY, "B1", "B2", "30.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "B2") > strings.Index(out, "B1") {
		t.Errorf("south-north should list B2 first:\n%s", out)
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{2.5, "2.5"},
		{-0.125, "-0.125"},
	}
	for _, tt := range tests {
		if got := formatCoord(tt.in); got != tt.want {
			t.Errorf("formatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
