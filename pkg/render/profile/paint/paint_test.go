package paint

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   color.NRGBA
		wantOK bool
	}{
		{"red", color.NRGBA{R: 0xff, A: 0xff}, true},
		{"SandyBrown", color.NRGBA{R: 0xf4, G: 0xa4, B: 0x60, A: 0xff}, true},
		{"#8b4513", color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}, true},
		{"8b4513", color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}, true},
		{"  #FFFFFF ", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"", color.NRGBA{}, false},
		{"not-a-color", color.NRGBA{}, false},
		{"#fa6", color.NRGBA{R: 0xff, G: 0xaa, B: 0x66, A: 0xff}, true},
		{"#80f4a460", color.NRGBA{R: 0xf4, G: 0xa4, B: 0x60, A: 0x80}, true},
		{"#12345", color.NRGBA{}, false},
		{"#1234567", color.NRGBA{}, false},
		{"#12g456", color.NRGBA{}, false},
		{"#12 456", color.NRGBA{}, false},
		{"#", color.NRGBA{}, false},
		{"#123456789", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoxStyleFallback(t *testing.T) {
	s := BoxStyle("mud")
	if s.HasFill {
		t.Error("unparsable color should leave the box unfilled")
	}
	if s.StrokeWidth != 1 || s.Stroke != Black {
		t.Errorf("outline = %v/%v, want black/1", s.Stroke, s.StrokeWidth)
	}
	if got := s.CSS(); got != "fill:none;stroke:#000000;stroke-width:1" {
		t.Errorf("CSS() = %q", got)
	}
}

func TestStyleCSS(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"box", BoxStyle("yellow"), "fill:#ffff00;stroke:#000000;stroke-width:1"},
		{"dashed connector", ConnectorStyle("gray", 0.5, []float64{4, 2}), "fill:none;stroke:#808080;stroke-width:0.5;stroke-dasharray:4,2"},
		{"connector defaults", ConnectorStyle("", 0, nil), "fill:none;stroke:#000000;stroke-width:1"},
		{"text", TextStyle("navy"), "fill:#000080"},
		{"transparent", Style{Fill: color.NRGBA{R: 0xff}, HasFill: true}, "fill:#ff0000;fill-opacity:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}
