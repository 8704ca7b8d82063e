package scale

import (
	"math"
	"testing"

	"github.com/geocore/geocore/pkg/errors"
)

func TestUnsetReadsAsOne(t *testing.T) {
	var m Model
	if x, y := m.Factors(); x != 1 || y != 1 {
		t.Errorf("Factors() = %v, %v, want 1, 1", x, y)
	}
	if m.IsSet() {
		t.Error("zero Model reports set")
	}

	var nilModel *Model
	if x, y := nilModel.Factors(); x != 1 || y != 1 {
		t.Errorf("nil Factors() = %v, %v", x, y)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		start       *Result
		result      Result
		wantX       float64
		wantY       float64
		wantChanged bool
		wantErr     bool
	}{
		{"accept from unset", nil, Accept(2, 1), 2, 1, true, false},
		{"reject from unset", nil, Reject(), 1, 1, false, false},
		{"reject keeps previous", &Result{true, 3, 4}, Reject(), 3, 4, false, false},
		{"same factors", &Result{true, 3, 4}, Accept(3, 4), 3, 4, false, false},
		{"accept unit from unset", nil, Accept(1, 1), 1, 1, true, false},
		{"zero rejected", nil, Accept(0, 1), 1, 1, false, true},
		{"negative rejected", &Result{true, 2, 2}, Accept(2, -1), 2, 2, false, true},
		{"nan rejected", nil, Accept(math.NaN(), 1), 1, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Model
			if tt.start != nil {
				if _, err := m.Apply(*tt.start); err != nil {
					t.Fatal(err)
				}
			}
			changed, err := m.Apply(tt.result)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidScale) {
				t.Errorf("code = %v, want INVALID_SCALE", errors.GetCode(err))
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if x, y := m.Factors(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Factors() = %v, %v, want %v, %v", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestReset(t *testing.T) {
	var m Model
	if err := m.Set(2, 3); err != nil {
		t.Fatal(err)
	}
	m.Reset()
	if m.IsSet() {
		t.Error("IsSet() after Reset")
	}
	if x, y := m.Factors(); x != 1 || y != 1 {
		t.Errorf("Factors() after Reset = %v, %v", x, y)
	}
}
