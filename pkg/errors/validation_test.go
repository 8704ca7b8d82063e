package errors

import (
	"math"
	"testing"
)

func TestValidateScaleFactor(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"one", 1, false},
		{"fraction", 0.25, false},
		{"large", 1000, false},

		{"zero", 0, true},
		{"negative", -2, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScaleFactor("x", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScaleFactor(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidScale) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidScale)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	if err := ValidateCoordinate("B1", "ycoord", 5712034.5); err != nil {
		t.Errorf("finite coordinate rejected: %v", err)
	}
	if err := ValidateCoordinate("B1", "ycoord", math.NaN()); err == nil {
		t.Error("NaN coordinate accepted")
	}
	if err := ValidateCoordinate("B1", "xcoord", math.Inf(-1)); err == nil {
		t.Error("-Inf coordinate accepted")
	}
}

func TestValidateHoleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "B1", false},
		{"with space", "KB 12/3", false},
		{"unicode", "Bohrung Süd", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 300)), true},
		{"control char", "B\x01", true},
		{"newline", "B\n1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHoleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHoleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"relative", "out.svg", ""},
		{"absolute", "/tmp/profile.png", ""},
		{"no suffix", "out", ""},

		{"empty", "", ErrCodeNoDestination},
		{"null byte", "out\x00.svg", ErrCodeInvalidPath},
		{"control char", "out\r.png", ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateOutputPath(%q) code = %q, want %q", tt.input, got, tt.wantCode)
			}
		})
	}
}
