package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateScaleFactor checks a user-supplied scale factor.
// Factors must be finite and strictly positive.
func ValidateScaleFactor(axis string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return New(ErrCodeInvalidScale, "%s factor must be a finite number", axis)
	}
	if f <= 0 {
		return New(ErrCodeInvalidScale, "%s factor must be positive, got %g", axis, f)
	}
	return nil
}

// ValidateCoordinate checks that a hole coordinate attribute is a usable number.
func ValidateCoordinate(hole, attr string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "hole %q: %s is not a finite number", hole, attr)
	}
	return nil
}

// ValidateHoleName validates a drill-hole name.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateHoleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "hole name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "hole name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "hole name contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates an export destination.
// It rejects names containing null bytes or control characters.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeNoDestination, "no destination chosen")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
