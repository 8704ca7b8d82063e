// Package scale holds the user-chosen horizontal and vertical scale factors
// of a profile session.
package scale

import (
	"math"

	"github.com/geocore/geocore/pkg/errors"
)

// Result is the outcome of a scale prompt. A rejected prompt carries no
// factors and leaves the model untouched.
type Result struct {
	Accepted bool
	X, Y     float64
}

// Accept returns an accepted Result.
func Accept(x, y float64) Result { return Result{Accepted: true, X: x, Y: y} }

// Reject returns a cancelled Result.
func Reject() Result { return Result{} }

// Model is a nullable (x, y) pair. While unset both factors read as 1.
// The zero value is an unset model.
type Model struct {
	x, y float64
	set  bool
}

// Factors returns the effective factors.
func (m *Model) Factors() (x, y float64) {
	if m == nil || !m.set {
		return 1, 1
	}
	return m.x, m.y
}

// IsSet reports whether factors have been chosen.
func (m *Model) IsSet() bool { return m != nil && m.set }

// Set stores new factors. Both must be positive and finite.
func (m *Model) Set(x, y float64) error {
	if err := errors.ValidateScaleFactor("x", x); err != nil {
		return err
	}
	if err := errors.ValidateScaleFactor("y", y); err != nil {
		return err
	}
	m.x, m.y, m.set = x, y, true
	return nil
}

// Reset clears the factors.
func (m *Model) Reset() { *m = Model{} }

// Apply stores the factors of an accepted result. It reports whether the
// model changed; a rejected result is a no-op.
func (m *Model) Apply(r Result) (bool, error) {
	if !r.Accepted {
		return false, nil
	}
	ox, oy := m.Factors()
	wasSet := m.set
	if err := m.Set(r.X, r.Y); err != nil {
		return false, err
	}
	return !wasSet || !same(ox, r.X) || !same(oy, r.Y), nil
}

func same(a, b float64) bool { return math.Abs(a-b) < 1e-12 }
