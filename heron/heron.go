// Package heron implements Heron's method for square roots on top of the
// shared solver loop.
package heron

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlmath/solver"
)

const (
	// DefaultMaxIterations caps the loop at 16 rounds. With quadratic
	// convergence that is ample for a float64 once the guess is in range.
	DefaultMaxIterations = 16

	// DefaultEpsilon is double-precision machine epsilon, 2⁻⁵², applied
	// to the relative residual (x − a²)/x.
	DefaultEpsilon = 2.220446049250313e-16
)

// ErrNonPositive is returned when the input is zero or negative.
var ErrNonPositive = errors.New("heron: input must be a positive real number")

// DefaultOptions returns the solver configuration Heron's method starts
// from: 16 rounds, machine-epsilon tolerance, no trace.
func DefaultOptions() solver.Options {
	return solver.Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}

// Sqrt approximates √x by Heron's iteration, seeded with x itself.
//
// Each round first measures the relative residual e = (x − a²)/x; a guess
// within tolerance is final. Otherwise the next guess is the average of a
// and x/a. If the cap runs out first, the current guess comes back with a
// nil error.
//
// The trace (with solver.WithTrace) holds the seed followed by every
// guess produced, its last entry equal to the returned root.
//
// Returns ErrNonPositive when x <= 0.
func Sqrt(x float64, opts ...solver.Option) (float64, []float64, error) {
	if x <= 0 {
		return 0, nil, ErrNonPositive
	}
	o, err := solver.NewOptions(DefaultOptions(), opts...)
	if err != nil {
		return 0, nil, err
	}

	step := func(a float64) (float64, bool, error) {
		e := (x - a*a) / x
		if math.Abs(e) <= o.Epsilon {
			return a, true, nil
		}

		return 0.5 * (a + x/a), false, nil
	}

	return solver.Iterate(x, step, o)
}
