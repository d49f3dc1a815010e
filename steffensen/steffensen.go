// Package steffensen implements Steffensen's derivative-free root finding
// on top of the shared solver loop.
package steffensen

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlmath/solver"
)

const (
	// DefaultMaxIterations caps the loop at 16 rounds, the same cap the
	// other quadratically convergent methods use.
	DefaultMaxIterations = 16

	// DefaultEpsilon is four times double-precision machine epsilon,
	// applied to |f(xₙ)|. The looser bound absorbs the cancellation noise
	// of evaluating f right at the root.
	DefaultEpsilon = 8.881784197001252e-16
)

// Sentinel errors for Steffensen execution.
var (
	// ErrNilFunc is returned when Root receives a nil function.
	ErrNilFunc = errors.New("steffensen: function is nil")

	// ErrZeroSlope is returned when the slope surrogate vanishes and the
	// update would divide by zero.
	ErrZeroSlope = errors.New("steffensen: slope surrogate is zero")
)

// DefaultOptions returns the solver configuration Steffensen's method
// starts from: 16 rounds, 4·machine-epsilon tolerance, no trace.
func DefaultOptions() solver.Options {
	return solver.Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}

// Root approximates a root of f starting from the initial guess x0.
//
// Each round evaluates fx = f(xₙ). An exact zero makes xₙ final on the
// spot. Otherwise the slope surrogate g = f(xₙ + fx)/fx − 1 yields the
// update xₙ₊₁ = xₙ − fx/g; the update is applied first and |fx| is
// checked against the tolerance after, so a converging round still moves.
// If the cap runs out, the current iterate comes back with a nil error.
//
// Returns ErrNilFunc for a nil f and ErrZeroSlope (with the last good
// iterate) when g vanishes.
func Root(f solver.Func, x0 float64, opts ...solver.Option) (float64, []float64, error) {
	if f == nil {
		return 0, nil, ErrNilFunc
	}
	o, err := solver.NewOptions(DefaultOptions(), opts...)
	if err != nil {
		return 0, nil, err
	}

	step := func(xn float64) (float64, bool, error) {
		fx := f(xn)
		if fx == 0 {
			return xn, true, nil
		}

		g := f(xn+fx)/fx - 1
		if g == 0 {
			return xn, false, ErrZeroSlope
		}

		next := xn - fx/g
		if math.Abs(fx) < o.Epsilon {
			return next, true, nil
		}

		return next, false, nil
	}

	return solver.Iterate(x0, step, o)
}
