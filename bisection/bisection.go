// Package bisection implements the interval-halving root finder on top of
// the shared solver loop.
package bisection

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlmath/solver"
)

const (
	// DefaultMaxIterations caps the loop at 64 rounds, one halving per
	// bit of a float64 word, enough to exhaust the bracket's resolution.
	DefaultMaxIterations = 64

	// DefaultEpsilon is double-precision machine epsilon, 2⁻⁵², applied
	// to |f(mid)|.
	DefaultEpsilon = 2.220446049250313e-16
)

// Sentinel errors for bisection execution.
var (
	// ErrNilFunc is returned when Root receives a nil function.
	ErrNilFunc = errors.New("bisection: function is nil")

	// ErrNoSignChange is returned when f(a) and f(b) do not straddle
	// zero, so the bracket carries no root guarantee.
	ErrNoSignChange = errors.New("bisection: f(a) and f(b) must differ in sign")
)

// DefaultOptions returns the solver configuration bisection starts from:
// 64 rounds, machine-epsilon tolerance, no trace.
func DefaultOptions() solver.Options {
	return solver.Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}

// Root approximates a root of f inside the bracket [a, b].
//
// The endpoints are probed first: an exact root there is returned as-is,
// with a nil trace. Otherwise f(a) and f(b) must differ in sign. The
// bracket is relabeled so f is negative on the left and positive on the
// right, and the loop walks midpoints: a midpoint within tolerance is
// the root; otherwise it replaces the endpoint whose sign it shares. If
// the cap runs out, the last midpoint comes back with a nil error.
//
// Returns ErrNilFunc for a nil f and ErrNoSignChange for a sign-blind
// bracket.
func Root(f solver.Func, a, b float64, opts ...solver.Option) (float64, []float64, error) {
	if f == nil {
		return 0, nil, ErrNilFunc
	}
	o, err := solver.NewOptions(DefaultOptions(), opts...)
	if err != nil {
		return 0, nil, err
	}

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil, nil
	}
	if fb == 0 {
		return b, nil, nil
	}

	// Orient the bracket so that f(left) < 0 < f(right). Only the signs
	// matter; left may lie to the right of right on the number line.
	var left, right float64
	switch {
	case fa < 0 && fb > 0:
		left, right = a, b
	case fb < 0 && fa > 0:
		left, right = b, a
	default:
		return 0, nil, ErrNoSignChange
	}

	step := func(mid float64) (float64, bool, error) {
		fm := f(mid)
		if math.Abs(fm) <= o.Epsilon {
			return mid, true, nil
		}
		if fm < 0 {
			left = mid
			return 0.5 * (mid + right), false, nil
		}
		right = mid

		return 0.5 * (left + mid), false, nil
	}

	return solver.Iterate(0.5*(a+b), step, o)
}
