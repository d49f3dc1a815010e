// SPDX-License-Identifier: MIT

// Package solver provides tunable options and error definitions
// for the bounded iterative methods built on top of it.
package solver

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for solver execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrNilStep is returned if a nil step function is passed to Iterate.
	ErrNilStep = errors.New("solver: step function is nil")
)

// Func is a scalar function of one real variable, f: ℝ → ℝ.
// Root finders receive the function under study in this shape.
type Func func(x float64) float64

// Step advances an iteration by one round. Given the current iterate it
// returns the next iterate, whether the method has converged, and an error
// when no further progress is possible. A done step's value is final.
type Step func(x float64) (next float64, done bool, err error)

// Option configures solver behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive iteration cap), it will be
// recorded internally and surfaced as ErrOptionViolation when the solver
// is invoked.
type Option func(*Options)

// Options holds the parameters every bounded convergence loop shares.
// Each method package exposes its own DefaultOptions() with the cap and
// tolerance the textbook formulation of that method uses.
type Options struct {
	// MaxIterations caps the number of rounds before the loop gives up
	// and returns the current iterate as-is. Must be positive.
	MaxIterations int

	// Epsilon is the convergence tolerance. Each method interprets it
	// against its own residual (relative error for heron, |f(x)| for
	// steffensen and bisection). Must be positive and finite.
	Epsilon float64

	// ReturnTrace records every iterate the loop visits.
	ReturnTrace bool

	// internal error recorded during option parsing
	err error
}

// NewOptions applies opts on top of defaults and reports the first
// violation recorded while parsing, if any.
func NewOptions(defaults Options, opts ...Option) (Options, error) {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithMaxIterations overrides the method's default iteration cap.
//
//	n > 0:  cap the loop at n rounds
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEpsilon overrides the method's default convergence tolerance.
//
//	eps > 0 and finite: use eps as the tolerance
//	anything else:      invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Epsilon must be positive and finite (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithTrace asks the solver to record and return every iterate it visits.
func WithTrace() Option {
	return func(o *Options) {
		o.ReturnTrace = true
	}
}
