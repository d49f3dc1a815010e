// Package steffensen finds roots of scalar functions with Steffensen's
// method: Newton-like quadratic convergence, no derivative required.
//
// What
//
//   - Root(f, x0) iterates xₙ₊₁ = xₙ − f(xₙ)/g(xₙ), where the slope
//     surrogate g(xₙ) = f(xₙ + f(xₙ))/f(xₙ) − 1 is built from two
//     evaluations of f itself.
//   - Near a simple root, f(xₙ) is small, so xₙ + f(xₙ) probes f right
//     beside xₙ and g approaches the true derivative; hence quadratic
//     convergence without ever differentiating.
//   - Accepts the shared solver options; solver.WithTrace() returns the
//     iterate sequence.
//
// Why
//
//   - Newton's speed when a derivative is unavailable, inconvenient, or
//     simply not part of the lesson.
//   - The faithful companion piece to heron: same loop, same options,
//     different step rule.
//
// Convergence caveat
//
//	The surrogate g only resembles f′ while |f(xₙ)| is small. Far from a
//	root the probe xₙ + f(xₙ) lands far away, the slope estimate degrades,
//	and the method crawls or wanders. Start reasonably close; the loop cap
//	bounds the damage either way.
//
// Complexity
//
//   - Time:   two evaluations of f per round, at most MaxIterations rounds
//   - Memory: O(1), plus O(rounds) when the trace is requested
//
// Usage
//
//	f := func(x float64) float64 { return 2 - x*x }
//	root, _, err := steffensen.Root(f, 2)
//	// root ≈ √2
//
//	root, trace, err := steffensen.Root(f, 2, solver.WithTrace())
//
// Errors
//
//   - ErrNilFunc                if f is nil.
//   - ErrZeroSlope              if the slope surrogate vanishes and no
//     further progress is possible; the last good iterate is returned
//     alongside the error.
//   - solver.ErrOptionViolation if an invalid Option was supplied.
package steffensen
