// Package heron approximates square roots with Heron's (Babylonian)
// iteration: average the guess with x divided by the guess, repeat.
//
// What
//
//   - Sqrt(x) runs a ↦ (a + x/a)/2 starting from a = x until the relative
//     residual (x − a²)/x falls within tolerance.
//   - Convergence is quadratic: the number of correct digits roughly
//     doubles every round, so the default cap of 16 saturates a float64
//     for inputs of moderate magnitude.
//   - Accepts the shared solver options; with solver.WithTrace() the full
//     sequence of guesses comes back alongside the root.
//
// Why
//
//   - The oldest root-finding algorithm on record, and still the cleanest
//     showcase of a quadratically convergent fixed point.
//   - It is Newton's method on f(a) = a² − x, without ever forming a
//     derivative.
//
// Complexity
//
//   - Time:   O(MaxIterations) at worst; in practice a handful of rounds
//   - Memory: O(1), plus O(rounds) when the trace is requested
//
// Usage
//
//	root, _, err := heron.Sqrt(2)
//	// root == 1.4142135623730951
//
//	root, trace, err := heron.Sqrt(2, solver.WithTrace())
//	// trace: 2, 1.5, 1.4166…, …, root
//
//	root, _, err = heron.Sqrt(2, solver.WithEpsilon(1e-3))
//	// a coarser tolerance stops earlier
//
// Errors
//
//   - ErrNonPositive            if x <= 0; the iteration is defined for
//     strictly positive reals only.
//   - solver.ErrOptionViolation if an invalid Option was supplied.
//
// A NaN input is not caught by the x <= 0 guard: comparisons with NaN are
// false, so NaN flows through the arithmetic and comes back as NaN with a
// nil error, by ordinary IEEE 754 rules.
package heron
