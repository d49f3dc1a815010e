// Package bisection finds roots by interval halving: the bracketing
// method that trades speed for a guarantee.
//
// What
//
//   - Root(f, a, b) requires f(a) and f(b) to straddle zero. Each round
//     evaluates the midpoint, keeps the half that still straddles, and
//     repeats until |f(mid)| is within tolerance or the cap runs out.
//   - Either endpoint already being an exact root returns immediately,
//     before any sign analysis.
//   - The bracket is reoriented internally so the negative side is always
//     on the "left"; a and b may arrive in any order.
//   - Accepts the shared solver options; solver.WithTrace() returns the
//     midpoint sequence.
//
// Why
//
//   - One bit of the answer per round, every round, for any continuous f:
//     the default cap of 64 lets the bracket shrink by 2⁻⁶⁴.
//   - The robust fallback when Newton-flavored methods (see steffensen)
//     have nothing to grip.
//
// Complexity
//
//   - Time:   one evaluation of f per round, at most MaxIterations rounds
//     (plus the two endpoint probes)
//   - Memory: O(1), plus O(rounds) when the trace is requested
//
// Usage
//
//	root, _, err := bisection.Root(math.Sin, 3, 4)
//	// root ≈ π
//
// Errors
//
//   - ErrNilFunc                if f is nil.
//   - ErrNoSignChange           if f(a) and f(b) do not straddle zero; a
//     bracket with equal signs carries no root guarantee, so it is
//     rejected outright rather than searched on hope.
//   - solver.ErrOptionViolation if an invalid Option was supplied.
package bisection
