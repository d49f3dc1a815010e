// SPDX-License-Identifier: MIT

// Package solver provides the bounded iterate-until-tolerance loop shared by
// every scalar method in lvlmath, plus the option set those methods accept.
//
// What
//
//   - Step is one round of an iteration: given the current iterate it returns
//     the next one, whether convergence was reached, and an optional error.
//   - Iterate drives a Step from an initial value until the step reports
//     done, fails, or the iteration cap is exhausted.
//   - Options carries the three knobs every method shares:
//   - MaxIterations: hard cap on rounds
//   - Epsilon: convergence tolerance, interpreted by each method
//   - ReturnTrace: record every iterate the loop visits
//   - Func is the scalar function shape f: ℝ → ℝ consumed by root finders.
//
// Why
//
//   - Heron, Steffensen and bisection differ only in their step rule; the
//     cap-and-tolerance plumbing is identical and lives here exactly once.
//   - A shared Options type lets one set of With* helpers serve every method.
//
// Semantics
//
//	Iterate(x0, step, o) calls step at most o.MaxIterations times.
//	  - step returns done==true  → its value is final; Iterate returns it.
//	  - step returns an error    → Iterate returns the last good iterate
//	    together with that error.
//	  - the cap runs out         → Iterate returns the current iterate with
//	    a nil error; exhaustion is best-effort, not a failure.
//	With ReturnTrace set, the trace holds x0 followed by every value a step
//	produced, so its last entry always equals the returned iterate. A round
//	that confirms convergence without moving records the same iterate twice.
//	Without ReturnTrace the trace is nil.
//
// Usage
//
//	o, err := solver.NewOptions(heron.DefaultOptions(), solver.WithEpsilon(1e-9))
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	root, trace, err := solver.Iterate(x0, step, o)
//
// Options
//
//   - WithMaxIterations(n): override the method's iteration cap (n > 0).
//   - WithEpsilon(eps):     override the method's tolerance (eps > 0, finite).
//   - WithTrace():          record and return every iterate visited.
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option was supplied.
//   - ErrNilStep          if Iterate receives a nil step function.
//   - Any error a Step returns is passed through unwrapped.
package solver
