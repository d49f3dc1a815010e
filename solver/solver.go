// SPDX-License-Identifier: MIT

package solver

// Iterate drives step from x0 until it reports done, returns an error, or
// the iteration cap in o is exhausted.
//
// Return values:
//   - the final iterate: a done step's value, the last good iterate before
//     a step error, or the current iterate once the cap runs out (cap
//     exhaustion is best-effort and carries a nil error);
//   - the visited trace when o.ReturnTrace is set (x0 first, then every
//     value produced by a step; the last entry equals the returned
//     iterate), nil otherwise;
//   - ErrNilStep, ErrOptionViolation, or the step's own error.
func Iterate(x0 float64, step Step, o Options) (float64, []float64, error) {
	if step == nil {
		return x0, nil, ErrNilStep
	}
	if o.err != nil {
		return x0, nil, o.err
	}
	if o.MaxIterations <= 0 {
		return x0, nil, ErrOptionViolation
	}

	var trace []float64
	if o.ReturnTrace {
		trace = make([]float64, 0, o.MaxIterations+1)
		trace = append(trace, x0)
	}

	x := x0
	for iter := 0; iter < o.MaxIterations; iter++ {
		next, done, err := step(x)
		if err != nil {
			return x, trace, err
		}
		if o.ReturnTrace {
			trace = append(trace, next)
		}
		if done {
			return next, trace, nil
		}
		x = next
	}

	return x, trace, nil
}
