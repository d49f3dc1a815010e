// Package power raises values to integer exponents by repeated squaring:
// O(log n) multiplications instead of the naive n−1.
//
// What
//
//   - Pow computes zⁿ for any base satisfying the Number algebra and any
//     built-in integer exponent type (signed or unsigned, via
//     constraints.Integer).
//   - Number is the smallest contract squaring needs: Mul for closure,
//     One for the empty product, Inv for negative exponents.
//   - Real adapts a bare float64 to that contract, so the same Pow serves
//     real and complex bases alike.
//
// Why
//
//   - Squaring halves the exponent every round: z¹⁰²⁴ takes 10
//     multiplications, not 1023.
//   - The base type supplies the arithmetic, so one implementation covers
//     float64, cplx.Complex, and anything else with Mul/Inv/One.
//
// Semantics
//
//	n == 0 yields One() for every base, including zero: the empty product
//	convention 0⁰ = 1. A negative exponent first inverts the base, so
//	0⁻ⁿ fails with the adapter's division error; the asymmetry between
//	0⁰ and 0⁻ⁿ is deliberate.
//
//	Exponents equal to the minimum value of a signed integer type cannot
//	be negated and are unsupported.
//
// Complexity
//
//   - Time:   O(log |n|) calls to Mul (plus one Inv for negative n)
//   - Memory: O(1)
//
// Usage
//
//	x, err := power.Pow(power.Real(2), 10)        // 1024
//	z, err := power.Pow(cplx.Complex{Re: 1, Im: 1}, -30)
//	if err != nil { ... }                         // a division error from Inv
//
// Errors
//
//   - power.ErrDivisionByZero  if Real(0) is raised to a negative exponent.
//   - Other bases surface their own Inv error (e.g. cplx.ErrDivisionByZero).
package power
