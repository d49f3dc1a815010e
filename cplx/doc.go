// Package cplx provides a transparent, hand-rolled complex value type with
// named arithmetic methods: the textbook a + bi pair, no operator magic.
//
// What
//
//   - Complex is a plain value pair of float64 components, Re and Im.
//   - Value-returning arithmetic: Add, Sub, Mul, Div, Neg, Conj, Inv, plus
//     the scalar twins AddReal, SubReal, MulReal, DivReal.
//   - In-place variants on pointer receivers: AddAssign, SubAssign,
//     MulAssign and their scalar twins, mirroring the value methods bit for
//     bit.
//   - Polar views: Modulus (Euclidean magnitude), Abs2 (squared modulus),
//     Arg (principal argument via atan2).
//   - Constructors New and FromReal reject NaN and ±Inf components, so a
//     constructed value always starts finite.
//   - Equal is exact component-wise comparison; String renders "a + b i",
//     normalizing a negative imaginary part to "a - |b| i".
//
// Why
//
//   - The stdlib complex128 hides the representation behind operators; here
//     every formula is an ordinary method you can read, step through, and
//     unit-test.
//   - Complex satisfies the minimal multiplicative algebra consumed by
//     power.Pow (Mul, Inv, One), so zⁿ costs O(log n) multiplications with
//     no code specific to complex numbers.
//
// Semantics
//
//	Arithmetic methods never validate and never fail: non-finite values
//	arising mid-computation propagate by ordinary IEEE 754 rules. Only the
//	constructors (ErrNonFinite) and the division family (ErrDivisionByZero)
//	return errors. Division rationalizes through the conjugate:
//	z/w = z·conj(w) / |w|², and is rejected exactly when |w|² == 0.
//
// Complexity
//
//   - Every operation is O(1): at most four multiplications, an addition
//     or two, and for Div one square root avoided entirely (Abs2).
//
// Usage
//
//	z, err := cplx.New(1, 2)  // 1 + 2i
//	if err != nil { ... }     // ErrNonFinite
//	w, _ := cplx.New(1, -1)
//
//	sum := z.Add(w)           // 2 + 1i
//	prod := z.Mul(w)          // 3 + 1i
//	q, err := z.Div(w)        // -0.5 + 1.5i
//	if err != nil { ... }     // ErrDivisionByZero
//
//	r := z.Modulus()          // √5
//	phi := z.Arg()            // atan2(2, 1)
//
// Errors
//
//   - ErrNonFinite       if a constructor receives NaN or ±Inf.
//   - ErrDivisionByZero  if Div, DivReal or Inv meets a zero divisor.
package cplx
