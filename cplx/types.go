// Package cplx provides the Complex value type, its constructors, and
// error definitions for complex arithmetic.
package cplx

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for complex construction and division.
var (
	// ErrNonFinite is returned when a constructor receives a component
	// that is not a finite real number (NaN or ±Inf).
	ErrNonFinite = errors.New("cplx: component is not a finite real number")

	// ErrDivisionByZero is returned when Div, DivReal or Inv meets a
	// divisor of zero modulus.
	ErrDivisionByZero = errors.New("cplx: division by zero")
)

// Complex is the textbook complex number a + bi, stored as its real and
// imaginary components. The zero value is the complex zero, 0 + 0i.
//
// Complex is a plain value type: arithmetic methods return fresh values
// and assignment copies, so distinct variables never share state. The
// *Assign methods on pointer receivers mutate in place for callers that
// accumulate.
type Complex struct {
	// Re is the real component a.
	Re float64

	// Im is the imaginary component b.
	Im float64
}

// New constructs the complex number re + im·i.
// Each component must be a finite real number; otherwise New reports
// ErrNonFinite naming the offending part.
func New(re, im float64) (Complex, error) {
	if !isFinite(re) {
		return Complex{}, fmt.Errorf("%w: real part (%g)", ErrNonFinite, re)
	}
	if !isFinite(im) {
		return Complex{}, fmt.Errorf("%w: imaginary part (%g)", ErrNonFinite, im)
	}

	return Complex{Re: re, Im: im}, nil
}

// FromReal promotes the real scalar s to the complex number s + 0i.
func FromReal(s float64) (Complex, error) {
	return New(s, 0)
}

// One returns the multiplicative identity 1 + 0i.
//
// It is a method rather than a package constant so that Complex satisfies
// the minimal multiplicative algebra generic consumers such as power.Pow
// operate on.
func (Complex) One() Complex {
	return Complex{Re: 1}
}

// IsZero reports whether both components are exactly zero, i.e. whether
// z has zero modulus.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Equal reports exact component-wise equality. This is floating-point
// equality with no tolerance; callers needing approximate comparison
// bring their own epsilon.
func (z Complex) Equal(w Complex) bool {
	return z.Re == w.Re && z.Im == w.Im
}

// String renders z as "a + b i", normalizing a negative imaginary part
// to "a - |b| i" so the sign reads as the operator.
func (z Complex) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%g - %g i", z.Re, -z.Im)
	}

	return fmt.Sprintf("%g + %g i", z.Re, z.Im)
}

// isFinite reports whether x is an ordinary real number.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
