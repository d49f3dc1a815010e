// Package power provides the Number algebra, the Real adapter, and error
// definitions for exponentiation by squaring.
package power

import "errors"

// ErrDivisionByZero is returned when Real(0) is asked for its inverse,
// i.e. when a zero real base meets a negative exponent.
var ErrDivisionByZero = errors.New("power: division by zero")

// Number is the minimal multiplicative algebra Pow requires: closed
// multiplication, a multiplicative inverse that may fail on zero, and the
// multiplicative identity. The type parameter ties every method to the
// implementing type itself.
type Number[T any] interface {
	// Mul returns the product of the receiver and the argument.
	Mul(T) T

	// Inv returns the multiplicative inverse of the receiver, or an
	// error when no inverse exists.
	Inv() (T, error)

	// One returns the multiplicative identity of the type.
	One() T
}

// Real adapts float64 to the Number algebra so the same Pow serves plain
// real bases.
type Real float64

// Mul returns the product x·y.
func (x Real) Mul(y Real) Real {
	return x * y
}

// Inv returns the reciprocal 1/x.
// Returns ErrDivisionByZero when x is zero.
func (x Real) Inv() (Real, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}

	return 1 / x, nil
}

// One returns the multiplicative identity.
func (Real) One() Real {
	return 1
}
