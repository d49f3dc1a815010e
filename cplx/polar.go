package cplx

import "math"

// Modulus returns the Euclidean magnitude of z:
//
//	|z| = √(Re² + Im²)
func (z Complex) Modulus() float64 {
	return math.Sqrt(z.Re*z.Re + z.Im*z.Im)
}

// Abs2 returns the squared modulus Re² + Im², skipping the square root.
// Division rationalizes through this quantity.
func (z Complex) Abs2() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Arg returns the principal argument of z, the angle of its polar form
// measured from the positive real axis, in (−π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}
