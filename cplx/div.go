package cplx

// Inv returns the multiplicative inverse 1/z, rationalized through the
// conjugate:
//
//	1/z = conj(z) / |z|²
//
// Returns ErrDivisionByZero when z has zero modulus.
func (z Complex) Inv() (Complex, error) {
	if z.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	d := z.Abs2()

	return Complex{Re: z.Re / d, Im: -z.Im / d}, nil
}

// Div returns the quotient z/w, rationalized through the conjugate:
//
//	z/w = z·conj(w) / |w|²
//
// Returns ErrDivisionByZero when w has zero modulus.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	d := w.Abs2()

	return Complex{
		Re: (z.Re*w.Re + z.Im*w.Im) / d,
		Im: (z.Im*w.Re - z.Re*w.Im) / d,
	}, nil
}

// DivReal returns z divided by the real scalar s.
// Returns ErrDivisionByZero when s is zero.
func (z Complex) DivReal(s float64) (Complex, error) {
	if s == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{Re: z.Re / s, Im: z.Im / s}, nil
}
