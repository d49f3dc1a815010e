package cplx

// Add returns the sum z + w, computed component-wise:
//
//	(a + bi) + (c + di) = (a + c) + (b + d)i
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// AddReal returns z + s, treating the scalar s as s + 0i.
func (z Complex) AddReal(s float64) Complex {
	return Complex{Re: z.Re + s, Im: z.Im}
}

// Sub returns the difference z − w:
//
//	(a + bi) − (c + di) = (a − c) + (b − d)i
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// SubReal returns z − s, treating the scalar s as s + 0i.
func (z Complex) SubReal(s float64) Complex {
	return Complex{Re: z.Re - s, Im: z.Im}
}

// Mul returns the product z·w, expanded with i² = −1:
//
//	(a + bi)(c + di) = (ac − bd) + (ad + bc)i
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// MulReal returns z scaled by the real factor s.
func (z Complex) MulReal(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Neg returns the additive inverse −z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate a − bi.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// AddAssign sets z to z + w in place.
func (z *Complex) AddAssign(w Complex) {
	z.Re += w.Re
	z.Im += w.Im
}

// AddRealAssign sets z to z + s in place.
func (z *Complex) AddRealAssign(s float64) {
	z.Re += s
}

// SubAssign sets z to z − w in place.
func (z *Complex) SubAssign(w Complex) {
	z.Re -= w.Re
	z.Im -= w.Im
}

// SubRealAssign sets z to z − s in place.
func (z *Complex) SubRealAssign(s float64) {
	z.Re -= s
}

// MulAssign sets z to the product z·w in place.
//
// Both product components depend on both old components, so the old real
// part is saved before it is overwritten.
func (z *Complex) MulAssign(w Complex) {
	re := z.Re
	z.Re = z.Re*w.Re - z.Im*w.Im
	z.Im = re*w.Im + z.Im*w.Re
}

// MulRealAssign scales z by the real factor s in place.
func (z *Complex) MulRealAssign(s float64) {
	z.Re *= s
	z.Im *= s
}
