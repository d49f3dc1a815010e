package power

import "golang.org/x/exp/constraints"

// Pow computes zⁿ with O(log |n|) multiplications by squaring the base and
// halving the exponent.
//
// Stages:
//  1. n == 0 returns z.One() regardless of z: the empty product, so
//     0⁰ = 1 by convention.
//  2. n < 0 replaces z by its inverse and negates n; a base with no
//     inverse surfaces its own error here (0⁻ⁿ fails, the asymmetry with
//     0⁰ is intentional).
//  3. While n > 1: an odd n folds one factor of the base into scale, then
//     the base squares and n halves. The loop exits with the answer split
//     across the squared base and the folded-out scale.
func Pow[T Number[T], N constraints.Integer](z T, n N) (T, error) {
	if n == 0 {
		return z.One(), nil
	}

	output := z
	if n < 0 {
		inv, err := output.Inv()
		if err != nil {
			var zero T
			return zero, err
		}
		output = inv
		n = -n
	}

	scale := output.One()
	for n > 1 {
		if n%2 == 1 {
			scale = scale.Mul(output)
			n--
		}
		output = output.Mul(output)
		n >>= 1
	}

	return output.Mul(scale), nil
}
