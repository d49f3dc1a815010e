package cplx_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/cplx"
)

// Example walks the introductory arithmetic drill: two small complex
// numbers put through every named operation.
func Example() {
	z, _ := cplx.New(1, 2)
	w, _ := cplx.New(1, -1)

	fmt.Println("z      =", z)
	fmt.Println("w      =", w)
	fmt.Println("-z     =", z.Neg())
	fmt.Println("z + w  =", z.Add(w))
	fmt.Println("z - w  =", z.Sub(w))
	fmt.Println("z * w  =", z.Mul(w))
	q, _ := z.Div(w)
	fmt.Println("z / w  =", q)
	fmt.Println("conj z =", z.Conj())
	fmt.Printf("|z|    = %.4f\n", z.Modulus())
	fmt.Printf("arg z  = %.4f\n", z.Arg())
	// Output:
	// z      = 1 + 2 i
	// w      = 1 - 1 i
	// -z     = -1 - 2 i
	// z + w  = 2 + 1 i
	// z - w  = 0 + 3 i
	// z * w  = 3 + 1 i
	// z / w  = -0.5 + 1.5 i
	// conj z = 1 - 2 i
	// |z|    = 2.2361
	// arg z  = 1.1071
}

// ExampleComplex_MulAssign accumulates a running product in place: each
// multiplication by 1+1i turns 45° and stretches by √2, so four of them
// land on the negative real axis at (1+1i)⁴ = −4.
func ExampleComplex_MulAssign() {
	acc := cplx.Complex{Re: 1}
	step, _ := cplx.New(1, 1)
	for i := 0; i < 4; i++ {
		acc.MulAssign(step)
	}
	fmt.Println(acc)
	// Output:
	// -4 + 0 i
}
