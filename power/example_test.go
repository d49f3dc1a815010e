package power_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/cplx"
	"github.com/katalvlaran/lvlmath/power"
)

// ExamplePow raises a real base to a handful of exponents.
func ExamplePow() {
	x, _ := power.Pow(power.Real(3), 5)
	fmt.Println("3^5  =", x)

	y, _ := power.Pow(power.Real(2), -2)
	fmt.Println("2^-2 =", y)

	zero, _ := power.Pow(power.Real(0), 0)
	fmt.Println("0^0  =", zero)
	// Output:
	// 3^5  = 243
	// 2^-2 = 0.25
	// 0^0  = 1
}

// ExamplePow_complex squares through (1+1i)⁸: two squarings land on −4,
// one more on 16.
func ExamplePow_complex() {
	z, _ := cplx.New(1, 1)
	p, err := power.Pow(z, 8)
	if err != nil {
		fmt.Println("pow:", err)
		return
	}
	fmt.Println("(1 + 1 i)^8 =", p)
	// Output:
	// (1 + 1 i)^8 = 16 + 0 i
}
