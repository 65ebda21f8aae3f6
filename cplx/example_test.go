package cplx_test

import (
	"fmt"

	"github.com/katalvlaran/complexsolver/cplx"
)

// ExampleDiv shows the regular quotient and the zero-denominator policy.
func ExampleDiv() {
	a := cplx.New(3, 4)
	fmt.Println(cplx.Div(a, cplx.New(1, -2)))
	fmt.Println(cplx.Div(a, cplx.Zero))
	// Output:
	// (-1+2i)
	// (0+0i)
}
