package notation_test

import (
	"fmt"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/notation"
)

func ExampleFormat() {
	z := cplx.New(3, -4)
	for _, m := range notation.Modes {
		fmt.Printf("%-12s %s\n", m, notation.Format(z, m))
	}
	// Output:
	// rectangular  3-4i
	// polar        5·-0.92730r
	// phasor       5·-53.1301d
	// engineering  3
}

func ExampleEngineering() {
	fmt.Println(notation.Engineering(1000))
	fmt.Println(notation.Engineering(1500))
	fmt.Println(notation.Engineering(0))
	// Output:
	// 1E3
	// 1.500E3
	// 0
}
