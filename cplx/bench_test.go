package cplx_test

import (
	"testing"

	"github.com/katalvlaran/complexsolver/cplx"
)

// sink to defeat dead-code elimination
var sinkC cplx.Complex

func BenchmarkDiv(b *testing.B) {
	b.ReportAllocs()
	x := cplx.New(3, 4)
	y := cplx.New(1, -2)
	for i := 0; i < b.N; i++ {
		sinkC = cplx.Div(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	x := cplx.New(3, 4)
	y := cplx.New(1, -2)
	for i := 0; i < b.N; i++ {
		sinkC = cplx.Mul(x, y)
	}
}
