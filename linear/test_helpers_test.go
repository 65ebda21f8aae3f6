// Package linear_test contains test helpers.
//
// Purpose:
//   - Build deterministic systems with a known solution.
//   - Compare complex vectors under a mixed absolute/relative tolerance.
package linear_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// c is a short constructor for table data.
func c(re, im float32) cplx.Complex { return cplx.New(re, im) }

// realRow builds a row of purely real entries.
func realRow(vals ...float32) []cplx.Complex {
	out := make([]cplx.Complex, len(vals))
	for i, v := range vals {
		out[i] = c(v, 0)
	}

	return out
}

// MustRows builds an Augmented or fails the test.
func MustRows(t testing.TB, rows ...[]cplx.Complex) *linear.Augmented {
	t.Helper()
	a, err := linear.FromRows(rows)
	require.NoError(t, err)

	return a
}

// systemFor builds [A | A·x] so that x is the exact solution.
func systemFor(t testing.TB, coeffs [][]cplx.Complex, x linear.Vector) *linear.Augmented {
	t.Helper()
	n := len(coeffs)
	rows := make([][]cplx.Complex, n)
	for i := range coeffs {
		row := append([]cplx.Complex(nil), coeffs[i]...)
		b := cplx.Zero
		for j := 0; j < n; j++ {
			b = cplx.Add(b, cplx.Mul(coeffs[i][j], x[j]))
		}
		rows[i] = append(row, b)
	}

	return MustRows(t, rows...)
}

// RandomWellConditioned returns an n×n diagonally dominant complex matrix and
// a random solution, seeded for determinism.
func RandomWellConditioned(rng *rand.Rand, n int) ([][]cplx.Complex, linear.Vector) {
	coeffs := make([][]cplx.Complex, n)
	for i := range coeffs {
		coeffs[i] = make([]cplx.Complex, n)
		var rowSum float32
		for j := range coeffs[i] {
			coeffs[i][j] = c(rng.Float32()*2-1, rng.Float32()*2-1)
			rowSum += coeffs[i][j].Abs()
		}
		coeffs[i][i] = cplx.Add(coeffs[i][i], c(rowSum+1, 0))
	}
	x := make(linear.Vector, n)
	for i := range x {
		x[i] = c(rng.Float32()*20-10, rng.Float32()*20-10)
	}

	return coeffs, x
}

// AssertVectorClose fails unless got and want agree component-wise within
// abs/rel tolerance.
func AssertVectorClose(t testing.TB, want, got linear.Vector, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, scalar.EqualWithinAbsOrRel(float64(got[i].Re), float64(want[i].Re), tol, tol),
			"x[%d].Re: got %v want %v", i, got[i].Re, want[i].Re)
		require.Truef(t, scalar.EqualWithinAbsOrRel(float64(got[i].Im), float64(want[i].Im), tol, tol),
			"x[%d].Im: got %v want %v", i, got[i].Im, want[i].Im)
	}
}
