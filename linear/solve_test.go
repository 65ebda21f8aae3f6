package linear_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// policies runs a subtest for the hardened and the legacy solver.
var policies = []struct {
	name string
	opts []linear.Option
}{
	{"hardened", nil},
	{"legacy", []linear.Option{linear.WithLegacy()}},
	{"no-pivot", []linear.Option{linear.WithPivoting(linear.PivotNone)}},
}

// TestSolve_TwoByTwo covers x+y=3, 2x-y=0 → x=1, y=2.
func TestSolve_TwoByTwo(t *testing.T) {
	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			a := MustRows(t, realRow(1, 1, 3), realRow(2, -1, 0))
			x, err := linear.Solve(a, p.opts...)
			require.NoError(t, err)
			AssertVectorClose(t, linear.Vector{c(1, 0), c(2, 0)}, x, 1e-6)
		})
	}
}

func TestSolve_ComplexThreeByThree(t *testing.T) {
	coeffs := [][]cplx.Complex{
		{c(2, 1), c(1, 0), c(0, -1)},
		{c(1, 0), c(3, 0), c(1, 1)},
		{c(0, 0), c(-1, 2), c(4, 0)},
	}
	want := linear.Vector{c(1, -1), c(2, 0), c(0, 1)}
	a := systemFor(t, coeffs, want)

	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			x, err := linear.Solve(a, p.opts...)
			require.NoError(t, err)
			AssertVectorClose(t, want, x, 1e-5)
		})
	}
}

// TestSolve_RandomRoundTrip substitutes the solution back for n = 2..5.
func TestSolve_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for n := linear.MinUnknowns; n <= linear.MaxUnknowns; n++ {
		for trial := 0; trial < 20; trial++ {
			coeffs, want := RandomWellConditioned(rng, n)
			a := systemFor(t, coeffs, want)
			for _, p := range policies {
				t.Run(fmt.Sprintf("n=%d/%d/%s", n, trial, p.name), func(t *testing.T) {
					x, err := linear.Solve(a, p.opts...)
					require.NoError(t, err)
					AssertVectorClose(t, want, x, 1e-3)

					res, err := linear.Residual(a, x)
					require.NoError(t, err)
					var scale float32
					for i := 0; i < n; i++ {
						b, _ := a.At(i, n)
						scale = float32(math.Max(float64(scale), float64(b.Abs())))
					}
					assert.LessOrEqual(t, res, 1e-3*(scale+1))
				})
			}
		}
	}
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	a := MustRows(t, realRow(0, 1, 2), realRow(1, 0, 3))
	before := a.Clone()

	x, err := linear.Solve(a)
	require.NoError(t, err)
	AssertVectorClose(t, linear.Vector{c(3, 0), c(2, 0)}, x, 1e-6)
	assert.Equal(t, before, a)
}

// TestSolve_ZeroLeadingPivot needs a row swap: hardened pivots, legacy
// divides by zero and silently returns zeros.
func TestSolve_ZeroLeadingPivot(t *testing.T) {
	a := MustRows(t, realRow(0, 1, 2), realRow(1, 0, 3))

	_, err := linear.Solve(a, linear.WithPivoting(linear.PivotNone))
	require.ErrorIs(t, err, linear.ErrSingular)

	x, err := linear.Solve(a, linear.WithLegacy())
	require.NoError(t, err)
	assert.Equal(t, linear.Vector{cplx.Zero, cplx.Zero}, x)

	x, err = linear.Solve(a, linear.WithLegacy(), linear.WithPivoting(linear.PivotPartial))
	require.NoError(t, err)
	AssertVectorClose(t, linear.Vector{c(3, 0), c(2, 0)}, x, 1e-6)
}

func TestSolve_Singular(t *testing.T) {
	a := MustRows(t, realRow(1, 2, 3), realRow(2, 4, 6))

	_, err := linear.Solve(a)
	require.ErrorIs(t, err, linear.ErrSingular)
	assert.Contains(t, err.Error(), "pivot column 1")

	x, err := linear.Solve(a, linear.WithLegacy())
	require.NoError(t, err)
	assert.Equal(t, linear.Vector{c(3, 0), cplx.Zero}, x)
	for _, v := range x {
		assert.True(t, v.IsFinite())
	}
}

func TestSolve_AllZero(t *testing.T) {
	a, err := linear.NewAugmented(3)
	require.NoError(t, err)

	_, err = linear.Solve(a)
	require.ErrorIs(t, err, linear.ErrSingular)

	x, err := linear.Solve(a, linear.WithLegacy())
	require.NoError(t, err)
	assert.Equal(t, linear.Vector{cplx.Zero, cplx.Zero, cplx.Zero}, x)
}

// TestSolve_NearSingular checks the relative threshold and WithEpsilon(0).
func TestSolve_NearSingular(t *testing.T) {
	a := MustRows(t, realRow(1, 1, 2), realRow(1, 1.0000001, 2))

	_, err := linear.Solve(a)
	require.ErrorIs(t, err, linear.ErrSingular)

	_, err = linear.Solve(a, linear.WithEpsilon(0))
	require.NoError(t, err)
}

// TestSolve_ScaledDiagonal solves s·x = s, s·y = 2s for scales whose squares
// leave the float32 range.
func TestSolve_ScaledDiagonal(t *testing.T) {
	for _, s := range []float32{1e19, 1e20, 1e30, 1e-20, 1e-23, 1e-30} {
		t.Run(fmt.Sprintf("s=%g", s), func(t *testing.T) {
			a := MustRows(t, realRow(s, 0, s), realRow(0, s, 2*s))
			x, err := linear.Solve(a)
			require.NoError(t, err)
			AssertVectorClose(t, linear.Vector{c(1, 0), c(2, 0)}, x, 1e-5)
		})
	}

	// Legacy keeps the single-precision quotient, whose denominator overflows.
	a := MustRows(t, realRow(1e20, 0, 1e20), realRow(0, 1e20, 2e20))
	x, err := linear.Solve(a, linear.WithLegacy())
	require.NoError(t, err)
	assert.False(t, x[0].IsFinite())
}

// TestSolve_ResultOverflow checks that a regular system whose solution does
// not fit in float32 is reported as NaN/Inf, not as singular.
func TestSolve_ResultOverflow(t *testing.T) {
	a := MustRows(t, realRow(1e-3, 0, 1e38), realRow(0, 1, 1))

	_, err := linear.Solve(a)
	require.ErrorIs(t, err, linear.ErrNaNInf)
	assert.NotErrorIs(t, err, linear.ErrSingular)
	assert.Contains(t, err.Error(), "x[0]")
}

func TestSolve_NaNInf(t *testing.T) {
	a := MustRows(t, realRow(1, 1, 3), []cplx.Complex{c(2, 0), c(float32(math.NaN()), 0), c(0, 0)})

	_, err := linear.Solve(a)
	require.ErrorIs(t, err, linear.ErrNaNInf)

	_, err = linear.Solve(a, linear.WithLegacy())
	require.NoError(t, err)
}

func TestSolve_Nil(t *testing.T) {
	_, err := linear.Solve(nil)
	require.ErrorIs(t, err, linear.ErrNilMatrix)

	_, err = linear.Residual(nil, nil)
	require.ErrorIs(t, err, linear.ErrNilMatrix)
}

// TestSolve_ZeroValueMatrix checks that an Augmented not built by the
// constructors is rejected rather than indexed.
func TestSolve_ZeroValueMatrix(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"solve", func() error { _, err := linear.Solve(&linear.Augmented{}); return err }},
		{"solve legacy", func() error { _, err := linear.Solve(&linear.Augmented{}, linear.WithLegacy()); return err }},
		{"residual", func() error { _, err := linear.Residual(&linear.Augmented{}, nil); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = tc.run() })
			require.ErrorIs(t, err, linear.ErrBadSize)
		})
	}
}

func TestResidual(t *testing.T) {
	a := MustRows(t, realRow(1, 1, 3), realRow(2, -1, 0))

	r, err := linear.Residual(a, linear.Vector{c(1, 0), c(2, 0)})
	require.NoError(t, err)
	assert.Equal(t, float32(0), r)

	r, err = linear.Residual(a, linear.Vector{c(1, 0), c(1, 0)})
	require.NoError(t, err)
	assert.Equal(t, float32(1), r)

	_, err = linear.Residual(a, linear.Vector{c(1, 0)})
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { linear.WithEpsilon(-1) })
	assert.Panics(t, func() { linear.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { linear.WithPivoting(linear.Pivoting(7)) })
	assert.NotPanics(t, func() { linear.WithEpsilon(0) })

	assert.Equal(t, "partial", linear.PivotPartial.String())
	assert.Equal(t, "none", linear.PivotNone.String())
}

// TestOptions_HardenedOverridesLegacy checks that options apply in order.
func TestOptions_HardenedOverridesLegacy(t *testing.T) {
	a := MustRows(t, realRow(1, 2, 3), realRow(2, 4, 6))
	_, err := linear.Solve(a, linear.WithLegacy(), linear.WithHardened())
	require.ErrorIs(t, err, linear.ErrSingular)
}
