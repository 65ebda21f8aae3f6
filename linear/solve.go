// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"

	"github.com/katalvlaran/complexsolver/cplx"
)

// Solve returns x with A·x = b for the augmented matrix a = [A | b].
//
// Implementation:
//   - Stage 1: copy a into a private scratch matrix; under the hardened
//     policy reject non-finite entries and derive the pivot threshold
//     eps·max|a_ij| from the coefficient columns.
//   - Stage 2: forward elimination. For pivot row i = 0..n-2 (after an
//     optional partial-pivot row swap) and every row j > i:
//     factor = a_ji / a_ii, then a_jk -= factor·a_ik for k = i..n.
//   - Stage 3: back substitution from row n-1 to 0:
//     x_i = (a_in − Σ_{j>i} a_ij·x_j) / a_ii.
//
// Behavior highlights:
//   - a is never modified; the returned Vector is freshly allocated.
//   - Under WithLegacy division goes through cplx.Div, so a zero pivot gives
//     a zero factor or zero unknown instead of an error.
//   - The hardened policy divides with cplx.DivWide and measures pivots in
//     float64, so badly scaled but regular systems (|a_ij| near 1e20 or
//     1e-23) are not mistaken for singular ones.
//
// Errors:
//   - ErrNilMatrix for a nil a.
//   - ErrBadSize for a matrix not built by NewAugmented or FromRows.
//   - ErrNaNInf for non-finite input, or an elimination step or result that
//     leaves the float32 range (hardened).
//   - ErrSingular when a pivot is negligible (hardened).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a *Augmented, opts ...Option) (Vector, error) {
	if a == nil {
		return nil, linearErrorf(opSolve, ErrNilMatrix)
	}
	if err := checkShape(a); err != nil {
		return nil, linearErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	div := cplx.DivWide
	if o.legacy {
		div = cplx.Div
	}

	// Stage 1: scratch copy and policy setup
	n := a.n
	m := a.Clone()
	var tol float64
	if !o.legacy {
		if err := validateFinite(a); err != nil {
			return nil, linearErrorf(opSolve, err)
		}
		tol = float64(o.eps) * maxCoefficient(a)
	}

	// Stage 2: forward elimination
	var (
		i, j, k int
		pivot   cplx.Complex
		factor  cplx.Complex
	)
	for i = 0; i < n-1; i++ {
		if o.pivoting == PivotPartial {
			m.swapRows(i, m.pivotRow(i))
		}
		pivot = m.at(i, i)
		if !o.legacy {
			if !pivot.IsFinite() {
				return nil, overflowAt(i)
			}
			if negligible(pivot, tol) {
				return nil, singularAt(i)
			}
		}
		for j = i + 1; j < n; j++ {
			factor = div(m.at(j, i), pivot)
			for k = i; k <= n; k++ {
				m.data[m.index(j, k)] = cplx.Sub(m.at(j, k), cplx.Mul(factor, m.at(i, k)))
			}
		}
	}
	if !o.legacy {
		if !m.at(n-1, n-1).IsFinite() {
			return nil, overflowAt(n - 1)
		}
		if negligible(m.at(n-1, n-1), tol) {
			return nil, singularAt(n - 1)
		}
	}

	// Stage 3: back substitution
	x := make(Vector, n)
	var sum cplx.Complex
	for i = n - 1; i >= 0; i-- {
		sum = cplx.Zero
		for j = i + 1; j < n; j++ {
			sum = cplx.Add(sum, cplx.Mul(m.at(i, j), x[j]))
		}
		x[i] = div(cplx.Sub(m.at(i, n), sum), m.at(i, i))
	}
	if !o.legacy {
		for i = range x {
			if !x[i].IsFinite() {
				return nil, linearErrorf(opSolve, fmt.Errorf("x[%d]: %w", i, ErrNaNInf))
			}
		}
	}

	return x, nil
}

// Residual returns max_i |Σ_j a_ij·x_j − b_i|, the largest equation error of
// x against a.
func Residual(a *Augmented, x Vector) (float32, error) {
	if a == nil {
		return 0, linearErrorf(opResidual, ErrNilMatrix)
	}
	if err := checkShape(a); err != nil {
		return 0, linearErrorf(opResidual, err)
	}
	if len(x) != a.n {
		return 0, linearErrorf(opResidual, fmt.Errorf("len(x)=%d, n=%d: %w", len(x), a.n, ErrDimensionMismatch))
	}

	var worst float32
	for i := 0; i < a.n; i++ {
		sum := cplx.Zero
		for j := 0; j < a.n; j++ {
			sum = cplx.Add(sum, cplx.Mul(a.at(i, j), x[j]))
		}
		if r := cplx.Sub(sum, a.at(i, a.n)).Abs(); r > worst {
			worst = r
		}
	}

	return worst, nil
}

// at reads without bounds reporting; callers stay inside the matrix.
func (a *Augmented) at(i, j int) cplx.Complex { return a.data[a.index(i, j)] }

// pivotRow returns the row r >= col with the largest |a_r,col|; ties keep
// the upper row.
func (a *Augmented) pivotRow(col int) int {
	best, bestMag := col, a.at(col, col).Abs64()
	for r := col + 1; r < a.n; r++ {
		if mag := a.at(r, col).Abs64(); mag > bestMag {
			best, bestMag = r, mag
		}
	}

	return best
}

func (a *Augmented) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	w := a.n + 1
	row1 := a.data[r1*w : r1*w+w]
	row2 := a.data[r2*w : r2*w+w]
	for k := range row1 {
		row1[k], row2[k] = row2[k], row1[k]
	}
}

// maxCoefficient returns the largest |a_ij| over the coefficient columns.
func maxCoefficient(a *Augmented) float64 {
	var best float64
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if v := a.at(i, j).Abs64(); v > best {
				best = v
			}
		}
	}

	return best
}

func validateFinite(a *Augmented) error {
	for idx, v := range a.data {
		if !v.IsFinite() {
			return fmt.Errorf("(%d,%d): %w", idx/(a.n+1), idx%(a.n+1), ErrNaNInf)
		}
	}

	return nil
}

// negligible reports an exactly zero pivot or one at or below tol.
func negligible(p cplx.Complex, tol float64) bool {
	mag := p.Abs64()

	return mag == 0 || mag <= tol
}

// checkShape rejects an Augmented whose size or storage was not set up by
// NewAugmented, such as the zero value.
func checkShape(a *Augmented) error {
	if a.n < MinUnknowns || a.n > MaxUnknowns {
		return fmt.Errorf("n=%d: %w", a.n, ErrBadSize)
	}
	if len(a.data) != a.n*(a.n+1) {
		return fmt.Errorf("storage %d for n=%d: %w", len(a.data), a.n, ErrBadSize)
	}

	return nil
}

func singularAt(col int) error {
	return linearErrorf(opSolve, fmt.Errorf("pivot column %d: %w", col, ErrSingular))
}

func overflowAt(col int) error {
	return linearErrorf(opSolve, fmt.Errorf("pivot column %d: %w", col, ErrNaNInf))
}
