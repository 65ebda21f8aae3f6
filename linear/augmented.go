// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/complexsolver/cplx"
)

// Size bounds for the number of unknowns.
const (
	MinUnknowns = 2
	MaxUnknowns = 5
)

// Augmented is an n×(n+1) complex matrix: n coefficient columns followed by
// the constant column. Storage is row-major and sized once; a different n
// needs a new Augmented.
type Augmented struct {
	n    int
	data []cplx.Complex // n*(n+1) entries
}

// Vector is a solution: one value per unknown.
type Vector []cplx.Complex

// NewAugmented allocates a zero n×(n+1) matrix.
// Returns ErrBadSize unless MinUnknowns <= n <= MaxUnknowns.
func NewAugmented(n int) (*Augmented, error) {
	if n < MinUnknowns || n > MaxUnknowns {
		return nil, linearErrorf(opNew, fmt.Errorf("n=%d: %w", n, ErrBadSize))
	}

	return &Augmented{n: n, data: make([]cplx.Complex, n*(n+1))}, nil
}

// FromRows copies rows into a new Augmented. There must be n rows of n+1
// entries each, with n in range.
func FromRows(rows [][]cplx.Complex) (*Augmented, error) {
	a, err := NewAugmented(len(rows))
	if err != nil {
		return nil, linearErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if err = a.SetRow(i, row); err != nil {
			return nil, linearErrorf(opFromRows, err)
		}
	}

	return a, nil
}

// Unknowns returns n.
func (a *Augmented) Unknowns() int { return a.n }

// Rows returns n.
func (a *Augmented) Rows() int { return a.n }

// Cols returns n+1.
func (a *Augmented) Cols() int { return a.n + 1 }

func (a *Augmented) index(i, j int) int { return i*(a.n+1) + j }

func (a *Augmented) inRange(i, j int) bool {
	return i >= 0 && i < a.n && j >= 0 && j <= a.n
}

// At returns entry (i, j); j == n addresses the constant term.
func (a *Augmented) At(i, j int) (cplx.Complex, error) {
	if a == nil {
		return cplx.Zero, linearErrorf(opAt, ErrNilMatrix)
	}
	if !a.inRange(i, j) {
		return cplx.Zero, linearErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return a.data[a.index(i, j)], nil
}

// Set stores v at (i, j).
func (a *Augmented) Set(i, j int, v cplx.Complex) error {
	if a == nil {
		return linearErrorf(opSet, ErrNilMatrix)
	}
	if !a.inRange(i, j) {
		return linearErrorf(opSet, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	a.data[a.index(i, j)] = v

	return nil
}

// SetRow replaces row i with row, which must hold n+1 entries.
func (a *Augmented) SetRow(i int, row []cplx.Complex) error {
	if a == nil {
		return linearErrorf(opSetRow, ErrNilMatrix)
	}
	if i < 0 || i >= a.n {
		return linearErrorf(opSetRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	if len(row) != a.n+1 {
		return linearErrorf(opSetRow, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), a.n+1, ErrDimensionMismatch))
	}
	copy(a.data[a.index(i, 0):a.index(i, a.n)+1], row)

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (a *Augmented) Row(i int) []cplx.Complex {
	if a == nil || i < 0 || i >= a.n {
		return nil
	}
	out := make([]cplx.Complex, a.n+1)
	copy(out, a.data[a.index(i, 0):])

	return out
}

// Clone returns an independent copy.
func (a *Augmented) Clone() *Augmented {
	if a == nil {
		return nil
	}
	out := &Augmented{n: a.n, data: make([]cplx.Complex, len(a.data))}
	copy(out.data, a.data)

	return out
}

// ClampUnknowns turns a typed size into a valid n: the value is truncated
// toward zero and clamped to [MinUnknowns, MaxUnknowns]. NaN clamps to
// MinUnknowns.
func ClampUnknowns(v float32) int {
	switch {
	case math.IsNaN(float64(v)) || v < MinUnknowns:
		return MinUnknowns
	case v > MaxUnknowns:
		return MaxUnknowns
	}

	return int(v)
}
