// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// Every exported routine returns one of these (possibly wrapped with an
// operation tag via linearErrorf); callers match them with errors.Is.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when the number of unknowns is outside
	// [MinUnknowns, MaxUnknowns].
	ErrBadSize = errors.New("linear: number of unknowns out of range")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("linear: index out of range")

	// ErrDimensionMismatch indicates rows of the wrong length or a solution
	// vector whose length differs from the number of unknowns.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNilMatrix indicates a nil *Augmented.
	ErrNilMatrix = errors.New("linear: nil matrix")

	// ErrSingular is returned by the hardened solver when a pivot is zero or
	// negligible relative to the largest coefficient.
	ErrSingular = errors.New("linear: singular system")

	// ErrNaNInf signals a NaN or ±Inf coefficient under the hardened policy.
	ErrNaNInf = errors.New("linear: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opNew      = "NewAugmented"
	opFromRows = "FromRows"
	opAt       = "At"
	opSet      = "Set"
	opSetRow   = "SetRow"
	opSolve    = "Solve"
	opResidual = "Residual"
)

// linearErrorf wraps err with an operation tag, keeping errors.Is working.
// Call only with a non-nil err.
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
