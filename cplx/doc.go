// SPDX-License-Identifier: MIT

// Package cplx implements the single-precision complex value used by the
// solver, the formatter and the worksheet.
//
// 🚀 What is cplx?
//
//	A two-field value type (Re, Im float32) with the four arithmetic
//	primitives needed by Gaussian elimination:
//	  • Add, Sub, Mul   textbook formulas
//	  • Div             total; a zero denominator yields Zero, never a panic
//	  • Quo             strict Div returning ErrDivideByZero
//
// ✨ Why not complex64?
//
//   - Division must follow an explicit degeneracy policy (x/0 = 0) that the
//     builtin operator does not offer (it produces Inf/NaN).
//   - The explicit struct documents the memory layout used by the solver.
//
// Conversions to and from complex64 are provided for interop.
//
// ⚙️ Usage:
//
//	a := cplx.New(3, 4)
//	b := cplx.New(1, -2)
//	q := cplx.Div(a, b)   // (-1, 2)
//	z := cplx.Div(a, cplx.Zero) // (0, 0)
package cplx
