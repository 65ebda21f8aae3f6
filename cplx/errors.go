// SPDX-License-Identifier: MIT

package cplx

import "errors"

// ErrDivideByZero is returned by Quo when the denominator is exactly zero.
// Div never returns it; Div resolves the same case to Zero.
var ErrDivideByZero = errors.New("cplx: division by zero")
