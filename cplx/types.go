// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"
	"math"
)

// Complex is an immutable single-precision complex number.
// All operations take and return values; nothing is mutated in place.
type Complex struct {
	Re float32 // real part
	Im float32 // imaginary part
}

// Zero is the additive identity and the result of Div by a zero denominator.
var Zero = Complex{}

// New builds a Complex from its parts.
func New(re, im float32) Complex {
	return Complex{Re: re, Im: im}
}

// FromPolar builds a Complex from magnitude r and angle theta (radians).
func FromPolar(r, theta float32) Complex {
	s, c := math.Sincos(float64(theta))

	return Complex{Re: r * float32(c), Im: r * float32(s)}
}

// FromComplex64 converts a builtin complex64.
func FromComplex64(c complex64) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex64 converts z to the builtin complex64.
func (z Complex) Complex64() complex64 {
	return complex(z.Re, z.Im)
}

// AbsSq returns Re² + Im², the denominator used by Div.
func (z Complex) AbsSq() float32 {
	return z.Re*z.Re + z.Im*z.Im
}

// Abs returns the magnitude sqrt(Re² + Im²), rounded to float32.
func (z Complex) Abs() float32 {
	return float32(z.Abs64())
}

// Abs64 returns the magnitude in float64. Unlike AbsSq it neither overflows
// nor underflows for finite parts.
func (z Complex) Abs64() float64 {
	return math.Hypot(float64(z.Re), float64(z.Im))
}

// Arg returns the angle atan2(Im, Re) in radians, in (-π, π].
func (z Complex) Arg() float32 {
	return float32(math.Atan2(float64(z.Im), float64(z.Re)))
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// IsZero reports whether both parts are exactly zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// IsFinite reports whether neither part is NaN or ±Inf.
func (z Complex) IsFinite() bool {
	return isFinite(z.Re) && isFinite(z.Im)
}

// String renders z as "(re+imi)" using the shortest float32 representation.
// It is meant for debugging; display strings come from package notation.
func (z Complex) String() string {
	return fmt.Sprintf("(%v%+vi)", z.Re, z.Im)
}

func isFinite(x float32) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
