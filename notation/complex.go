// SPDX-License-Identifier: MIT

package notation

import (
	"math"
	"strconv"

	"github.com/katalvlaran/complexsolver/cplx"
)

const (
	polarDecimals  = 5
	phasorDecimals = 4

	radianSuffix = "r"
	degreeSuffix = "d"
)

// Rectangular renders z as "a+bi" / "a-bi" with engineering mantissas.
// A part within ZeroThreshold of zero is omitted; both zero renders "0".
// The sign of the imaginary part is written once, as the joining token.
func Rectangular(z cplx.Complex) string {
	zr, zi := isZero(z.Re), isZero(z.Im)
	switch {
	case zr && zi:
		return "0"
	case zr:
		return Engineering(z.Im) + "i"
	case zi:
		return Engineering(z.Re)
	}

	sign := "+"
	if z.Im < 0 {
		sign = "-"
	}

	return Engineering(z.Re) + sign + Engineering(float32(math.Abs(float64(z.Im)))) + "i"
}

// PolarRadians renders z as magnitude·angle with the angle in radians,
// five decimals and the "r" suffix.
func PolarRadians(z cplx.Complex) string {
	return DefaultFormatter.PolarRadians(z)
}

// PhasorDegrees renders z as magnitude·angle with the angle in degrees,
// four decimals and the "d" suffix.
func PhasorDegrees(z cplx.Complex) string {
	return DefaultFormatter.PhasorDegrees(z)
}

// PolarRadians is the Formatter form of the package function.
func (f Formatter) PolarRadians(z cplx.Complex) string {
	return f.polar(z.Abs(), float64(z.Arg()), polarDecimals, radianSuffix)
}

// PhasorDegrees is the Formatter form of the package function.
func (f Formatter) PhasorDegrees(z cplx.Complex) string {
	deg := float64(z.Arg()) * 180 / math.Pi

	return f.polar(z.Abs(), deg, phasorDecimals, degreeSuffix)
}

func (f Formatter) polar(r float32, angle float64, decimals int, suffix string) string {
	return Engineering(r) + f.opts.angleSeparator + strconv.FormatFloat(angle, 'f', decimals, 64) + suffix
}
