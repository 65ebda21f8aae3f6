// SPDX-License-Identifier: MIT

package notation

import (
	"math"
	"strconv"
)

const (
	// ZeroThreshold is the magnitude below which a value renders as "0".
	ZeroThreshold = 1e-20

	// IntegralTolerance decides when a mantissa is printed without decimals.
	IntegralTolerance = 1e-4

	// mantissaDecimals is the precision of a non-integral mantissa.
	mantissaDecimals = 3
)

// Engineering renders x in compact engineering notation.
//
// Implementation:
//   - Stage 1: |x| < ZeroThreshold renders as "0".
//   - Stage 2: exp = floor(floor(log10|x|)/3)·3, mantissa = x / 10^exp.
//   - Stage 3: mantissa with 0 or 3 decimals, then "E<exp>" when exp != 0.
//
// Examples: 1000 → "1E3", 1500 → "1.500E3", 0.5 → "500E-3", -4 → "-4".
func Engineering(x float32) string {
	v := float64(x)
	if math.Abs(v) < ZeroThreshold {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 32)
	}

	exp := int(math.Floor(float64(decimalExponent(math.Abs(v)))/3) * 3)
	mantissa := v * math.Pow10(-exp)

	decimals := mantissaDecimals
	if math.Abs(mantissa-math.Round(mantissa)) < IntegralTolerance {
		decimals = 0
	}

	out := strconv.FormatFloat(mantissa, 'f', decimals, 64)
	if exp != 0 {
		out += "E" + strconv.Itoa(exp)
	}

	return out
}

// decimalExponent returns floor(log10(a)) for a > 0. math.Log10 can land a
// hair below an exact power of ten (1000 → 2.9999999999999996), so the
// estimate is corrected against math.Pow10.
func decimalExponent(a float64) int {
	e := int(math.Floor(math.Log10(a)))
	if math.Pow10(e+1) <= a {
		e++
	} else if math.Pow10(e) > a {
		e--
	}

	return e
}

// isZero applies ZeroThreshold to one part.
func isZero(x float32) bool {
	return math.Abs(float64(x)) < ZeroThreshold
}
