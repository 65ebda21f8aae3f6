// SPDX-License-Identifier: MIT

// Package notation renders real and complex values as short display strings.
//
// Four display modes are supported:
//
//	ModeEngineering    1.500E3          (real part only)
//	ModeRectangular    3-4i
//	ModePolarRadians   5·-0.92730r
//	ModePhasorDegrees  5·-53.1301d
//
// Magnitudes use engineering notation: the exponent is a multiple of three
// and is omitted when zero; the mantissa gets no decimals when it is within
// 1e-4 of an integer and exactly three otherwise. The strings trade precision
// for width and are meant for display only.
package notation
