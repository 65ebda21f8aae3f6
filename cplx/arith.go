// SPDX-License-Identifier: MIT

package cplx

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b.
func Sub(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns a · b using the cross-term formula
// (a.Re·b.Re − a.Im·b.Im, a.Re·b.Im + a.Im·b.Re).
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b.
//
// Behavior highlights:
//   - Total: when b.Re² + b.Im² is exactly zero the result is Zero.
//   - Otherwise ((a.Re·b.Re + a.Im·b.Im)/d, (a.Im·b.Re − a.Re·b.Im)/d).
//
// Notes:
//   - The zero result is a degeneracy policy, not a mathematical answer.
//     Callers that must tell the two apart use Quo.
//   - Very small (but non-zero) denominators can underflow d to zero in
//     float32; those are treated exactly like b == 0.
func Div(a, b Complex) Complex {
	d := b.AbsSq()
	if d == 0 {
		return Zero
	}

	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / d,
		Im: (a.Im*b.Re - a.Re*b.Im) / d,
	}
}

// DivWide returns a / b like Div but forms the denominator and both
// numerators in float64, so finite float32 operands never overflow or
// underflow d. Only the rounded quotient can leave the float32 range, in
// which case a part is ±Inf. A zero b still gives Zero.
func DivWide(a, b Complex) Complex {
	br, bi := float64(b.Re), float64(b.Im)
	d := br*br + bi*bi
	if d == 0 {
		return Zero
	}
	ar, ai := float64(a.Re), float64(a.Im)

	return Complex{
		Re: float32((ar*br + ai*bi) / d),
		Im: float32((ai*br - ar*bi) / d),
	}
}

// Quo is the strict form of Div: it returns ErrDivideByZero instead of
// silently producing Zero.
func Quo(a, b Complex) (Complex, error) {
	if b.AbsSq() == 0 {
		return Zero, ErrDivideByZero
	}

	return Div(a, b), nil
}

// ApproxEqual reports whether |a − b| ≤ eps.
func ApproxEqual(a, b Complex, eps float32) bool {
	return Sub(a, b).Abs() <= eps
}
