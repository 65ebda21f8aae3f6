// Package expr evaluates the arithmetic typed into a worksheet cell and turns
// it into a single float32.
//
// Grammar, lowest precedence first:
//
//	expr   := term (('+' | '-') term)*
//	term   := pow (('*' | '/') pow)*
//	pow    := factor ('^' factor)?
//	factor := number | '(' expr ')' | '-' factor | unary factor | constant
//
// Unary functions (negate, √, sin, cos, tan, ln, log) take exactly one
// factor, so "sin 2*x" is (sin 2)*x and "-2^2" is (-2)^2. The power is not
// chained: "2^3^2" stops after "2^3".
//
// The token set and its spellings:
//
//	KindNumber   digits, '.', exponent marker 'E' or 'ᴇ' (sign allowed right after it)
//	KindNeg      '−' (U+2212), '~'
//	KindSqrt     '√', "sqrt"
//	KindSin      "sin"      KindCos "cos"      KindTan "tan"
//	KindLn       "ln"       KindLog "log" (base 10)
//	KindPi       'π', "pi"
//	KindE        'e', 'ℯ'
//
// Only plain spaces are skipped. Only the first MaxLiteralLen characters of
// a literal count; the rest of the literal is read and dropped without error.
//
// Two evaluation policies exist. The default is strict: Eval returns the
// partial value it managed to compute together with an error wrapping
// ErrMalformed, ErrDivideByZero or ErrNonFinite. WithBestEffort (and the
// Evaluate shorthand) never fails: it stops at the first token it cannot
// use, skips divisions by zero and returns whatever it has. An empty input
// is zero under both policies.
package expr
