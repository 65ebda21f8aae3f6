package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks input the grammar could not consume completely:
	// trailing garbage, a missing ')' or operand, or an unparseable literal.
	ErrMalformed = errors.New("expr: malformed expression")

	// ErrDivideByZero marks a division whose right operand was exactly zero.
	// The division is skipped and the left operand kept.
	ErrDivideByZero = errors.New("expr: division by zero")

	// ErrNonFinite marks a result that is NaN or ±Inf (e.g. √-1, ln 0).
	ErrNonFinite = errors.New("expr: result is not finite")
)

// SyntaxError locates a problem inside the input. It wraps ErrMalformed or
// ErrDivideByZero, so errors.Is works on it.
type SyntaxError struct {
	Offset int    // byte offset of the offending token
	Token  string // source text of the offending token ("" at end of input)
	Reason string // short human description
	Err    error  // sentinel
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s at end of input", e.Err, e.Reason)
	}

	return fmt.Sprintf("%s: %s at offset %d (%q)", e.Err, e.Reason, e.Offset, e.Token)
}

// Unwrap returns the sentinel.
func (e *SyntaxError) Unwrap() error { return e.Err }
