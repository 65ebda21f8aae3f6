package expr

import (
	"math"
	"strings"
)

// Constants produced by KindPi and KindE.
const (
	Pi = float32(math.Pi)
	E  = float32(math.E)
)

// Eval evaluates input and returns its value.
//
// Under the default strict policy a non-nil error (wrapping ErrMalformed,
// ErrDivideByZero or ErrNonFinite) comes with the partial value computed so
// far; only the first problem is reported. Under WithBestEffort the error is
// always nil.
func Eval(input string, opts ...Option) (float32, error) {
	o := gatherOptions(opts...)
	if strings.Trim(input, " ") == "" {
		return 0, nil
	}

	p := newParser(input)
	v := p.expr()
	if p.tok.Kind != KindEOF {
		p.fail(p.tok, "unexpected token", ErrMalformed)
	}
	if p.err == nil && !isFinite(v) {
		p.err = ErrNonFinite
	}
	if o.bestEffort {
		return v, nil
	}

	return v, p.err
}

// Evaluate is Eval under the best-effort policy: it always succeeds.
func Evaluate(input string) float32 {
	v, _ := Eval(input, WithBestEffort())

	return v
}

// parser is a recursive-descent evaluator with one token of lookahead.
// It is scoped to a single Eval call.
type parser struct {
	lex *lexer
	tok Token
	err error // first problem seen
}

func newParser(input string) *parser {
	p := &parser{lex: &lexer{src: input}}
	p.advance()

	return p
}

func (p *parser) advance() { p.tok = p.lex.next() }

func (p *parser) fail(tok Token, reason string, sentinel error) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{Offset: tok.Offset, Token: tok.Text, Reason: reason, Err: sentinel}
}

func (p *parser) expr() float32 {
	v := p.term()
	for p.tok.Kind == KindPlus || p.tok.Kind == KindMinus {
		op := p.tok.Kind
		p.advance()
		rhs := p.term()
		if op == KindPlus {
			v += rhs
		} else {
			v -= rhs
		}
	}

	return v
}

func (p *parser) term() float32 {
	v := p.pow()
	for p.tok.Kind == KindStar || p.tok.Kind == KindSlash {
		op := p.tok
		p.advance()
		rhs := p.pow()
		switch {
		case op.Kind == KindStar:
			v *= rhs
		case rhs != 0:
			v /= rhs
		default:
			// left operand survives untouched
			p.fail(op, "division by zero", ErrDivideByZero)
		}
	}

	return v
}

func (p *parser) pow() float32 {
	v := p.factor()
	if p.tok.Kind == KindCaret {
		p.advance()
		v = apply(math.Pow, v, p.factor())
	}

	return v
}

func (p *parser) factor() float32 {
	tok := p.tok
	switch tok.Kind {
	case KindLParen:
		p.advance()
		v := p.expr()
		if p.tok.Kind == KindRParen {
			p.advance()
		} else {
			p.fail(p.tok, "missing ')'", ErrMalformed)
		}

		return v
	case KindMinus, KindNeg:
		p.advance()

		return -p.factor()
	case KindPi:
		p.advance()

		return Pi
	case KindE:
		p.advance()

		return E
	case KindSqrt, KindSin, KindCos, KindTan, KindLn, KindLog:
		p.advance()

		return unary(tok.Kind, p.factor())
	case KindNumber:
		p.advance()
		if tok.Partial {
			p.fail(tok, "bad number", ErrMalformed)
		}

		return tok.Value
	}

	// Nothing usable: leave the token for the caller and yield zero.
	p.fail(tok, "missing operand", ErrMalformed)

	return 0
}

func unary(k Kind, x float32) float32 {
	switch k {
	case KindSqrt:
		return apply1(math.Sqrt, x)
	case KindSin:
		return apply1(math.Sin, x)
	case KindCos:
		return apply1(math.Cos, x)
	case KindTan:
		return apply1(math.Tan, x)
	case KindLn:
		return apply1(math.Log, x)
	case KindLog:
		return apply1(math.Log10, x)
	}

	return x
}

func apply1(f func(float64) float64, x float32) float32 {
	return float32(f(float64(x)))
}

func apply(f func(float64, float64) float64, x, y float32) float32 {
	return float32(f(float64(x), float64(y)))
}

func isFinite(x float32) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
