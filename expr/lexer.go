package expr

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxLiteralLen bounds the characters collected for one numeric literal.
// The rest of a longer run is consumed and ignored.
const MaxLiteralLen = 30

// lexer walks the input once; its offset is the parse cursor.
type lexer struct {
	src string
	pos int
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.src) && l.src[l.pos] == ' ' {
		l.pos++
	}
}

func (l *lexer) next() Token {
	l.skipSpaces()
	if l.pos >= len(l.src) {
		return Token{Kind: KindEOF, Offset: l.pos}
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if isDigit(r) || r == '.' || isExpMarker(r) {
		return l.number()
	}

	rest := l.src[l.pos:]
	for _, w := range words {
		if strings.HasPrefix(rest, w.text) {
			tok := Token{Kind: w.kind, Text: w.text, Offset: l.pos}
			l.pos += len(w.text)

			return tok
		}
	}

	tok := Token{Kind: KindInvalid, Text: rest[:size], Offset: l.pos}
	l.pos += size

	return tok
}

// number collects a literal: digits, '.', the exponent marker and a sign
// immediately after the marker. Only the first MaxLiteralLen characters
// reach the value.
func (l *lexer) number() Token {
	start := l.pos
	var buf strings.Builder
	count := 0
	afterMarker := false

scan:
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		var c rune
		switch {
		case isDigit(r) || r == '.':
			c = r
			afterMarker = false
		case isExpMarker(r):
			c = 'e'
			afterMarker = true
		case afterMarker && (r == '-' || r == '−'):
			c = '-'
			afterMarker = false
		case afterMarker && r == '+':
			c = '+'
			afterMarker = false
		default:
			break scan
		}
		if count < MaxLiteralLen {
			buf.WriteRune(c)
		}
		l.pos += size
		count++
	}

	v, exact := parseLiteral(buf.String())

	return Token{
		Kind:    KindNumber,
		Text:    l.src[start:l.pos],
		Offset:  start,
		Value:   v,
		Partial: !exact && count <= MaxLiteralLen,
	}
}

// parseLiteral converts s with single precision. When s as a whole is not a
// valid float the longest valid prefix is used; exact reports whether the
// whole of s was consumed. Out-of-range values keep the ±Inf or 0 that
// ParseFloat reports.
func parseLiteral(s string) (float32, bool) {
	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 32)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return float32(f), end == len(s)
		}
	}

	return 0, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isExpMarker(r rune) bool { return r == 'E' || r == 'ᴇ' }

// Tokenize splits input into tokens. The result ends with the first
// KindInvalid token or with KindEOF.
func Tokenize(input string) []Token {
	l := &lexer{src: input}
	var out []Token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.Kind == KindEOF || tok.Kind == KindInvalid {
			return out
		}
	}
}
