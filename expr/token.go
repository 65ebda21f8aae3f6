package expr

// Kind enumerates the tokens understood by the evaluator.
type Kind uint8

const (
	KindEOF     Kind = iota // end of input
	KindInvalid             // anything not in the token set
	KindNumber              // numeric literal
	KindPlus                // +
	KindMinus               // -
	KindStar                // *
	KindSlash               // /
	KindCaret               // ^
	KindLParen              // (
	KindRParen              // )
	KindNeg                 // negate marker
	KindSqrt                // square root
	KindSin                 // sine (radians)
	KindCos                 // cosine (radians)
	KindTan                 // tangent (radians)
	KindLn                  // natural logarithm
	KindLog                 // base-10 logarithm
	KindPi                  // π
	KindE                   // Euler's number
)

var kindNames = [...]string{
	KindEOF:     "EOF",
	KindInvalid: "invalid",
	KindNumber:  "number",
	KindPlus:    "+",
	KindMinus:   "-",
	KindStar:    "*",
	KindSlash:   "/",
	KindCaret:   "^",
	KindLParen:  "(",
	KindRParen:  ")",
	KindNeg:     "neg",
	KindSqrt:    "sqrt",
	KindSin:     "sin",
	KindCos:     "cos",
	KindTan:     "tan",
	KindLn:      "ln",
	KindLog:     "log",
	KindPi:      "pi",
	KindE:       "e",
}

// String returns a short name for k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// IsUnary reports whether k is a prefix function consuming one factor.
func (k Kind) IsUnary() bool {
	return k >= KindNeg && k <= KindLog
}

// IsConstant reports whether k is a zero-argument constant.
func (k Kind) IsConstant() bool {
	return k == KindPi || k == KindE
}

// Token is one lexeme of the input.
type Token struct {
	Kind   Kind
	Text   string  // source text
	Offset int     // byte offset into the input
	Value  float32 // literal value, KindNumber only
	// Partial is set on a KindNumber whose text was not entirely a valid
	// float; Value then comes from the longest valid prefix (or is 0).
	Partial bool
}

// word is one spelling of a symbolic token.
type word struct {
	text string
	kind Kind
}

// words lists symbolic spellings. Matching takes the first entry that is a
// prefix of the remaining input, so longer spellings come first.
var words = []word{
	{"sqrt", KindSqrt},
	{"sin", KindSin},
	{"cos", KindCos},
	{"tan", KindTan},
	{"log", KindLog},
	{"ln", KindLn},
	{"pi", KindPi},
	{"e", KindE},
	{"√", KindSqrt},
	{"π", KindPi},
	{"ℯ", KindE},
	{"−", KindNeg},
	{"~", KindNeg},
	{"+", KindPlus},
	{"-", KindMinus},
	{"*", KindStar},
	{"/", KindSlash},
	{"^", KindCaret},
	{"(", KindLParen},
	{")", KindRParen},
}

// Spelling returns the canonical input spelling for k, or "" for kinds
// without one (EOF, invalid, number).
func Spelling(k Kind) string {
	switch k {
	case KindSqrt:
		return "√"
	case KindPi:
		return "π"
	case KindNeg:
		return "−"
	}
	for _, w := range words {
		if w.kind == k {
			return w.text
		}
	}

	return ""
}
