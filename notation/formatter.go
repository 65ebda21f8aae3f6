// SPDX-License-Identifier: MIT

package notation

import "unicode/utf8"

// DefaultAngleSeparator joins magnitude and angle in polar renderings.
const DefaultAngleSeparator = "·"

// SymbolAngleSeparator is the angle sign, for displays that can show it.
const SymbolAngleSeparator = "∠"

// ASCIIAngleSeparator is the separator used by narrow ASCII displays.
const ASCIIAngleSeparator = "<"

const panicEmptySeparator = "notation: WithAngleSeparator: separator must not be empty"

// Option configures a Formatter.
type Option func(*Options)

// Options holds Formatter settings.
type Options struct {
	angleSeparator string
}

// WithAngleSeparator sets the token between magnitude and angle.
// Panics on an empty separator.
func WithAngleSeparator(sep string) Option {
	if sep == "" {
		panic(panicEmptySeparator)
	}

	return func(o *Options) { o.angleSeparator = sep }
}

// Formatter renders values with a fixed set of Options.
// The zero value is not usable; build one with NewFormatter.
type Formatter struct {
	opts Options
}

// DefaultFormatter uses DefaultAngleSeparator.
var DefaultFormatter = NewFormatter()

// NewFormatter resolves opts into a Formatter.
func NewFormatter(opts ...Option) Formatter {
	o := Options{angleSeparator: DefaultAngleSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return Formatter{opts: o}
}

// Window returns s scrolled left by offset characters, the way a narrow
// display shows a long line. An offset at or past the end yields a single
// space so the cell is still cleared.
func Window(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	if offset >= utf8.RuneCountInString(s) {
		return " "
	}
	i := 0
	for pos := range s {
		if i == offset {
			return s[pos:]
		}
		i++
	}

	return " "
}
