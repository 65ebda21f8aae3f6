package expr

// DefaultBestEffort is the zero-value policy: strict error reporting.
const DefaultBestEffort = false

// Option configures one evaluation.
type Option func(*Options)

// Options holds the resolved evaluation policy.
type Options struct {
	bestEffort bool
}

// WithBestEffort selects the always-succeeding policy: Eval never returns an
// error, malformed input yields the partial value.
func WithBestEffort() Option {
	return func(o *Options) { o.bestEffort = true }
}

// WithStrict selects strict error reporting (the default).
func WithStrict() Option {
	return func(o *Options) { o.bestEffort = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{bestEffort: DefaultBestEffort}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
