package sheet

import (
	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
)

// Option configures a Sheet.
type Option func(*Options)

// Options holds the collaborators' policies.
type Options struct {
	evalOpts  []expr.Option
	solveOpts []linear.Option
	formatter notation.Formatter
}

// WithEvalOptions sets the policy for cell expressions.
func WithEvalOptions(opts ...expr.Option) Option {
	return func(o *Options) { o.evalOpts = append(o.evalOpts, opts...) }
}

// WithSolveOptions sets the solver policy.
func WithSolveOptions(opts ...linear.Option) Option {
	return func(o *Options) { o.solveOpts = append(o.solveOpts, opts...) }
}

// WithFormatter sets the renderer used for result strings.
func WithFormatter(f notation.Formatter) Option {
	return func(o *Options) { o.formatter = f }
}

func gatherOptions(opts ...Option) Options {
	o := Options{formatter: notation.DefaultFormatter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
