// SPDX-License-Identifier: MIT

package linear

import "math"

// Pivoting selects the pivot row strategy.
type Pivoting uint8

const (
	// PivotPartial swaps in the row with the largest |coefficient| in the
	// pivot column before eliminating.
	PivotPartial Pivoting = iota

	// PivotNone always uses row i for column i.
	PivotNone
)

// String returns "partial" or "none".
func (p Pivoting) String() string {
	if p == PivotNone {
		return "none"
	}

	return "partial"
}

// Defaults.
const (
	// DefaultEpsilon is the relative pivot threshold of the hardened solver:
	// |pivot| <= eps·max|a_ij| is singular. It sits a few ulps above float32
	// machine epsilon (~1.19e-7).
	DefaultEpsilon = 1e-6

	// DefaultPivoting is partial pivoting.
	DefaultPivoting = PivotPartial

	// DefaultLegacy is the hardened policy.
	DefaultLegacy = false
)

const (
	panicEpsilonInvalid  = "linear: WithEpsilon: eps must be finite, non-negative"
	panicPivotingInvalid = "linear: WithPivoting: unknown strategy"
)

// Option configures one Solve call.
type Option func(*Options)

// Options holds the resolved solver policy.
type Options struct {
	eps      float32
	pivoting Pivoting
	legacy   bool
}

// WithEpsilon sets the relative singularity threshold. Zero means only an
// exactly zero pivot is singular. Panics on NaN, Inf or a negative value.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = float32(eps) }
}

// WithPivoting selects the pivot strategy.
func WithPivoting(p Pivoting) Option {
	if p != PivotPartial && p != PivotNone {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithLegacy selects the always-succeeding policy: no pivoting, no
// singularity or finiteness checks, zero-denominator division yields zero.
// A later WithPivoting still applies, so legacy elimination can be combined
// with partial pivoting.
func WithLegacy() Option {
	return func(o *Options) {
		o.legacy = true
		o.pivoting = PivotNone
	}
}

// WithHardened restores the default policy (checks on, partial pivoting).
func WithHardened() Option {
	return func(o *Options) {
		o.legacy = false
		o.pivoting = PivotPartial
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		pivoting: DefaultPivoting,
		legacy:   DefaultLegacy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
