// SPDX-License-Identifier: MIT

// Package matrix: numeric policy of new tables and tolerance of structural
// checks, as functional options.
//
// Notes:
//   - validateNaNInf controls whether Set()/SetRow()/SetCol() reject NaN/±Inf.
//     Greedy matching compares scores with < and >, so a NaN in a score table
//     would make the sweep order-dependent; keep the policy on for score tables.
//   - eps is the tolerance of ValidateSymmetric.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the tolerance of structural checks.
// Panics when eps is negative or not finite.
// Mass matrices assembled in single precision need a looser eps (e.g. 1e-6).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//   - Never disable it on tables that feed greedy matching.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves a list of setters into an Options value.
// Exposed so wrapper packages can read the effective policy.
// Complexity: Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters over the defaults; the last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
