// SPDX-License-Identifier: MIT

// Package approx: functional configuration of the comparison policy.
//
// Design:
//   - Option / Options with unexported fields; public entry points accept ...Option.
//   - Documented defaults as constants (single source of truth).
//   - WithX constructors panic on nonsensical values (programmer error).
package approx

import "math"

// Defaults used when no tolerance option is supplied at all.
const (
	// DefaultDelta is the absolute tolerance of the default policy.
	DefaultDelta = 1e-15

	// DefaultULPs is the ULP tolerance of the default policy.
	DefaultULPs int64 = 10
)

const (
	panicDeltaInvalid    = "approx: WithDelta: delta must be finite, non-negative"
	panicRelDeltaInvalid = "approx: WithRelativeDelta: relative delta must be finite, non-negative"
	panicULPsInvalid     = "approx: WithULPs: ulps must be non-negative"
)

// Option mutates Options. Safe to apply repeatedly; the last setter wins.
type Option func(*Options)

// Options is the resolved comparison policy. Tests that were not configured
// are skipped (an unset tolerance behaves like +Inf would, i.e. it never
// narrows the comparison, but it never widens it either).
type Options struct {
	delta    float64
	relDelta float64
	ulps     int64

	hasDelta    bool
	hasRelDelta bool
	hasULPs     bool
}

// WithDelta enables the absolute test |a-b| <= delta.
// Panics when delta is NaN, infinite or negative.
func WithDelta(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		panic(panicDeltaInvalid)
	}

	return func(o *Options) {
		o.delta = delta
		o.hasDelta = true
	}
}

// WithRelativeDelta enables the relative test |a-b| <= rel*max(|a|,|b|).
// Panics when rel is NaN, infinite or negative.
func WithRelativeDelta(rel float64) Option {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		panic(panicRelDeltaInvalid)
	}

	return func(o *Options) {
		o.relDelta = rel
		o.hasRelDelta = true
	}
}

// WithULPs enables the test "at most ulps representable doubles apart".
// Panics when ulps is negative.
func WithULPs(ulps int64) Option {
	if ulps < 0 {
		panic(panicULPsInvalid)
	}

	return func(o *Options) {
		o.ulps = ulps
		o.hasULPs = true
	}
}

// New resolves opts into an Options value. With no option at all the default
// policy (DefaultDelta and DefaultULPs) is returned.
func New(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Default returns the default policy.
func Default() Options {
	return Options{
		delta:    DefaultDelta,
		ulps:     DefaultULPs,
		hasDelta: true,
		hasULPs:  true,
	}
}

// gatherOptions applies setters over an empty policy and falls back to the
// defaults only when nothing was configured.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasDelta && !o.hasRelDelta && !o.hasULPs {
		return Default()
	}

	return o
}

// Delta reports the absolute tolerance and whether it is enabled.
func (o Options) Delta() (float64, bool) { return o.delta, o.hasDelta }

// RelativeDelta reports the relative tolerance and whether it is enabled.
func (o Options) RelativeDelta() (float64, bool) { return o.relDelta, o.hasRelDelta }

// ULPs reports the ULP tolerance and whether it is enabled.
func (o Options) ULPs() (int64, bool) { return o.ulps, o.hasULPs }
