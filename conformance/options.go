// SPDX-License-Identifier: MIT

// Package conformance: functional configuration for the check battery.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package conformance

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance for results that pass through sqrt.
	DefaultEpsilon = 1e-6

	// MinDim and MaxDim bound the supported dimensions.
	MinDim = 1
	MaxDim = 9

	// DefaultFailFast stops the run at the first failing check.
	DefaultFailFast = true
)

const (
	panicEpsilonInvalid = "conformance: WithEpsilon: eps must be finite, non-negative"
	panicDimsInvalid    = "conformance: WithDims: need 1 <= lo <= hi <= 9"
)

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	lo, hi   int     // MinDim <= lo <= hi <= MaxDim
	failFast bool    // DefaultFailFast
}

// WithEpsilon sets the absolute tolerance used by the length and
// normalization checks. Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDims restricts the battery to dimensions lo..hi inclusive.
// Panics unless 1 ≤ lo ≤ hi ≤ 9.
func WithDims(lo, hi int) Option {
	if lo < MinDim || hi > MaxDim || lo > hi {
		panic(panicDimsInvalid)
	}

	return func(o *Options) { o.lo, o.hi = lo, hi }
}

// WithFailFast controls whether Run stops at the first failure.
func WithFailFast(on bool) Option {
	return func(o *Options) { o.failFast = on }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		lo:       MinDim,
		hi:       MaxDim,
		failFast: DefaultFailFast,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
