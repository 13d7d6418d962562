// SPDX-License-Identifier: MIT

// Package lattice: functional configuration for classification.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that applies defaults then setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every tolerance used for a symmetry decision is explicit and documented.
package lattice

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAngleTolerance is the absolute tolerance, in degrees, under
	// which two angles (or an angle and 90°/120°) are considered equal.
	DefaultAngleTolerance = 1e-6

	// DefaultLengthTolerance is the absolute tolerance, in Å, under which
	// two edge lengths are considered equal.
	DefaultLengthTolerance = 1e-8

	// DefaultVolumeTolerance is the relative tolerance used to cross-check a
	// supplied volume against sqrt(det G).
	DefaultVolumeTolerance = 1e-6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAngleTolInvalid  = "lattice: WithAngleTolerance: tol must be finite, non-negative"
	panicLengthTolInvalid = "lattice: WithLengthTolerance: tol must be finite, non-negative"
	panicVolumeTolInvalid = "lattice: WithVolumeTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	angleTol   float64 // degrees; DefaultAngleTolerance
	lengthTol  float64 // Å; DefaultLengthTolerance
	volumeTol  float64 // relative; DefaultVolumeTolerance
	reciprocal bool    // principal axis forced to AxisNone
}

// AsReciprocal marks the lattice being classified as a reciprocal lattice.
// The decision tree is unchanged but the principal axis is always AxisNone.
func AsReciprocal() Option {
	return func(o *Options) { o.reciprocal = true }
}

// WithAngleTolerance sets the absolute angle-equality tolerance (degrees).
// Panics if tol is negative, NaN or Inf.
func WithAngleTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicAngleTolInvalid)
	}

	return func(o *Options) { o.angleTol = tol }
}

// WithLengthTolerance sets the absolute length-equality tolerance (Å).
// Panics if tol is negative, NaN or Inf.
func WithLengthTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicLengthTolInvalid)
	}

	return func(o *Options) { o.lengthTol = tol }
}

// WithVolumeTolerance sets the relative tolerance for the supplied-volume
// cross-check. Panics if tol is negative, NaN or Inf.
func WithVolumeTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicVolumeTolInvalid)
	}

	return func(o *Options) { o.volumeTol = tol }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		angleTol:  DefaultAngleTolerance,
		lengthTol: DefaultLengthTolerance,
		volumeTol: DefaultVolumeTolerance,
	}
}

// gatherOptions applies opts over the defaults in order (last write wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
