// SPDX-License-Identifier: MIT
// Package: lattice
//
// Purpose:
//   - Single source of truth for domain checks on raw parameters.
//   - Validators return sentinels wrapped with a tag; Classify and Force
//     call them before any inference happens.
//
// Determinism & Performance:
//   - Pure functions, no allocation beyond error values.

package lattice

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// rightAngle and hexAngle are the two special angles the decision tree tests for.
const (
	rightAngle = 90.0
	hexAngle   = 120.0
)

var lengthNames = [3]string{"a", "b", "c"}
var angleNames = [3]string{"alpha", "beta", "gamma"}

// validateParams checks every supplied value is inside its physical domain
// and that a is present.
func validateParams(tag string, p Params) error {
	if !p.Lengths[0].set {
		return latticeErrorf(tag, ErrMissingParameter, "edge length a is required")
	}
	for i, l := range p.Lengths {
		if l.set && !validLength(l.value) {
			return latticeErrorf(tag, ErrInvalidParameter, "%s=%v must be finite and > 0", lengthNames[i], l.value)
		}
	}
	for i, ang := range p.Angles {
		if ang.set && !validAngle(ang.value) {
			return latticeErrorf(tag, ErrInvalidParameter, "%s=%v must be strictly between 0 and 180", angleNames[i], ang.value)
		}
	}
	if p.Volume.set && !validLength(p.Volume.value) {
		return latticeErrorf(tag, ErrInvalidParameter, "volume=%v must be finite and > 0", p.Volume.value)
	}

	return nil
}

func validLength(v float64) bool { return isFinite(v) && v > 0 }

func validAngle(v float64) bool { return isFinite(v) && v > 0 && v < 180 }

// cellFactor returns 1 − cos²α − cos²β − cos²γ + 2·cosα·cosβ·cosγ, so that
// det(G) = (abc)²·cellFactor. The metric tensor is positive-definite
// exactly when the lengths are positive and cellFactor > 0.
func cellFactor(angles [3]float64) float64 {
	ca := math.Cos(angles[0] * math.Pi / 180)
	cb := math.Cos(angles[1] * math.Pi / 180)
	cg := math.Cos(angles[2] * math.Pi / 180)

	return 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
}

// validateRealizable rejects angle triples with no positive-definite metric
// and cross-checks a supplied volume against abc·sqrt(cellFactor).
func validateRealizable(tag string, l Lattice, o Options) error {
	f := cellFactor(l.angles)
	if !(f > 0) {
		return latticeErrorf(tag, ErrNumerical,
			"angles (%g, %g, %g) give a non-positive-definite metric tensor", l.angles[0], l.angles[1], l.angles[2])
	}
	if !l.hasVolume {
		return nil
	}
	want := l.lengths[0] * l.lengths[1] * l.lengths[2] * math.Sqrt(f)
	if !scalar.EqualWithinRel(l.volume, want, o.volumeTol) {
		return latticeErrorf(tag, ErrInvalidParameter, "volume %g disagrees with lattice volume %g", l.volume, want)
	}

	return nil
}

// sameAngle compares two angles with the configured tolerance.
func (o Options) sameAngle(x, y float64) bool { return scalar.EqualWithinAbs(x, y, o.angleTol) }

// sameLength compares two lengths with the configured tolerance.
func (o Options) sameLength(x, y float64) bool { return scalar.EqualWithinAbs(x, y, o.lengthTol) }

// agrees reports whether p is unset or equal to want.
func (o Options) agrees(p Param, want float64) bool { return !p.set || o.sameLength(p.value, want) }
