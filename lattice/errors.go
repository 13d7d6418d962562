// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
// Every exported operation returns one of these sentinels (possibly wrapped
// with an operation tag via fmt.Errorf("%s: %w")). Callers match with
// errors.Is. Panics are reserved for invalid Option values (programmer error).

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter is returned when a classification branch needs an
	// edge length that was not supplied and cannot be inferred from symmetry.
	ErrMissingParameter = errors.New("lattice: missing parameter")

	// ErrInvalidParameter is returned for out-of-domain values (non-positive
	// lengths, angles outside (0,180), NaN/Inf) and for mutually
	// contradictory redundant values, e.g. an explicit b that disagrees with
	// the cubic a, or a supplied volume that disagrees with the lattice.
	ErrInvalidParameter = errors.New("lattice: invalid parameter")

	// ErrNumerical is returned when the parameters describe a metric tensor
	// that is singular or not positive-definite (no physical cell exists).
	ErrNumerical = errors.New("lattice: numerical error")
)

// latticeErrorf wraps err with an operation tag and a formatted detail.
func latticeErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}
