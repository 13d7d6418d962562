// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcryst/lattice"
)

var (
	// ErrNumerical is lattice.ErrNumerical: the tensor is singular,
	// ill-conditioned or not positive-definite.
	ErrNumerical = lattice.ErrNumerical

	// ErrShape indicates a raw matrix that is not 3×3.
	ErrShape = errors.New("metric: matrix must be 3x3")

	// ErrAsymmetric indicates a raw matrix with G[i][j] ≠ G[j][i].
	ErrAsymmetric = errors.New("metric: matrix is not symmetric")
)

// metricErrorf wraps a sentinel with the operation tag and a detail message.
func metricErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}
