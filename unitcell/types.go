package unitcell

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/metric"
)

// Indices of the two halves inside a pair.
const (
	sideDirect = iota
	sideReciprocal
)

// pair is the single allocation holding a real cell and its reciprocal.
// Cells point back into it, so the reciprocal of the reciprocal is the
// original *Cell.
type pair struct {
	cells [2]Cell
}

// Cell is one half of a real/reciprocal pair. All fields are fixed at
// construction; methods never mutate and may be called concurrently.
type Cell struct {
	pair *pair
	side int

	lat    lattice.Lattice
	tensor metric.Tensor
	volume float64

	orth *r3.Mat // fractional → Cartesian
	frac *r3.Mat // Cartesian → fractional
}

// Miller is a set of integer plane indices (hkl).
type Miller struct {
	H, K, L int
}

// Vec returns the indices as a reciprocal-space vector.
func (m Miller) Vec() r3.Vec {
	return r3.Vec{X: float64(m.H), Y: float64(m.K), Z: float64(m.L)}
}

// IsZero reports whether all three indices are zero.
func (m Miller) IsZero() bool { return m.H == 0 && m.K == 0 && m.L == 0 }

// String renders the indices as "(h k l)".
func (m Miller) String() string { return fmt.Sprintf("(%d %d %d)", m.H, m.K, m.L) }
