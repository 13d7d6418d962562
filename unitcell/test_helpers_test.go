package unitcell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/unitcell"
)

const deg = math.Pi / 180

// mustCell builds a cell from six parameters or fails the test.
func mustCell(tb testing.TB, a, b, c, alpha, beta, gamma float64) *unitcell.Cell {
	tb.Helper()
	cell, err := unitcell.FromParams(lattice.FullParams(a, b, c, alpha, beta, gamma))
	require.NoError(tb, err)

	return cell
}

func triclinic(tb testing.TB) *unitcell.Cell {
	return mustCell(tb, 7.19196, 8.12720, 8.12771, 82.4809, 69.2610, 69.2584)
}

func cubic(tb testing.TB) *unitcell.Cell {
	return mustCell(tb, 5.43018, 5.43018, 5.43018, 90, 90, 90)
}

func anorthoclase(tb testing.TB) *unitcell.Cell {
	return mustCell(tb, 8.28, 12.97, 7.15, 91.05, 116.26, 90.15)
}

// Four sites in the triclinic cell.
var (
	site1 = r3.Vec{X: 0.61530, Y: 0.02520, Z: 0.07450}
	site2 = r3.Vec{X: 0.00810, Y: 0.17050, Z: 0.17120}
	site3 = r3.Vec{X: 0.25710, Y: 0.95880, Z: 0.60530}
	site4 = r3.Vec{X: 0.38470, Y: 0.97480, Z: 0.92550}
)

func assertVec(tb testing.TB, want, got r3.Vec, delta float64, msg string) {
	tb.Helper()
	require.InDeltaSlice(tb, []float64{want.X, want.Y, want.Z}, []float64{got.X, got.Y, got.Z}, delta, msg)
}
