package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/metric"
)

// mustLattice classifies a fully specified parameter set or fails the test.
func mustLattice(tb testing.TB, a, b, c, alpha, beta, gamma float64) lattice.Lattice {
	tb.Helper()
	l, err := lattice.Classify(lattice.FullParams(a, b, c, alpha, beta, gamma))
	require.NoError(tb, err)

	return l
}

// mustTensor builds the metric tensor of a fully specified parameter set.
func mustTensor(tb testing.TB, a, b, c, alpha, beta, gamma float64) metric.Tensor {
	tb.Helper()
	g, err := metric.Build(mustLattice(tb, a, b, c, alpha, beta, gamma))
	require.NoError(tb, err)

	return g
}

type cellFixture struct {
	name   string
	params [6]float64
	volume float64
}

// fixtures are reference cells with volumes computed independently.
var fixtures = []cellFixture{
	{"cubic", [6]float64{5.43018, 5.43018, 5.43018, 90, 90, 90}, 160.118929},
	{"triclinic", [6]float64{7.19196, 8.12720, 8.12771, 82.4809, 69.2610, 69.2584}, 415.482278},
	{"orthorhombic", [6]float64{23.49290, 6.34350, 19.63820, 90, 90, 90}, 2926.626178},
	{"hexagonal", [6]float64{5, 5, 2, 90, 90, 120}, 43.30127},
	{"monoclinic", [6]float64{2, 3, 5, 90, 30, 90}, 15.0},
	{"monoclinic unique c", [6]float64{2, 3, 5, 90, 90, 60}, 25.980762},
	{"hexagonal odd alpha", [6]float64{5, 5, 2, 120, 90, 90}, 43.30127},
	{"rhombohedral", [6]float64{10, 10, 10, 45, 45, 45}, 455.08986},
	{"anorthoclase", [6]float64{8.28, 12.97, 7.15, 91.05, 116.26, 90.15}, 0},
}

func (f cellFixture) tensor(tb testing.TB) metric.Tensor {
	p := f.params
	return mustTensor(tb, p[0], p[1], p[2], p[3], p[4], p[5])
}
