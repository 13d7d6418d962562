package metric_test

import (
	"testing"

	"github.com/katalvlaran/lvcryst/metric"
)

var (
	sinkT metric.Tensor
	sinkF float64
)

func BenchmarkBuild(b *testing.B) {
	l := mustLattice(b, 7.19196, 8.12720, 8.12771, 82.4809, 69.2610, 69.2584)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := metric.Build(l)
		if err != nil {
			b.Fatal(err)
		}
		sinkT = g
	}
}

func BenchmarkReciprocal(b *testing.B) {
	g := mustTensor(b, 7.19196, 8.12720, 8.12771, 82.4809, 69.2610, 69.2584)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		star, _, err := metric.Reciprocal(g)
		if err != nil {
			b.Fatal(err)
		}
		sinkT = star
	}
}

func BenchmarkVolume(b *testing.B) {
	g := mustTensor(b, 7.19196, 8.12720, 8.12771, 82.4809, 69.2610, 69.2584)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := metric.Volume(g)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}
