package metric_test

import (
	"fmt"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/metric"
)

// ExampleBuild prints the metric tensor and volume of a hexagonal cell.
func ExampleBuild() {
	l, _ := lattice.Classify(lattice.Params{
		Lengths: [3]lattice.Param{lattice.Given(5), lattice.Unset, lattice.Given(2)},
		Angles:  [3]lattice.Param{lattice.Unset, lattice.Unset, lattice.Given(120)},
	})
	g, err := metric.Build(l)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := metric.Volume(g)
	fmt.Printf("G[0][1]=%.2f G[2][2]=%.0f V=%.4f\n", g.At(0, 1), g.At(2, 2), v)
	// Output: G[0][1]=-12.50 G[2][2]=4 V=43.3013
}

// ExampleReciprocal shows the reciprocal of a monoclinic cell.
func ExampleReciprocal() {
	l, _ := lattice.Classify(lattice.FullParams(2, 3, 5, 90, 30, 90))
	g, _ := metric.Build(l)

	_, recip, err := metric.Reciprocal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s axis=%s a*=%.4f beta*=%.1f\n", recip.System(), recip.Axis(), recip.A(), recip.Beta())
	// Output: monoclinic axis=none a*=1.0000 beta*=150.0
}
