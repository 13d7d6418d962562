// SPDX-License-Identifier: MIT

package unitcell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/metric"
)

// zeroSnap is the magnitude below which transform entries are stored as 0.
const zeroSnap = 1e-10

// New builds the real/reciprocal pair for l and returns the real half.
// opts tune the classification of the reciprocal lattice.
func New(l lattice.Lattice, opts ...lattice.Option) (*Cell, error) {
	const tag = "New"
	g, err := metric.Build(l)
	if err != nil {
		return nil, cellErrorf(tag, err, "metric tensor of %s", l)
	}

	return build(tag, l, g, opts)
}

// FromParams classifies p and builds the pair. The same opts are used for
// the real and the reciprocal classification.
func FromParams(p lattice.Params, opts ...lattice.Option) (*Cell, error) {
	const tag = "FromParams"
	l, err := lattice.Classify(p, opts...)
	if err != nil {
		return nil, cellErrorf(tag, err, "classify")
	}
	g, err := metric.Build(l)
	if err != nil {
		return nil, cellErrorf(tag, err, "metric tensor of %s", l)
	}

	return build(tag, l, g, opts)
}

// FromTensor derives and classifies the lattice of t and builds the pair
// around t itself, so MetricTensor returns exactly t.
func FromTensor(t metric.Tensor, opts ...lattice.Option) (*Cell, error) {
	const tag = "FromTensor"
	l, err := metric.DeriveLattice(t, opts...)
	if err != nil {
		return nil, cellErrorf(tag, err, "derive lattice")
	}

	return build(tag, l, t, opts)
}

// build assembles both halves in one allocation and fills their caches.
// Nothing is returned unless every step succeeds.
func build(tag string, l lattice.Lattice, g metric.Tensor, opts []lattice.Option) (*Cell, error) {
	v, err := metric.Volume(g)
	if err != nil {
		return nil, cellErrorf(tag, err, "volume")
	}
	gStar, lStar, err := metric.Reciprocal(g, opts...)
	if err != nil {
		return nil, cellErrorf(tag, err, "reciprocal")
	}
	vStar, err := metric.Volume(gStar)
	if err != nil {
		return nil, cellErrorf(tag, err, "reciprocal volume")
	}

	p := &pair{}
	p.cells[sideDirect] = Cell{pair: p, side: sideDirect, lat: l, tensor: g, volume: v}
	p.cells[sideReciprocal] = Cell{pair: p, side: sideReciprocal, lat: lStar, tensor: gStar, volume: vStar}
	for i := range p.cells {
		if err = p.cells[i].cacheTransforms(); err != nil {
			return nil, cellErrorf(tag, err, "transforms")
		}
	}

	return &p.cells[sideDirect], nil
}

// cacheTransforms computes O from this half's parameters plus α* and c* of
// the paired half, then F = O⁻¹.
func (c *Cell) cacheTransforms() error {
	other := c.Reciprocal().lat
	a, b, cc := c.lat.A(), c.lat.B(), c.lat.C()
	rad := c.lat.AnglesRadians()
	alphaStar := other.AnglesRadians()[0]

	c.orth = r3.NewMat([]float64{
		snap(a), snap(b * math.Cos(rad[2])), snap(cc * math.Cos(rad[1])),
		0, snap(b * math.Sin(rad[2])), snap(-cc * math.Sin(rad[1]) * math.Cos(alphaStar)),
		0, 0, snap(1 / other.C()),
	})
	inv, err := metric.InverseLU(c.orth)
	if err != nil {
		return err
	}
	c.frac = r3.NewMat(nil)
	c.frac.CloneFrom(inv)

	return nil
}

// Lattice returns the lattice of this half.
func (c *Cell) Lattice() lattice.Lattice { return c.lat }

// MetricTensor returns G for a real cell and G* for a reciprocal one.
func (c *Cell) MetricTensor() metric.Tensor { return c.tensor }

// Volume returns sqrt(det G).
func (c *Cell) Volume() float64 { return c.volume }

// Reciprocal returns the other half of the pair. It never recomputes:
// c.Reciprocal().Reciprocal() == c.
func (c *Cell) Reciprocal() *Cell { return &c.pair.cells[1-c.side] }

// IsReciprocal reports whether c is the reciprocal half.
func (c *Cell) IsReciprocal() bool { return c.side == sideReciprocal }

// OrthogonalizationMatrix returns a copy of the upper-triangular O with rows
//
//	[a, b·cosγ, c·cosβ]
//	[0, b·sinγ, −c·sinβ·cosα*]
//	[0, 0,      1/c*]
func (c *Cell) OrthogonalizationMatrix() *mat.Dense { return mat.DenseCopyOf(c.orth) }

// FractionalizationMatrix returns a copy of F = O⁻¹.
func (c *Cell) FractionalizationMatrix() *mat.Dense { return mat.DenseCopyOf(c.frac) }

// Orthogonalize maps fractional coordinates to Cartesian: O·v.
func (c *Cell) Orthogonalize(v r3.Vec) r3.Vec { return c.orth.MulVec(v) }

// Fractionalize maps Cartesian coordinates to fractional: F·v.
func (c *Cell) Fractionalize(v r3.Vec) r3.Vec { return c.frac.MulVec(v) }

func (c *Cell) String() string {
	kind := "direct"
	if c.IsReciprocal() {
		kind = "reciprocal"
	}

	return fmt.Sprintf("Cell[%s %s V=%g]", kind, c.lat, c.volume)
}

func snap(x float64) float64 {
	if math.Abs(x) < zeroSnap {
		return 0
	}

	return x
}
