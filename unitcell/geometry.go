package unitcell

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
)

// degenerateLength is the norm below which a vector has no direction.
const degenerateLength = 1e-10

// Length returns sqrt(vᵀGv).
func (c *Cell) Length(v r3.Vec) float64 { return c.tensor.Norm(v) }

// Distance returns Length(p2 − p1).
func (c *Cell) Distance(p1, p2 r3.Vec) float64 { return c.Length(r3.Sub(p2, p1)) }

// Dot returns the lattice dot product uᵀGv.
func (c *Cell) Dot(u, v r3.Vec) float64 { return c.tensor.Inner(u, v) }

// Angle returns the angle between v1 and v2 in radians.
func (c *Cell) Angle(v1, v2 r3.Vec) (float64, error) {
	const tag = "Angle"
	n1, n2 := c.Length(v1), c.Length(v2)
	if n1 < degenerateLength || n2 < degenerateLength {
		return 0, cellErrorf(tag, ErrDegenerate, "|v1|=%g |v2|=%g", n1, n2)
	}

	return acos(c.Dot(v1, v2) / (n1 * n2)), nil
}

// AngleAt returns the angle p1–p2–p3 with its vertex at p2.
func (c *Cell) AngleAt(p1, p2, p3 r3.Vec) (float64, error) {
	return c.Angle(r3.Sub(p2, p1), r3.Sub(p2, p3))
}

// Dihedral returns the angle between the plane through p1, p2, p3 and the
// plane through p2, p3, p4, in radians within [0, π].
func (c *Cell) Dihedral(p1, p2, p3, p4 r3.Vec) (float64, error) {
	const tag = "Dihedral"
	e12 := r3.Sub(p2, p1)
	e23 := r3.Sub(p2, p3)
	e34 := r3.Sub(p3, p4)

	n1 := c.Cross(e12, e23)
	n2 := c.Cross(e34, e23)
	ang, err := c.Angle(n1, n2)
	if err != nil {
		return 0, cellErrorf(tag, err, "collinear points")
	}

	return ang, nil
}

// Cross returns the lattice cross product of u and v: both are
// orthogonalized, crossed in Cartesian space and fractionalized back.
func (c *Cell) Cross(u, v r3.Vec) r3.Vec {
	return c.Fractionalize(r3.Cross(c.Orthogonalize(u), c.Orthogonalize(v)))
}

// DSpacing returns the interplanar spacing of hkl, 1/|h| with |h| measured
// in the paired cell. For a real cell the result is in Å.
func (c *Cell) DSpacing(hkl Miller) (float64, error) {
	const tag = "DSpacing"
	if hkl.IsZero() {
		return 0, cellErrorf(tag, lattice.ErrInvalidParameter, "indices %s", hkl)
	}

	return 1 / c.Reciprocal().Length(hkl.Vec()), nil
}

// acos is math.Acos with its argument clamped to [-1, 1].
func acos(x float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, x)))
}
