// Package unitcell composes a classified lattice with its metric tensor and
// its reciprocal counterpart into one queryable geometric object.
//
// 🚀 What does a Cell answer?
//
//	Lengths, distances, angles and dihedrals between fractional
//	coordinates in the cell's own (possibly oblique) basis, the
//	orthogonalization/fractionalization transforms to and from a
//	Cartesian frame, lattice dot and cross products and interplanar
//	d-spacings.
//
// ✨ Key features:
//   - real and reciprocal cells are built together as one immutable pair;
//     c.Reciprocal().Reciprocal() == c by pointer identity
//   - orthogonalization (O) and fractionalization (F = O⁻¹) cached at construction
//   - safe for concurrent readers without locking
//   - ErrDegenerate instead of NaN for angles involving zero-length vectors
//
// ⚙️ Usage:
//
//	c, err := unitcell.FromParams(lattice.FullParams(8.28, 12.97, 7.15, 91.05, 116.26, 90.15))
//	d, _ := c.DSpacing(unitcell.Miller{H: 1, K: 1, L: 1}) // ≈ 3.8408 Å
//	r := c.Distance(r3.Vec{X: 0.1}, r3.Vec{X: 0.6, Y: 0.5})
//
// Conventions: vectors are fractional (gonum r3.Vec), lengths are in Å for
// a real cell and Å⁻¹ for a reciprocal one, angles are returned in radians.
// "Changing a cell" means building a new one.
package unitcell
