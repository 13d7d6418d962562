// Package lvcryst is a small crystallographic unit-cell core: classify a
// partially specified cell, build its metric tensor and reciprocal, and
// measure geometry in the cell's own oblique basis.
//
// 🚀 What is lvcryst?
//
//	A pure-Go library on top of gonum that brings together:
//		• Classification: six optional parameters → crystal system + axis
//		• Metric tensors: G, det G = V², G* = G⁻¹ via LU
//		• Cell geometry: lengths, angles, dihedrals, d-spacings, transforms
//
// ✨ Why choose lvcryst?
//
//   - One canonical construction path, no per-system constructors
//   - Explicit tolerances instead of bitwise float equality
//   - Real and reciprocal cells linked by identity, never recomputed
//   - Immutable values, safe for concurrent readers
//
// Packages:
//
//	lattice/    CrystalSystem, Params, Lattice and the Classify decision tree
//	metric/     metric tensor, volume, reciprocal tensor and lattice
//	unitcell/   the real/reciprocal Cell pair and all geometric queries
//	cmd/        cellcalc, a command-line front end
//	examples/   runnable scenario programs
//
// Quick example:
//
//	c, _ := unitcell.FromParams(lattice.Params{
//		Lengths: [3]lattice.Param{lattice.Given(5.43018), lattice.Unset, lattice.Unset},
//	})
//	d, _ := c.DSpacing(unitcell.Miller{H: 1, K: 1, L: 1}) // 3.13512 Å
//
//	go get github.com/katalvlaran/lvcryst
package lvcryst
