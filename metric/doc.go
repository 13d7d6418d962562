// Package metric builds the metric tensor (Gram matrix) of a lattice and
// derives everything that follows from it: cell volume, the reciprocal
// tensor G* = G⁻¹ and the reciprocal lattice parameters.
//
// 🚀 What is a metric tensor?
//
//	For basis vectors a, b, c the tensor is G[i][j] = eᵢ·eⱼ. It turns
//	fractional coordinates into lengths and angles without ever leaving
//	the oblique basis: |v|² = vᵀGv and V² = det G.
//
// ✨ Key features:
//   - Build from a classified lattice, FromMatrix from a raw tensor
//   - LU-based determinant and inverse (gonum mat), Cholesky positivity check
//   - Reciprocal re-classifies G* with lattice.AsReciprocal
//   - DeriveLattice recovers the six parameters from any valid tensor
//
// ⚙️ Usage:
//
//	g, _ := metric.Build(l)
//	v, _ := metric.Volume(g)
//	gStar, recip, _ := metric.Reciprocal(g)
//
// Tensors are immutable once built; accessors hand out copies.
package metric
