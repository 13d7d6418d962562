// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
)

const (
	// zeroSnap is the magnitude below which tensor entries are stored as 0.
	zeroSnap = 1e-10

	// symTol bounds |G[i][j] − G[j][i]| accepted by FromMatrix.
	symTol = 1e-10

	dim = 3
)

// Tensor is an immutable 3×3 symmetric positive-definite metric tensor.
// The zero value is not usable; obtain one from Build, FromMatrix or
// Reciprocal.
type Tensor struct {
	g *mat.SymDense
}

// Build returns the metric tensor of l:
//
//	G[i][i] = lenᵢ²
//	G[i][j] = lenᵢ·lenⱼ·cos(angleₖ)   with (i, j, k) cyclic over (0, 1, 2)
//
// so G[0][1] = ab·cosγ, G[1][2] = bc·cosα and G[0][2] = ac·cosβ.
// Entries with |x| < 1e-10 are stored as exactly 0.
func Build(l lattice.Lattice) (Tensor, error) {
	const tag = "Build"
	lens := l.Lengths()
	rad := l.AnglesRadians()

	data := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		j := (i + 1) % dim
		k := (j + 1) % dim
		data[i*dim+i] = snap(lens[i] * lens[i])
		off := snap(lens[i] * lens[j] * math.Cos(rad[k]))
		data[i*dim+j], data[j*dim+i] = off, off
	}

	return newTensor(tag, mat.NewSymDense(dim, data))
}

// FromMatrix validates a raw tensor and wraps a copy of it.
//
// Errors:
//   - ErrShape if m is not 3×3.
//   - lattice.ErrInvalidParameter on NaN or Inf entries.
//   - ErrAsymmetric if m deviates from symmetry by more than 1e-10.
//   - ErrNumerical if m is not positive-definite.
func FromMatrix(m mat.Matrix) (Tensor, error) {
	const tag = "FromMatrix"
	if r, c := m.Dims(); r != dim || c != dim {
		return Tensor{}, metricErrorf(tag, ErrShape, "got %dx%d", r, c)
	}

	data := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Tensor{}, metricErrorf(tag, lattice.ErrInvalidParameter, "entry (%d,%d) = %v", i, j, v)
			}
			if w := m.At(j, i); !scalar.EqualWithinAbsOrRel(v, w, symTol, symTol) {
				return Tensor{}, metricErrorf(tag, ErrAsymmetric, "entry (%d,%d) = %v, (%d,%d) = %v", i, j, v, j, i, w)
			}
			data[i*dim+j] = snap(v)
		}
	}

	return newTensor(tag, symmetrized(data))
}

// Volume returns sqrt(det G) with the determinant taken from an LU
// factorization. It fails with ErrNumerical when det G ≤ 0.
func Volume(t Tensor) (float64, error) {
	const tag = "Volume"
	det := t.Det()
	if !(det > 0) {
		return 0, metricErrorf(tag, ErrNumerical, "det G = %g", det)
	}

	return math.Sqrt(det), nil
}

// Reciprocal inverts t by LU decomposition and classifies the resulting
// parameters as a reciprocal lattice. Reciprocal lengths are sqrt(diag G*)
// and reciprocal angles follow the same cyclic opposite-angle convention as
// Build. opts tune the classification; lattice.AsReciprocal is always
// applied.
func Reciprocal(t Tensor, opts ...lattice.Option) (Tensor, lattice.Lattice, error) {
	const tag = "Reciprocal"
	inv, err := InverseLU(t.g)
	if err != nil {
		return Tensor{}, lattice.Lattice{}, metricErrorf(tag, ErrNumerical, "%v", err)
	}

	data := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			data[i*dim+j] = snap(inv.At(i, j))
		}
	}
	star, err := newTensor(tag, symmetrized(data))
	if err != nil {
		return Tensor{}, lattice.Lattice{}, err
	}

	lens, angles := star.parameters()
	p := lattice.FullParams(lens[0], lens[1], lens[2], angles[0], angles[1], angles[2])
	all := append(append([]lattice.Option(nil), opts...), lattice.AsReciprocal())
	l, err := lattice.Classify(p, all...)
	if err != nil {
		return Tensor{}, lattice.Lattice{}, metricErrorf(tag, err, "classify reciprocal parameters")
	}

	return star, l, nil
}

// DeriveLattice recovers the six parameters of t, attaches the LU volume
// and classifies them. The classifier cross-checks the volume, so a tensor
// whose determinant disagrees with its parameters is rejected.
func DeriveLattice(t Tensor, opts ...lattice.Option) (lattice.Lattice, error) {
	const tag = "DeriveLattice"
	v, err := Volume(t)
	if err != nil {
		return lattice.Lattice{}, metricErrorf(tag, err, "volume")
	}

	lens, angles := t.parameters()
	p := lattice.FullParams(lens[0], lens[1], lens[2], angles[0], angles[1], angles[2])
	p.Volume = lattice.Given(v)

	return lattice.Classify(p, opts...)
}

// InverseLU returns m⁻¹ computed by LU factorization and a solve against
// the identity. Singular or ill-conditioned input yields ErrNumerical
// wrapping gonum's mat.Condition; non-square input yields ErrShape.
func InverseLU(m mat.Matrix) (*mat.Dense, error) {
	const tag = "InverseLU"
	r, c := m.Dims()
	if r != c || r == 0 {
		return nil, metricErrorf(tag, ErrShape, "got %dx%d", r, c)
	}

	var lu mat.LU
	lu.Factorize(m)

	eye := make([]float64, r)
	for i := range eye {
		eye[i] = 1
	}
	var inv mat.Dense
	if err := lu.SolveTo(&inv, false, mat.NewDiagDense(r, eye)); err != nil {
		return nil, metricErrorf(tag, ErrNumerical, "%v", err)
	}

	return &inv, nil
}

// At returns G[i][j].
func (t Tensor) At(i, j int) float64 { return t.g.At(i, j) }

// Matrix returns a copy of the tensor as a dense matrix.
func (t Tensor) Matrix() *mat.Dense { return mat.DenseCopyOf(t.g) }

// Det returns det G from an LU factorization.
func (t Tensor) Det() float64 {
	var lu mat.LU
	lu.Factorize(t.g)

	return lu.Det()
}

// Inner returns uᵀGv, the lattice dot product of two fractional vectors.
func (t Tensor) Inner(u, v r3.Vec) float64 {
	return mat.Inner(vec(u), t.g, vec(v))
}

// Norm returns sqrt(vᵀGv).
func (t Tensor) Norm(v r3.Vec) float64 {
	sq := t.Inner(v, v)
	if sq < 0 {
		// rounding on a near-zero vector
		return 0
	}

	return math.Sqrt(sq)
}

// ApproxEqual reports whether every entry of t and o agrees within tol.
func (t Tensor) ApproxEqual(o Tensor, tol float64) bool {
	return mat.EqualApprox(t.g, o.g, tol)
}

// String renders the tensor as a bracketed 3×3 block.
func (t Tensor) String() string {
	return fmt.Sprintf("%.6g", mat.Formatted(t.g, mat.Squeeze()))
}

// parameters recovers (lengths, angles in degrees) from the tensor.
func (t Tensor) parameters() (lens, angles [3]float64) {
	for i := 0; i < dim; i++ {
		lens[i] = math.Sqrt(t.g.At(i, i))
	}
	for i := 0; i < dim; i++ {
		j := (i + 1) % dim
		k := (j + 1) % dim
		angles[i] = acosDegrees(t.g.At(j, k) / (lens[j] * lens[k]))
	}

	return lens, angles
}

// newTensor wraps s after checking positive-definiteness with a Cholesky
// factorization.
func newTensor(tag string, s *mat.SymDense) (Tensor, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return Tensor{}, metricErrorf(tag, ErrNumerical, "tensor is not positive-definite")
	}

	return Tensor{g: s}, nil
}

// symmetrized averages data with its transpose.
func symmetrized(data []float64) *mat.SymDense {
	out := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out[i*dim+j] = (data[i*dim+j] + data[j*dim+i]) / 2
		}
	}

	return mat.NewSymDense(dim, out)
}

func snap(x float64) float64 {
	if math.Abs(x) < zeroSnap {
		return 0
	}

	return x
}

// acosDegrees returns acos(c) in degrees with c clamped to [-1, 1].
func acosDegrees(c float64) float64 {
	switch {
	case c == 0:
		return 90
	case c > 1:
		c = 1
	case c < -1:
		c = -1
	}

	return math.Acos(c) * 180 / math.Pi
}

func vec(v r3.Vec) *mat.VecDense {
	return mat.NewVecDense(dim, []float64{v.X, v.Y, v.Z})
}
