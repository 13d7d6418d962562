// Crystal-system taxonomy, the partial-input parameter set and the
// immutable Lattice value.

package lattice

import (
	"fmt"
	"math"
)

// CrystalSystem tags the symmetry class a Lattice was classified into.
type CrystalSystem int

const (
	// Triclinic: no two angles equal.
	Triclinic CrystalSystem = iota
	// Monoclinic: one angle differs from the other two (principal axis A, B or C).
	Monoclinic
	// Orthorhombic: all angles 90°, edges unrelated.
	Orthorhombic
	// Tetragonal: all angles 90°, a = b ≠ c.
	Tetragonal
	// Trigonal is part of the taxonomy but never produced by Classify;
	// it is reachable through Force only.
	Trigonal
	// Rhombohedral: a = b = c, α = β = γ ≠ 90°.
	Rhombohedral
	// Hexagonal: a = b, α = β = 90°, γ = 120°.
	Hexagonal
	// Cubic: a = b = c, all angles 90°.
	Cubic
)

var systemNames = [...]string{
	Triclinic:    "triclinic",
	Monoclinic:   "monoclinic",
	Orthorhombic: "orthorhombic",
	Tetragonal:   "tetragonal",
	Trigonal:     "trigonal",
	Rhombohedral: "rhombohedral",
	Hexagonal:    "hexagonal",
	Cubic:        "cubic",
}

// String returns the lower-case system name.
func (s CrystalSystem) String() string {
	if s < Triclinic || s > Cubic {
		return fmt.Sprintf("CrystalSystem(%d)", int(s))
	}

	return systemNames[s]
}

// Family returns the crystal family of s. Rhombohedral and trigonal
// lattices belong to the hexagonal family; every other system is its own
// family.
func (s CrystalSystem) Family() CrystalSystem {
	switch s {
	case Rhombohedral, Trigonal:
		return Hexagonal
	default:
		return s
	}
}

// PrincipalAxis names the high-symmetry direction of a monoclinic,
// tetragonal or hexagonal lattice.
type PrincipalAxis int

const (
	// AxisNone means no principal axis (cubic, orthorhombic, triclinic,
	// rhombohedral and every reciprocal lattice). It is the zero value.
	AxisNone PrincipalAxis = iota
	// AxisA is the a direction.
	AxisA
	// AxisB is the b direction (standard monoclinic setting).
	AxisB
	// AxisC is the c direction.
	AxisC
)

// String returns "a", "b", "c" or "none".
func (p PrincipalAxis) String() string {
	switch p {
	case AxisA:
		return "a"
	case AxisB:
		return "b"
	case AxisC:
		return "c"
	case AxisNone:
		return "none"
	default:
		return fmt.Sprintf("PrincipalAxis(%d)", int(p))
	}
}

// Param is an optional lattice parameter. The zero value is Unset.
type Param struct {
	value float64
	set   bool
}

// Unset marks a parameter the caller did not supply.
var Unset Param

// Given returns a supplied parameter holding v.
func Given(v float64) Param { return Param{value: v, set: true} }

// Value returns the parameter value and whether it was supplied.
func (p Param) Value() (float64, bool) { return p.value, p.set }

// IsSet reports whether the parameter was supplied.
func (p Param) IsSet() bool { return p.set }

// String renders the value or "∅" when unset.
func (p Param) String() string {
	if !p.set {
		return "∅"
	}

	return fmt.Sprintf("%g", p.value)
}

// Params is a partially specified parameter set.
//
// Fields:
//   - Lengths: a, b, c in Å. a is always required.
//   - Angles : α, β, γ in degrees; α is opposite a (between b and c).
//   - Volume : optional cell volume in Å³, cross-checked against the lattice.
type Params struct {
	Lengths [3]Param
	Angles  [3]Param
	Volume  Param
}

// FullParams returns a Params with all six values supplied.
func FullParams(a, b, c, alpha, beta, gamma float64) Params {
	return Params{
		Lengths: [3]Param{Given(a), Given(b), Given(c)},
		Angles:  [3]Param{Given(alpha), Given(beta), Given(gamma)},
	}
}

// Lattice is an immutable, fully specified lattice: three lengths (Å),
// three angles (degrees), its crystal system and principal axis, and the
// volume when one was supplied for cross-validation.
//
// Build one with Classify or Force; the zero value is not a valid lattice.
type Lattice struct {
	lengths   [3]float64
	angles    [3]float64
	system    CrystalSystem
	axis      PrincipalAxis
	volume    float64
	hasVolume bool
}

// A returns the a edge length.
func (l Lattice) A() float64 { return l.lengths[0] }

// B returns the b edge length.
func (l Lattice) B() float64 { return l.lengths[1] }

// C returns the c edge length.
func (l Lattice) C() float64 { return l.lengths[2] }

// Alpha returns α (angle between b and c) in degrees.
func (l Lattice) Alpha() float64 { return l.angles[0] }

// Beta returns β (angle between a and c) in degrees.
func (l Lattice) Beta() float64 { return l.angles[1] }

// Gamma returns γ (angle between a and b) in degrees.
func (l Lattice) Gamma() float64 { return l.angles[2] }

// Lengths returns (a, b, c).
func (l Lattice) Lengths() [3]float64 { return l.lengths }

// Angles returns (α, β, γ) in degrees.
func (l Lattice) Angles() [3]float64 { return l.angles }

// AnglesRadians returns (α, β, γ) in radians.
func (l Lattice) AnglesRadians() [3]float64 {
	var out [3]float64
	for i, deg := range l.angles {
		out[i] = deg * math.Pi / 180
	}

	return out
}

// System returns the crystal system.
func (l Lattice) System() CrystalSystem { return l.system }

// Family returns the crystal family (see CrystalSystem.Family).
func (l Lattice) Family() CrystalSystem { return l.system.Family() }

// Axis returns the principal axis (AxisNone for reciprocal lattices).
func (l Lattice) Axis() PrincipalAxis { return l.axis }

// Volume returns the externally supplied volume, if any.
func (l Lattice) Volume() (float64, bool) { return l.volume, l.hasVolume }

// Params converts l back into a fully specified parameter set.
func (l Lattice) Params() Params {
	p := FullParams(l.lengths[0], l.lengths[1], l.lengths[2], l.angles[0], l.angles[1], l.angles[2])
	if l.hasVolume {
		p.Volume = Given(l.volume)
	}

	return p
}

// ApproxEqual reports whether l and o carry the same system, axis and
// parameters within the given absolute tolerances (Å and degrees).
func (l Lattice) ApproxEqual(o Lattice, lengthTol, angleTol float64) bool {
	if l.system != o.system || l.axis != o.axis {
		return false
	}
	for i := 0; i < 3; i++ {
		if math.Abs(l.lengths[i]-o.lengths[i]) > lengthTol {
			return false
		}
		if math.Abs(l.angles[i]-o.angles[i]) > angleTol {
			return false
		}
	}

	return true
}

// String renders the lattice in a compact single-line form.
func (l Lattice) String() string {
	return fmt.Sprintf("Lattice[%s axis=%s a=%g b=%g c=%g α=%g β=%g γ=%g]",
		l.system, l.axis,
		l.lengths[0], l.lengths[1], l.lengths[2],
		l.angles[0], l.angles[1], l.angles[2])
}
