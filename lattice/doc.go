// Package lattice classifies crystallographic unit cells and holds the
// canonical six-parameter Lattice value the rest of lvcryst is built on.
//
// 🚀 What does it do?
//
//	A unit cell is described by three edge lengths (a, b, c) and three
//	inter-edge angles (α, β, γ). Users rarely type all six: a cubic cell is
//	"a = 5.43", a hexagonal one is "a = 3.2, c = 5.1, γ = 120". Classify
//	fills in whatever symmetry implies, decides the crystal system and the
//	principal axis, and refuses inputs it cannot complete or that
//	contradict themselves.
//
// ✨ Key features:
//   - single canonical entry point (Classify) for every partial input
//   - explicit, configurable tolerances instead of bitwise float equality
//   - reciprocal-lattice mode (AsReciprocal) with no principal axis
//   - Force for callers that already know the system and axis
//   - sentinel errors: ErrMissingParameter, ErrInvalidParameter, ErrNumerical
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcryst/lattice"
//
//	l, err := lattice.Classify(lattice.Params{
//		Lengths: [3]lattice.Param{lattice.Given(5), lattice.Unset, lattice.Given(2)},
//		Angles:  [3]lattice.Param{lattice.Unset, lattice.Unset, lattice.Given(120)},
//	})
//	// l.System() == lattice.Hexagonal, l.B() == 5, l.Axis() == lattice.AxisC
//
// Decision tree (first match wins):
//
//  1. Rhombohedral: one angle given with b and c unset, or all three
//     angles given and equal (and not 90°).
//  2. Remaining unset angles become 90°, then:
//     all equal     → Cubic / Tetragonal / Orthorhombic by edge lengths;
//     none equal    → Triclinic;
//     one pair equal→ Hexagonal if the odd angle is 120° and b is unset
//     or equal to a, else Monoclinic.
//  3. In reciprocal mode the principal axis is always AxisNone.
//
// Lattice values are immutable; "changing a cell" means classifying again.
package lattice
