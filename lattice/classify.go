package lattice

// Classify normalizes a partially specified parameter set into a Lattice.
//
// Algorithm (first match wins):
//  1. Rhombohedral: exactly one angle given with b and c unset, or all three
//     angles given and pairwise equal. Skipped when the common angle is 90°
//     (a rhombohedral cell with right angles is cubic, handled in step 2).
//     Unset lengths take a; the common angle fills α, β, γ.
//  2. Unset angles become 90°. With the pairwise flags α=β, α=γ, β=γ:
//     - all equal:  b,c unset-or-equal to a → Cubic;
//     b unset-or-equal to a and c given → Tetragonal (axis C);
//     otherwise Orthorhombic (b and c required).
//     - none equal: Triclinic (b and c required).
//     - one pair:   odd angle 120° and b unset-or-equal to a → Hexagonal
//     (b defaults to a, c required, axis C); otherwise Monoclinic
//     (b and c required, axis = the odd angle's edge).
//  3. AsReciprocal forces AxisNone.
//
// Angles are compared within WithAngleTolerance (default 1e-6°) and
// lengths within WithLengthTolerance (default 1e-8 Å). If two of the three
// pairwise flags hold the angles are treated as all equal.
//
// Errors:
//   - ErrMissingParameter: a absent, or b/c absent where the branch needs them.
//   - ErrInvalidParameter: out-of-domain values, an explicit rhombohedral
//     b or c that differs from a, or a volume mismatch.
//   - ErrNumerical: the angles admit no positive-definite metric tensor.
//
// Complexity: O(1).
func Classify(p Params, opts ...Option) (Lattice, error) {
	const tag = "Classify"
	o := gatherOptions(opts...)

	if err := validateParams(tag, p); err != nil {
		return Lattice{}, err
	}

	l := Lattice{axis: AxisNone}
	if p.Volume.set {
		l.volume, l.hasVolume = p.Volume.value, true
	}

	var err error
	if common, ok := o.rhombohedralAngle(p); ok {
		err = o.rhombohedral(tag, p, common, &l)
	} else {
		err = o.filled(tag, p, &l)
	}
	if err != nil {
		return Lattice{}, err
	}

	if o.reciprocal {
		l.axis = AxisNone
	}
	if err = validateRealizable(tag, l, o); err != nil {
		return Lattice{}, err
	}

	return l, nil
}

// Force builds a Lattice from a complete parameter set with a caller-chosen
// system and axis, bypassing the decision tree. Domain, realizability and
// volume checks still apply; AsReciprocal still forces AxisNone.
func Force(lengths, angles [3]float64, sys CrystalSystem, axis PrincipalAxis, opts ...Option) (Lattice, error) {
	const tag = "Force"
	o := gatherOptions(opts...)

	p := FullParams(lengths[0], lengths[1], lengths[2], angles[0], angles[1], angles[2])
	if err := validateParams(tag, p); err != nil {
		return Lattice{}, err
	}
	if sys < Triclinic || sys > Cubic {
		return Lattice{}, latticeErrorf(tag, ErrInvalidParameter, "unknown crystal system %d", int(sys))
	}
	if axis < AxisNone || axis > AxisC {
		return Lattice{}, latticeErrorf(tag, ErrInvalidParameter, "unknown principal axis %d", int(axis))
	}

	l := Lattice{lengths: lengths, angles: angles, system: sys, axis: axis}
	if o.reciprocal {
		l.axis = AxisNone
	}
	if err := validateRealizable(tag, l, o); err != nil {
		return Lattice{}, err
	}

	return l, nil
}

// WithVolume returns a copy of l carrying v as its supplied volume, after
// cross-checking v against the lattice.
func (l Lattice) WithVolume(v float64, opts ...Option) (Lattice, error) {
	const tag = "WithVolume"
	if !validLength(v) {
		return Lattice{}, latticeErrorf(tag, ErrInvalidParameter, "volume=%v must be finite and > 0", v)
	}
	l.volume, l.hasVolume = v, true
	if err := validateRealizable(tag, l, gatherOptions(opts...)); err != nil {
		return Lattice{}, err
	}

	return l, nil
}

// rhombohedralAngle reports whether step 1 applies and returns the angle
// to propagate.
func (o Options) rhombohedralAngle(p Params) (float64, bool) {
	var given []float64
	for _, ang := range p.Angles {
		if ang.set {
			given = append(given, ang.value)
		}
	}

	var common float64
	switch {
	case len(given) == 1 && !p.Lengths[1].set && !p.Lengths[2].set:
		common = given[0]
	case len(given) == 3 && o.equalPairs([3]float64{given[0], given[1], given[2]}).count() >= 2:
		common = given[0]
	default:
		return 0, false
	}
	if o.sameAngle(common, rightAngle) {
		return 0, false
	}

	return common, true
}

func (o Options) rhombohedral(tag string, p Params, common float64, l *Lattice) error {
	a := p.Lengths[0].value
	for i := 1; i < 3; i++ {
		if !o.agrees(p.Lengths[i], a) {
			return latticeErrorf(tag, ErrInvalidParameter,
				"rhombohedral lattice requires %s = a, got %s=%v a=%v", lengthNames[i], lengthNames[i], p.Lengths[i].value, a)
		}
	}
	l.lengths = [3]float64{a, a, a}
	l.angles = [3]float64{common, common, common}
	l.system = Rhombohedral
	l.axis = AxisNone

	return nil
}

// filled runs step 2 of the decision tree.
func (o Options) filled(tag string, p Params, l *Lattice) error {
	a := p.Lengths[0].value
	bp, cp := p.Lengths[1], p.Lengths[2]

	for i, ang := range p.Angles {
		l.angles[i] = rightAngle
		if ang.set {
			l.angles[i] = ang.value
		}
	}
	eq := o.equalPairs(l.angles)

	switch n := eq.count(); {
	case n >= 2:
		switch {
		case o.agrees(bp, a) && o.agrees(cp, a):
			l.system, l.lengths = Cubic, [3]float64{a, a, a}
		case o.agrees(bp, a) && cp.set:
			l.system, l.axis = Tetragonal, AxisC
			l.lengths = [3]float64{a, a, cp.value}
		default:
			l.system = Orthorhombic
			return o.requireBC(tag, p, l)
		}
	case n == 0:
		l.system = Triclinic
		return o.requireBC(tag, p, l)
	default:
		odd := eq.odd()
		if o.sameAngle(l.angles[odd], hexAngle) && o.agrees(bp, a) {
			if !cp.set {
				return latticeErrorf(tag, ErrMissingParameter, "hexagonal lattice requires c")
			}
			l.system, l.axis = Hexagonal, AxisC
			l.lengths = [3]float64{a, a, cp.value}

			return nil
		}
		l.system, l.axis = Monoclinic, axisOf(odd)
		return o.requireBC(tag, p, l)
	}

	return nil
}

// requireBC copies the explicit lengths into l, failing when b or c is absent.
func (o Options) requireBC(tag string, p Params, l *Lattice) error {
	for i := 1; i < 3; i++ {
		if !p.Lengths[i].set {
			return latticeErrorf(tag, ErrMissingParameter, "%s lattice requires %s", l.system, lengthNames[i])
		}
	}
	l.lengths = [3]float64{p.Lengths[0].value, p.Lengths[1].value, p.Lengths[2].value}

	return nil
}

// anglePairs holds the flags [α=β, α=γ, β=γ].
type anglePairs [3]bool

func (o Options) equalPairs(ang [3]float64) anglePairs {
	return anglePairs{
		o.sameAngle(ang[0], ang[1]),
		o.sameAngle(ang[0], ang[2]),
		o.sameAngle(ang[1], ang[2]),
	}
}

func (e anglePairs) count() int {
	n := 0
	for _, v := range e {
		if v {
			n++
		}
	}

	return n
}

// odd returns the index of the angle outside the single equal pair.
// Only meaningful when count() == 1.
func (e anglePairs) odd() int {
	switch {
	case e[0]: // α=β, γ differs
		return 2
	case e[1]: // α=γ, β differs
		return 1
	default: // β=γ, α differs
		return 0
	}
}

// axisOf maps an angle index to the edge it is opposite to.
func axisOf(i int) PrincipalAxis { return AxisA + PrincipalAxis(i) }
