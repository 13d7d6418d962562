package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/unitcell"
)

var (
	lengthFlags = [3]string{"a", "b", "c"}
	angleFlags  = [3]string{"alpha", "beta", "gamma"}
)

// cellFlags holds the lattice parameters and tolerances shared by every
// subcommand. A flag the user did not pass stays lattice.Unset.
type cellFlags struct {
	lengths    [3]float64
	angles     [3]float64
	volume     float64
	angleTol   float64
	lengthTol  float64
	reciprocal bool
}

func (f *cellFlags) register(fs *pflag.FlagSet) {
	for i, name := range lengthFlags {
		fs.Float64Var(&f.lengths[i], name, 0, fmt.Sprintf("edge length %s in Å", name))
	}
	for i, name := range angleFlags {
		fs.Float64Var(&f.angles[i], name, 0, fmt.Sprintf("angle %s in degrees", name))
	}
	fs.Float64Var(&f.volume, "volume", 0, "cell volume in Å³, cross-checked against the lattice")
	fs.Float64Var(&f.angleTol, "angle-tol", lattice.DefaultAngleTolerance, "angle equality tolerance in degrees")
	fs.Float64Var(&f.lengthTol, "length-tol", lattice.DefaultLengthTolerance, "length equality tolerance in Å")
}

// params converts the flags into a partially specified parameter set.
func (f *cellFlags) params(fs *pflag.FlagSet) lattice.Params {
	var p lattice.Params
	for i, name := range lengthFlags {
		if fs.Changed(name) {
			p.Lengths[i] = lattice.Given(f.lengths[i])
		}
	}
	for i, name := range angleFlags {
		if fs.Changed(name) {
			p.Angles[i] = lattice.Given(f.angles[i])
		}
	}
	if fs.Changed("volume") {
		p.Volume = lattice.Given(f.volume)
	}

	return p
}

// options validates the tolerance flags before turning them into options,
// so a bad value surfaces as an error instead of an option panic.
func (f *cellFlags) options() ([]lattice.Option, error) {
	if !validTol(f.angleTol) || !validTol(f.lengthTol) {
		return nil, fmt.Errorf("tolerances must be non-negative, got angle-tol=%v length-tol=%v", f.angleTol, f.lengthTol)
	}
	opts := []lattice.Option{
		lattice.WithAngleTolerance(f.angleTol),
		lattice.WithLengthTolerance(f.lengthTol),
	}
	if f.reciprocal {
		opts = append(opts, lattice.AsReciprocal())
	}

	return opts, nil
}

func validTol(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

// buildCell classifies the flags and builds the real/reciprocal pair.
func (f *cellFlags) buildCell(cmd *cobra.Command, st *state) (*unitcell.Cell, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	p := f.params(cmd.Flags())
	st.log.Debug("cell.build", "params", fmt.Sprint(p.Lengths, p.Angles), "volume", p.Volume.String())

	return unitcell.FromParams(p, opts...)
}

// splitTriple splits "x,y,z" into its three trimmed fields. Each --site or
// --hkl value is one triple; pflag's slice flags would flatten repeats.
func splitTriple(s string) ([3]string, error) {
	var out [3]string
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%q: want three comma-separated numbers", s)
	}
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}

	return out, nil
}

// parseTriple parses "x,y,z" into three floats.
func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	fields, err := splitTriple(s)
	if err != nil {
		return out, err
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}

func parseSite(s string) (r3.Vec, error) {
	t, err := parseTriple(s)
	if err != nil {
		return r3.Vec{}, err
	}

	return r3.Vec{X: t[0], Y: t[1], Z: t[2]}, nil
}

func parseMiller(s string) (unitcell.Miller, error) {
	fields, err := splitTriple(s)
	if err != nil {
		return unitcell.Miller{}, err
	}
	var idx [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return unitcell.Miller{}, fmt.Errorf("%q: Miller indices must be integers: %w", s, err)
		}
		idx[i] = v
	}

	return unitcell.Miller{H: idx[0], K: idx[1], L: idx[2]}, nil
}
