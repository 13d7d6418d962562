package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcryst/lattice"
	"github.com/katalvlaran/lvcryst/unitcell"
)

const toDegrees = 180 / math.Pi

func classifyCmd(st *state) *cobra.Command {
	var f cellFlags

	c := &cobra.Command{
		Use:   "classify",
		Short: "Infer the crystal system and missing parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options()
			if err != nil {
				return st.fail("classify", err)
			}
			l, err := lattice.Classify(f.params(cmd.Flags()), opts...)
			if err != nil {
				return st.fail("classify", err)
			}
			st.log.Debug("classify.done", "system", l.System().String(), "axis", l.Axis().String())
			printLattice(cmd.OutOrStdout(), "", l)

			return nil
		},
	}
	f.register(c.Flags())
	c.Flags().BoolVar(&f.reciprocal, "reciprocal", false, "classify as a reciprocal lattice (no principal axis)")

	return c
}

func cellCmd(st *state) *cobra.Command {
	var f cellFlags

	c := &cobra.Command{
		Use:   "cell",
		Short: "Print volume, metric tensors and coordinate transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cell, err := f.buildCell(cmd, st)
			if err != nil {
				return st.fail("cell", err)
			}
			w := cmd.OutOrStdout()
			recip := cell.Reciprocal()

			printLattice(w, "", cell.Lattice())
			fmt.Fprintf(w, "volume: %.6f\n", cell.Volume())
			printMatrix(w, "G", cell.MetricTensor().Matrix())
			printMatrix(w, "O", cell.OrthogonalizationMatrix())
			printMatrix(w, "F", cell.FractionalizationMatrix())
			fmt.Fprintln(w)
			printLattice(w, "reciprocal ", recip.Lattice())
			fmt.Fprintf(w, "reciprocal volume: %.6g\n", recip.Volume())
			printMatrix(w, "G*", recip.MetricTensor().Matrix())

			return nil
		},
	}
	f.register(c.Flags())

	return c
}

func measureCmd(st *state) *cobra.Command {
	var (
		f     cellFlags
		sites []string
	)

	c := &cobra.Command{
		Use:   "measure",
		Short: "Distance, angle and dihedral between fractional sites",
		Long: "Pass --site two to four times. Two sites give a distance, three add the\n" +
			"angle at the middle site, four add the dihedral angle.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(sites) < 2 || len(sites) > 4 {
				return st.fail("measure", fmt.Errorf("need 2 to 4 --site values, got %d", len(sites)))
			}
			ps := make([]r3.Vec, len(sites))
			for i, s := range sites {
				p, err := parseSite(s)
				if err != nil {
					return st.fail("measure", err)
				}
				ps[i] = p
			}
			cell, err := f.buildCell(cmd, st)
			if err != nil {
				return st.fail("measure", err)
			}

			return st.wrap("measure", measure(cmd.OutOrStdout(), cell, ps))
		},
	}
	f.register(c.Flags())
	c.Flags().StringArrayVar(&sites, "site", nil, "fractional site x,y,z (repeatable)")

	return c
}

func measure(w io.Writer, cell *unitcell.Cell, ps []r3.Vec) error {
	for i := 1; i < len(ps); i++ {
		fmt.Fprintf(w, "distance %d-%d: %.6f\n", i, i+1, cell.Distance(ps[i-1], ps[i]))
	}
	for i := 2; i < len(ps); i++ {
		ang, err := cell.AngleAt(ps[i-2], ps[i-1], ps[i])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "angle %d-%d-%d: %.4f\n", i-1, i, i+1, ang*toDegrees)
	}
	if len(ps) == 4 {
		dih, err := cell.Dihedral(ps[0], ps[1], ps[2], ps[3])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "dihedral 1-2-3-4: %.4f\n", dih*toDegrees)
	}

	return nil
}

func dspacingCmd(st *state) *cobra.Command {
	var (
		f   cellFlags
		hkl []string
	)

	c := &cobra.Command{
		Use:   "dspacing",
		Short: "Interplanar spacing for Miller indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(hkl) == 0 {
				return st.fail("dspacing", errors.New("at least one --hkl is required"))
			}
			cell, err := f.buildCell(cmd, st)
			if err != nil {
				return st.fail("dspacing", err)
			}
			w := cmd.OutOrStdout()
			for _, s := range hkl {
				m, err := parseMiller(s)
				if err != nil {
					return st.fail("dspacing", err)
				}
				d, err := cell.DSpacing(m)
				if err != nil {
					return st.fail("dspacing", err)
				}
				fmt.Fprintf(w, "%s %.6f\n", m, d)
			}

			return nil
		},
	}
	f.register(c.Flags())
	c.Flags().StringArrayVar(&hkl, "hkl", nil, "Miller indices h,k,l (repeatable)")

	return c
}

func printLattice(w io.Writer, prefix string, l lattice.Lattice) {
	fmt.Fprintf(w, "%ssystem: %s (family %s, axis %s)\n", prefix, l.System(), l.Family(), l.Axis())
	fmt.Fprintf(w, "%slengths: a=%.6g b=%.6g c=%.6g\n", prefix, l.A(), l.B(), l.C())
	fmt.Fprintf(w, "%sangles: alpha=%.6g beta=%.6g gamma=%.6g\n", prefix, l.Alpha(), l.Beta(), l.Gamma())
}

func printMatrix(w io.Writer, name string, m mat.Matrix) {
	pad := fmt.Sprintf("%*s", len(name)+3, "")
	fmt.Fprintf(w, "%s = %.6g\n", name, mat.Formatted(m, mat.Prefix(pad), mat.Squeeze()))
}
