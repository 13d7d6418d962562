// Package cli wires the cellcalc command tree.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the cellcalc command tree against os.Args and exits with
// status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	st := &state{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:           "cellcalc",
		Short:         "cellcalc: unit-cell classification and geometry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			st.log = newLogger(c.ErrOrStderr(), debug)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		classifyCmd(st),
		cellCmd(st),
		measureCmd(st),
		dspacingCmd(st),
	)

	return cmd
}

// state is shared by every subcommand of one invocation.
type state struct {
	log *slog.Logger
}

// fail logs err and hands it back to cobra for the exit status.
func (s *state) fail(op string, err error) error {
	s.log.Error(op+".failed", "err", err)
	return err
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// wrap is fail for a possibly nil error.
func (s *state) wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return s.fail(op, err)
}
