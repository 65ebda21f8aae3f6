// Package cmd holds the complexsolver command tree.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complexsolver/internal/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *log.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "complexsolver",
		Short: "Solve small systems of linear equations with complex coefficients",
		Long: `complexsolver solves systems of 2 to 5 linear equations whose
coefficients are complex numbers typed as arithmetic expressions.

Commands:
  solve    - solve a system from a YAML file or --row flags
  eval     - evaluate one expression
  format   - render a complex value in every display mode
  tui      - interactive worksheet editor
  history  - list and show stored solves`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newSolveCmd(a),
		newEvalCmd(a),
		newFormatCmd(a),
		newTUICmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree on os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		a.log = log.New(cmd.ErrOrStderr(), "complexsolver: ", log.Ltime)
	}

	path := a.cfgFile
	if path == "" {
		path = os.Getenv("COMPLEXSOLVER_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if path != "" {
		a.log.Printf("config: loaded %s", path)
	}

	return nil
}
