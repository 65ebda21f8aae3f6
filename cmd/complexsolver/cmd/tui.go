package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complexsolver/internal/history"
	"github.com/katalvlaran/complexsolver/internal/tui"
	"github.com/katalvlaran/complexsolver/linear"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive worksheet editor",
		Long: `Start the interactive worksheet editor.

Navigation:
  ←/→       - previous / next equation
  ↑/↓       - previous / next column
  Enter     - edit the cell (real part, then imaginary part)
  s         - solve
  n         - new system
  q, Ctrl+C - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := tui.DefaultConfig()
			cfg.EvalOptions = a.cfg.ParserOptions()
			cfg.SolveOptions = a.cfg.SolverOptions()
			cfg.Formatter = a.cfg.Formatter()
			cfg.Width = a.cfg.Display.Width

			if a.cfg.History.Enabled {
				store, err := history.Open(a.cfg.History.Path)
				if err != nil {
					return err
				}
				defer store.Close()

				policy := policyName(a.cfg.Solver)
				cfg.OnSolve = func(m *linear.Augmented, x linear.Vector, err error) {
					if _, saveErr := store.Save(context.Background(), m, x, policy, err); saveErr != nil {
						a.log.Printf("history: %v", saveErr)
					}
				}
			}

			if err := tui.Run(cfg); err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			return nil
		},
	}
}
