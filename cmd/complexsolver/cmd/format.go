package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/expr"
)

func newFormatCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "format <re> [im]",
		Short: "Render a complex value in the display modes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.ParserOptions()
			re, err := expr.Eval(args[0], opts...)
			if err != nil {
				return fmt.Errorf("re: %w", err)
			}
			var im float32
			if len(args) == 2 {
				if im, err = expr.Eval(args[1], opts...); err != nil {
					return fmt.Errorf("im: %w", err)
				}
			}

			modes, err := parseModes(mode)
			if err != nil {
				return err
			}
			z := cplx.New(re, im)
			f := a.cfg.Formatter()
			out := cmd.OutOrStdout()
			for _, m := range modes {
				fmt.Fprintf(out, "%-12s %s\n", m, f.Format(z, m))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", modeAll, "rectangular, polar, phasor, engineering or all")

	return cmd
}
