package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/notation"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		tokens     bool
		raw        bool
		bestEffort bool
	)
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an expression with + - * / ^, parentheses, sqrt sin cos tan
ln log, the constants pi and e, and literals with an E exponent marker.

  complexsolver eval "2*sin(pi/6) + 1E-3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if tokens {
				for _, tok := range expr.Tokenize(input) {
					fmt.Fprintf(out, "%3d  %-8s %q\n", tok.Offset, tok.Kind, tok.Text)
				}
			}

			opts := a.cfg.ParserOptions()
			if bestEffort {
				opts = append(opts, expr.WithBestEffort())
			}
			v, err := expr.Eval(input, opts...)
			if err != nil {
				return err
			}
			a.log.Printf("eval: %q = %v", input, v)

			if raw {
				fmt.Fprintln(out, strconv.FormatFloat(float64(v), 'g', -1, 32))
			} else {
				fmt.Fprintln(out, notation.Engineering(v))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&tokens, "tokens", "t", false, "print the token stream first")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the value without engineering notation")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "ignore malformed input where possible")

	return cmd
}
