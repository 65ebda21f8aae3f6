package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/internal/config"
	"github.com/katalvlaran/complexsolver/internal/history"
	"github.com/katalvlaran/complexsolver/internal/phasorplot"
	"github.com/katalvlaran/complexsolver/internal/sysfile"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
	"github.com/katalvlaran/complexsolver/sheet"
)

// residualTolerance is the largest |Ax - b| reported as "ok" by --check.
const residualTolerance = 1e-3

// modeAll prints every display mode.
const modeAll = "all"

type solveFlags struct {
	file       string
	rows       []string
	mode       string
	legacy     bool
	noPivot    bool
	bestEffort bool
	save       bool
	check      bool
	plot       string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a system of linear equations",
		Long: `Solve a system of 2 to 5 linear equations with complex coefficients.

The system comes from a YAML file (--file) or from one --row per equation.
A row lists n coefficients and the constant, separated by commas; a cell is
an expression for the real part, optionally followed by ":" and the
imaginary part:

  complexsolver solve --row "1, 1, 3" --row "2, -1, 0:sqrt(2)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML system file")
	cmd.Flags().StringArrayVarP(&f.rows, "row", "r", nil, "one equation: comma-separated cells, re[:im]")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "rectangular, polar, phasor, engineering or all")
	cmd.Flags().BoolVar(&f.legacy, "legacy", false, "never fail: no pivoting, division by zero yields zero")
	cmd.Flags().BoolVar(&f.noPivot, "no-pivot", false, "disable partial pivoting")
	cmd.Flags().BoolVar(&f.bestEffort, "best-effort", false, "evaluate malformed cells as far as possible")
	cmd.Flags().BoolVar(&f.save, "save", false, "store the solve in history")
	cmd.Flags().BoolVar(&f.check, "check", false, "print the residual max|Ax-b|")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write a phasor diagram (png, svg, pdf)")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	file, err := f.system()
	if err != nil {
		return err
	}

	parse := a.cfg.ParserOptions()
	if f.bestEffort {
		parse = append(parse, expr.WithBestEffort())
	}
	m, err := file.Build(parse...)
	if err != nil {
		return err
	}

	modes, err := f.modes(a.cfg, file)
	if err != nil {
		return err
	}

	solver := *a.cfg
	solver.Solver.Legacy = a.cfg.Solver.Legacy || f.legacy
	solver.Solver.Pivoting = a.cfg.Solver.Pivoting && !f.noPivot && !f.legacy
	policy := policyName(solver.Solver)
	a.log.Printf("solve: n=%d policy=%s", m.Unknowns(), policy)

	x, solveErr := linear.Solve(m, solver.SolverOptions()...)
	if f.save || a.cfg.History.Enabled {
		if err = a.record(cmd, m, x, policy, solveErr); err != nil {
			return err
		}
	}
	if solveErr != nil {
		return solveErr
	}

	out := cmd.OutOrStdout()
	printSolution(out, x, modes, a.cfg.Formatter())

	if f.check {
		r, err := linear.Residual(m, x)
		if err != nil {
			return err
		}
		verdict := "ok"
		if !scalar.EqualWithinAbs(float64(r), 0, residualTolerance) {
			verdict = "poor"
		}
		fmt.Fprintf(out, "residual: %s (%s)\n", notation.Engineering(r), verdict)
	}

	if f.plot != "" {
		if err = phasorplot.Save(x, "Solution", f.plot); err != nil {
			return err
		}
		a.log.Printf("solve: plot written to %s", f.plot)
	}

	return nil
}

func (a *app) record(cmd *cobra.Command, m *linear.Augmented, x linear.Vector, policy string, solveErr error) error {
	store, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Save(cmd.Context(), m, x, policy, solveErr)
	if err != nil {
		return err
	}
	a.log.Printf("history: saved %s", rec.ID)
	fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", rec.ID)

	return nil
}

func policyName(s config.SolverConfig) string {
	name := "hardened"
	if s.Legacy {
		name = "legacy"
	}
	pivot := linear.PivotNone
	if s.Pivoting {
		pivot = linear.PivotPartial
	}

	return name + "/" + pivot.String()
}

// system returns the file form of the requested system.
func (f *solveFlags) system() (*sysfile.File, error) {
	switch {
	case f.file != "" && len(f.rows) > 0:
		return nil, errors.New("solve: --file and --row are exclusive")
	case f.file != "":
		return sysfile.LoadFile(f.file)
	case len(f.rows) > 0:
		return rowsFile(f.rows), nil
	}

	return nil, errors.New("solve: give --file or at least two --row flags")
}

// rowsFile turns --row values into a File. Shape errors surface in Build.
func rowsFile(rows []string) *sysfile.File {
	file := &sysfile.File{Equations: make([][]sysfile.Cell, len(rows))}
	for i, row := range rows {
		parts := strings.Split(row, ",")
		cells := make([]sysfile.Cell, len(parts))
		for j, p := range parts {
			re, im, _ := strings.Cut(p, ":")
			cells[j] = sysfile.Cell{Re: strings.TrimSpace(re), Im: strings.TrimSpace(im)}
		}
		file.Equations[i] = cells
	}

	return file
}

// modes resolves --mode, then the file's mode, then the config.
func (f *solveFlags) modes(cfg *config.Config, file *sysfile.File) ([]notation.Mode, error) {
	name := f.mode
	if name == "" {
		if m, ok := file.DisplayMode(); ok {
			return []notation.Mode{m}, nil
		}

		return []notation.Mode{cfg.DisplayMode()}, nil
	}

	return parseModes(name)
}

func parseModes(name string) ([]notation.Mode, error) {
	if strings.EqualFold(name, modeAll) {
		return notation.Modes[:3], nil
	}
	m, err := notation.ParseMode(name)
	if err != nil {
		return nil, err
	}

	return []notation.Mode{m}, nil
}

func printSolution(w io.Writer, x linear.Vector, modes []notation.Mode, f notation.Formatter) {
	for k, z := range x {
		values := make([]string, len(modes))
		for i, m := range modes {
			values[i] = f.Format(z, m)
		}
		fmt.Fprintf(w, "%s = %s\n", sheet.UnknownLabel(k), strings.Join(values, "  "))
	}
}
