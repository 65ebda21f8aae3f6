package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complexsolver/internal/history"
	"github.com/katalvlaran/complexsolver/notation"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored solves",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent solves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				recs, err := s.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, r := range recs {
					status := "ok"
					if r.Error != "" {
						status = "failed"
					}
					fmt.Fprintf(out, "%s  %s  n=%d  %-16s %s\n",
						r.ID[:8], r.CreatedAt.Local().Format(time.DateTime), r.Unknowns, r.Policy, status)
				}

				return nil
			})
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries, 0 for all")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one solve; an unambiguous id prefix is enough",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				r, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printRecord(cmd.OutOrStdout(), r, a.cfg.Formatter())

				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one solve by its full id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *history.Store) error {
				return s.Delete(cmd.Context(), args[0])
			})
		},
	}

	cmd.AddCommand(list, show, del)

	return cmd
}

func (a *app) withStore(fn func(*history.Store) error) error {
	s, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s)
}

func printRecord(w io.Writer, r *history.Record, f notation.Formatter) {
	fmt.Fprintf(w, "id:       %s\n", r.ID)
	fmt.Fprintf(w, "time:     %s\n", r.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "policy:   %s\n", r.Policy)
	fmt.Fprintln(w, "system:")
	for _, row := range r.Matrix {
		fmt.Fprint(w, " ")
		for _, v := range row {
			fmt.Fprintf(w, " %s", notation.Rectangular(v))
		}
		fmt.Fprintln(w)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "error:    %s\n", r.Error)

		return
	}
	fmt.Fprintln(w, "solution:")
	printSolution(w, r.Solution, notation.Modes[:3], f)
}
