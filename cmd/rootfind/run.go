package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sample the formula and search for a root in one pass",
		Long: `run performs a full plot-and-solve pass from the configuration: it
summarises the sampled curve and then reports the root. A rejected interval
still prints the curve summary before the error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf.apply(cmd, a)
			if err := a.start(cmd); err != nil {
				return err
			}

			rep, err := a.engine.Run(a.cfg.Request())
			if rep.Function == "" {
				return err
			}

			w := cmd.OutOrStdout()
			a.header(cmd, rep.Function)
			if set := rep.Samples; set != nil {
				fmt.Fprintf(w, "sampled %d points over [%g, %g], %d undefined\n",
					set.Len(), a.cfg.Plot.Min, a.cfg.Plot.Max, set.Undefined())
				if lo, hi, ok := set.YRange(); ok {
					fmt.Fprintf(w, "range = [%g, %g]\n", lo, hi)
				}
			}
			if err != nil {
				return err
			}

			b := a.cfg.Bisection
			return writeRoot(w, b.A, b.B, b.Tolerance, rep.Root)
		},
	}
	sf.register(cmd)

	return cmd
}
