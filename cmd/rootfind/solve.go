package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/bisection"
)

type solveFlags struct {
	a, b    float64
	tol     float64
	maxIter int
	trace   bool
}

func newSolveCmd(a *app) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a root inside [a, b] by bisection",
		Long: `solve checks that f(a) and f(b) have strictly opposite signs and then
halves the interval until its half-width drops to the tolerance, a midpoint
evaluates to exactly zero, or the iteration cap is reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf.apply(cmd, a)
			if err := a.start(cmd); err != nil {
				return err
			}

			req := a.cfg.Request()
			req.Plot = nil
			rep, err := a.engine.Run(req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			a.header(cmd, rep.Function)
			return writeRoot(w, a.cfg.Bisection.A, a.cfg.Bisection.B, a.cfg.Bisection.Tolerance, rep.Root)
		},
	}
	sf.register(cmd)

	return cmd
}

func (sf *solveFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&sf.a, "a", bisection.DefaultLower, "lower end of the search interval")
	f.Float64Var(&sf.b, "b", bisection.DefaultUpper, "upper end of the search interval")
	f.Float64Var(&sf.tol, "tol", bisection.DefaultTolerance, "stop when the half-width is at most this")
	f.IntVar(&sf.maxIter, "max-iter", bisection.DefaultMaxIterations, "maximum number of halvings")
	f.BoolVar(&sf.trace, "trace", false, "print every midpoint evaluation")
}

func (sf *solveFlags) apply(cmd *cobra.Command, a *app) {
	flags := cmd.Flags()
	if flags.Changed("a") {
		a.cfg.Bisection.A = sf.a
	}
	if flags.Changed("b") {
		a.cfg.Bisection.B = sf.b
	}
	if flags.Changed("tol") {
		a.cfg.Bisection.Tolerance = sf.tol
	}
	if flags.Changed("max-iter") {
		a.cfg.Bisection.MaxIterations = sf.maxIter
	}
	if flags.Changed("trace") {
		a.cfg.Bisection.Trace = sf.trace
	}
}

// writeRoot prints the root report and, when traced, the step table.
func writeRoot(w io.Writer, lo, hi, tol float64, res *bisection.Result) error {
	if _, err := fmt.Fprintf(w, "root = %.6f after %d iterations (%s)\n", res.Root, res.Iterations, res.Reason); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "interval = [%g, %g], half-width = %g, expected iterations = %d\n",
		res.Lower, res.Upper, res.HalfWidth, bisection.ExpectedIterations(lo, hi, tol)); err != nil {
		return err
	}
	if len(res.Steps) == 0 {
		return nil
	}

	// Every row ends in a tab, so tabwriter buffers the whole table and
	// Flush reports any error from w.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tlower\tupper\tmid\tf(mid)\thalf-width\t")
	for _, s := range res.Steps {
		fmt.Fprintf(tw, "%d\t%.9g\t%.9g\t%.9g\t%.3g\t%.3g\t\n", s.K, s.Lower, s.Upper, s.Mid, s.FMid, s.HalfWidth)
	}

	return tw.Flush()
}
