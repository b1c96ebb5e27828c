package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/engine"
	"github.com/katalvlaran/rootfind/sample"
)

// Output formats accepted by plot --format.
const (
	formatTSV  = "tsv"
	formatJSON = "json"
)

var errUnknownFormat = errors.New("rootfind: unknown output format")

type plotFlags struct {
	min, max float64
	points   int
	format   string
}

func newPlotCmd(a *app) *cobra.Command {
	var pf plotFlags

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Sample the formula over a domain",
		Long: `plot evaluates the formula at evenly spaced points of [min, max],
both endpoints included. Points where the formula is undefined are written
as NaN/Inf in TSV and as null in JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pf.format != formatTSV && pf.format != formatJSON {
				return fmt.Errorf("plot: %q: %w", pf.format, errUnknownFormat)
			}
			flags := cmd.Flags()
			if flags.Changed("min") {
				a.cfg.Plot.Min = pf.min
			}
			if flags.Changed("max") {
				a.cfg.Plot.Max = pf.max
			}
			if flags.Changed("points") {
				a.cfg.Plot.Points = pf.points
			}
			if err := a.start(cmd); err != nil {
				return err
			}

			req := a.cfg.Request()
			req.Solve = nil
			rep, err := a.engine.Run(req)
			if err != nil {
				return err
			}

			if pf.format == formatJSON {
				return writePlotJSON(cmd.OutOrStdout(), a.cfg.Variable, rep)
			}
			return writePlotTSV(cmd.OutOrStdout(), a.cfg.Variable, rep.Samples)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&pf.min, "min", sample.DefaultMin, "left end of the plot domain")
	f.Float64Var(&pf.max, "max", sample.DefaultMax, "right end of the plot domain")
	f.IntVar(&pf.points, "points", sample.DefaultPoints, "number of sample points (>= 2)")
	f.StringVar(&pf.format, "format", formatTSV, "output format: tsv or json")

	return cmd
}

func writePlotTSV(w io.Writer, variable string, set *sample.SampleSet) error {
	if _, err := fmt.Fprintf(w, "%s\tf(%s)\n", variable, variable); err != nil {
		return err
	}
	for i := range set.X {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", set.X[i], set.Y[i]); err != nil {
			return err
		}
	}

	return nil
}

// plotValue encodes NaN and ±Inf as JSON null.
type plotValue float64

func (v plotValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type plotDocument struct {
	Function  string      `json:"function"`
	Variable  string      `json:"variable"`
	X         []float64   `json:"x"`
	Y         []plotValue `json:"y"`
	Undefined int         `json:"undefined"`
	YMin      *float64    `json:"y_min,omitempty"`
	YMax      *float64    `json:"y_max,omitempty"`
}

func writePlotJSON(w io.Writer, variable string, rep engine.Report) error {
	set := rep.Samples
	doc := plotDocument{
		Function:  rep.Function,
		Variable:  variable,
		X:         set.X,
		Y:         make([]plotValue, len(set.Y)),
		Undefined: set.Undefined(),
	}
	for i, y := range set.Y {
		doc.Y[i] = plotValue(y)
	}
	if lo, hi, ok := set.YRange(); ok {
		doc.YMin, doc.YMax = &lo, &hi
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
