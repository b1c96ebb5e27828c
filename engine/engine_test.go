package engine_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/engine"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRequest() engine.Request {
	return engine.Request{
		Expression: "x**3 - 5*x + 2",
		Plot:       &engine.PlotRequest{Min: sample.DefaultMin, Max: sample.DefaultMax},
		Solve:      &engine.SolveRequest{A: 0, B: 1, Options: bisection.DefaultOptions()},
	}
}

// TestRun_PlotAndSolve runs the full pipeline and checks the log output.
func TestRun_PlotAndSolve(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := engine.New(engine.WithLogger(logger))

	rep, err := eng.Run(defaultRequest())
	require.NoError(t, err)
	assert.Equal(t, "x^3 - 5*x + 2", rep.Function)

	require.NotNil(t, rep.Samples)
	assert.Equal(t, sample.DefaultPoints, rep.Samples.Len())

	require.NotNil(t, rep.Root)
	assert.Equal(t, bisection.ToleranceMet, rep.Root.Reason)
	assert.InDelta(t, math.Sqrt2-1, rep.Root.Root, 1e-6)

	logs := buf.String()
	assert.Contains(t, logs, `"msg":"compiled"`)
	assert.Contains(t, logs, `"msg":"sampled"`)
	assert.Contains(t, logs, `"msg":"root found"`)
	assert.Contains(t, logs, `"reason":"ToleranceMet"`)
}

// TestRun_SolveFailureKeepsPlot verifies a rejected interval still returns
// the sampled curve.
func TestRun_SolveFailureKeepsPlot(t *testing.T) {
	var buf bytes.Buffer
	eng := engine.New(engine.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	req := defaultRequest()
	req.Solve.A, req.Solve.B = 0, 2 // f(2) == 0: not a strict sign change

	rep, err := eng.Run(req)
	require.ErrorIs(t, err, bisection.ErrInvalidBracket)
	assert.NotNil(t, rep.Samples)
	assert.Nil(t, rep.Root)
	assert.Contains(t, buf.String(), `"msg":"solve failed"`)
}

// TestRun_Errors covers the request-level failure classes.
func TestRun_Errors(t *testing.T) {
	eng := engine.New()

	_, err := eng.Run(engine.Request{Expression: "x"})
	assert.ErrorIs(t, err, engine.ErrEmptyRequest)

	req := defaultRequest()
	req.Expression = "x^^2"
	rep, err := eng.Run(req)
	assert.ErrorIs(t, err, expr.ErrParse)
	assert.Empty(t, rep.Function)

	req = defaultRequest()
	req.Variable = "2t"
	_, err = eng.Run(req)
	assert.ErrorIs(t, err, expr.ErrBadVariable)

	req = defaultRequest()
	req.Plot.Min, req.Plot.Max = 3, -3
	rep, err = eng.Run(req)
	assert.ErrorIs(t, err, sample.ErrInvalidRange)
	assert.Nil(t, rep.Root, "solve is not attempted after a failed plot")

	req = defaultRequest()
	req.Plot = nil
	req.Solve.Options.Tolerance = 0
	_, err = eng.Run(req)
	assert.ErrorIs(t, err, bisection.ErrBadTolerance)
}

// TestRun_VariableAndPoints covers renaming the variable and the sample count.
func TestRun_VariableAndPoints(t *testing.T) {
	eng := engine.New(engine.WithLogger(nil))

	rep, err := eng.Run(engine.Request{
		Expression: "t^2 - 2",
		Variable:   "t",
		Plot:       &engine.PlotRequest{Min: -1, Max: 1, Points: 1},
		Solve:      &engine.SolveRequest{A: 0, B: 2, Options: bisection.DefaultOptions()},
	})
	require.NoError(t, err)
	assert.Equal(t, "t^2 - 2", rep.Function)
	assert.Equal(t, 2, rep.Samples.Len())
	assert.InDelta(t, math.Sqrt2, rep.Root.Root, 1e-6)
}

// TestRun_Concurrent shares one Engine across goroutines.
func TestRun_Concurrent(t *testing.T) {
	eng := engine.New()
	want, err := eng.Run(defaultRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := eng.Run(defaultRequest())
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
