package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/expr"
)

// execute runs one CLI invocation and captures both streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Cubic(t *testing.T) {
	out, _, err := execute(t, "solve", "--a=0", "--b=1")
	require.NoError(t, err)

	assert.Contains(t, out, "f(x) = x^3 - 5*x + 2\n")
	assert.Contains(t, out, "root = 0.414214 after 19 iterations (ToleranceMet)\n")
	assert.Contains(t, out, "expected iterations = 19\n")
}

func TestSolve_RejectsEndpointRoot(t *testing.T) {
	// f(2) == 0, so [0, 2] has no strict sign change.
	out, stderr, err := execute(t, "solve", "--a=0", "--b=2")
	require.ErrorIs(t, err, bisection.ErrInvalidBracket)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Error:")
}

func TestSolve_MaxIterations(t *testing.T) {
	out, _, err := execute(t, "solve", "--expr", "x - 2", "--a=0", "--b=5", "--tol=1e-12", "--max-iter=10")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 1.999512 after 10 iterations (MaxIterationsReached)\n")
}

func TestSolve_Trace(t *testing.T) {
	out, _, err := execute(t, "solve", "--expr", "x - 2", "--a=0", "--b=5", "--max-iter=3", "--trace")
	require.NoError(t, err)

	assert.Contains(t, out, "f(mid)")
	// function, root, interval, table header and one row per midpoint.
	assert.Equal(t, 7, strings.Count(out, "\n"), out)
}

func TestSolve_HugeInterval(t *testing.T) {
	out, _, err := execute(t, "solve", "--expr", "x - 1", "--a=-1e308", "--b=1e308")
	require.NoError(t, err)
	assert.Contains(t, out, "after 100 iterations (MaxIterationsReached)\n")
	assert.Contains(t, out, "expected iterations = 1044\n")
}

func TestSolve_Variable(t *testing.T) {
	out, _, err := execute(t, "solve", "--var", "t", "-e", "t^2 - 2", "--a=0", "--b=2")
	require.NoError(t, err)
	assert.Contains(t, out, "f(t) = t^2 - 2\n")
	assert.Contains(t, out, "(ToleranceMet)")
}

func TestPlot_TSV(t *testing.T) {
	out, _, err := execute(t, "plot", "--expr", "x^2", "--min=0", "--max=1", "--points=3")
	require.NoError(t, err)
	assert.Equal(t, "x\tf(x)\n0\t0\n0.5\t0.25\n1\t1\n", out)
}

func TestPlot_JSON(t *testing.T) {
	out, _, err := execute(t, "plot", "--expr", "1/x", "--min=-1", "--max=1", "--points=5", "--format=json")
	require.NoError(t, err)

	var doc struct {
		Function  string     `json:"function"`
		X         []float64  `json:"x"`
		Y         []*float64 `json:"y"`
		Undefined int        `json:"undefined"`
		YMin      *float64   `json:"y_min"`
		YMax      *float64   `json:"y_max"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "1/x", doc.Function)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, doc.X)
	require.Len(t, doc.Y, 5)
	assert.Nil(t, doc.Y[2], "1/0 is written as null")
	assert.Equal(t, 2.0, *doc.Y[3])
	assert.Equal(t, 1, doc.Undefined)
	require.NotNil(t, doc.YMin)
	assert.Equal(t, -2.0, *doc.YMin)
	assert.Equal(t, 2.0, *doc.YMax)
}

func TestPlot_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "plot", "--format=svg")
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestRun_Config(t *testing.T) {
	out, _, err := execute(t, "run", "--config", filepath.Join("testdata", "rootfind.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "sampled 400 points over [-10, 10], 0 undefined\n")
	assert.Contains(t, out, "root = 0.414214 after 19 iterations (ToleranceMet)\n")
}

func TestRun_SolveFailureKeepsPlot(t *testing.T) {
	out, _, err := execute(t, "run", "--a=0", "--b=2")
	require.ErrorIs(t, err, bisection.ErrInvalidBracket)
	assert.Contains(t, out, "sampled 400 points over [-3, 3]")
	assert.NotContains(t, out, "root =")
}

func TestRun_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "run", "--a=0", "--b=1", "--log-level=debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=compiled")
	assert.Contains(t, stderr, `msg="root found"`)
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "solve", "--expr", "x^^2", "--a=0", "--b=1")
	assert.ErrorIs(t, err, expr.ErrParse)

	_, _, err = execute(t, "plot", "--points=1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--log-level=loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "solve", "--var", "sin")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// failingWriter rejects any write that carries the step table.
type failingWriter struct{ bytes.Buffer }

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("f(mid)")) {
		return 0, errWriteFailed
	}
	return w.Buffer.Write(p)
}

func TestWriteRoot_TableWriteError(t *testing.T) {
	res, err := bisection.FindRoot(bisection.ScalarFunc(func(x float64) float64 { return x - 2 }), 0, 5,
		&bisection.Options{Tolerance: 1e-6, MaxIterations: 3, Trace: true})
	require.NoError(t, err)
	require.Len(t, res.Steps, 3)

	var w failingWriter
	err = writeRoot(&w, 0, 5, 1e-6, &res)
	require.ErrorIs(t, err, errWriteFailed)
	assert.Contains(t, w.String(), "after 3 iterations (MaxIterationsReached)")
}
