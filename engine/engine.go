// Package engine is the single entry point a presentation layer calls per
// user action: compile the formula once, then sample it for the plot and/or
// run the bracket check and the bisection search.
//
// An Engine holds only read-only configuration (its logger), so one value
// can serve any number of concurrent requests.
package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/sample"
)

// ErrEmptyRequest indicates a Request that asks for neither a plot nor a root.
var ErrEmptyRequest = errors.New("engine: request has no plot and no solve part")

// Engine runs requests. The zero value is not usable; call New.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Engine. Without WithLogger it logs nowhere.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// PlotRequest asks for a sampled curve over [Min, Max].
// Points ≤ 0 means sample.DefaultPoints; 1 is raised to 2.
type PlotRequest struct {
	Min, Max float64
	Points   int
}

// SolveRequest asks for a root inside [A, B].
type SolveRequest struct {
	A, B    float64
	Options bisection.Options
}

// Request is one user action. Variable empty means expr.DefaultVariable.
type Request struct {
	Expression string
	Variable   string
	Plot       *PlotRequest
	Solve      *SolveRequest
}

// Report is what the presentation layer displays.
type Report struct {
	// Function is the canonical rendering, e.g. "x^3 - 5*x + 2".
	Function string

	// Samples is set when a plot was requested and succeeded.
	Samples *sample.SampleSet

	// Root is set when a solve was requested and succeeded.
	Root *bisection.Result
}

// Run executes req.
//
// The plot is produced before the solve, and a failed solve does not
// discard it: the returned Report keeps Samples alongside the error, so a
// caller can still draw the curve while asking for a different interval.
//
// Errors:
//   - expr.ErrParse (and its sub-kinds): malformed formula.
//   - expr.ErrBadVariable: unusable variable name.
//   - sample.ErrInvalidRange: bad plot domain.
//   - bisection.ErrInvalidBracket, bisection.ErrEvaluation,
//     bisection.ErrBadTolerance, bisection.ErrBadMaxIterations: solve failures.
//   - ErrEmptyRequest: neither Plot nor Solve set.
func (e *Engine) Run(req Request) (Report, error) {
	if req.Plot == nil && req.Solve == nil {
		return Report{}, ErrEmptyRequest
	}

	var copts []expr.Option
	if req.Variable != "" {
		if err := expr.ValidateVariable(req.Variable); err != nil {
			return Report{}, err
		}
		copts = append(copts, expr.WithVariable(req.Variable))
	}
	f, err := expr.Compile(req.Expression, copts...)
	if err != nil {
		e.logger.Warn("compile failed", slog.String("expression", req.Expression), slog.Any("error", err))
		return Report{}, err
	}
	rep := Report{Function: f.String()}
	e.logger.Debug("compiled", slog.String("expression", req.Expression), slog.String("canonical", rep.Function))

	if req.Plot != nil {
		set, err := e.plot(f, *req.Plot)
		if err != nil {
			return rep, err
		}
		rep.Samples = &set
	}

	if req.Solve != nil {
		res, err := e.solve(f, *req.Solve)
		if err != nil {
			return rep, err
		}
		rep.Root = &res
	}

	return rep, nil
}

func (e *Engine) plot(f *expr.Function, p PlotRequest) (sample.SampleSet, error) {
	var sopts []sample.Option
	if p.Points > 0 {
		sopts = append(sopts, sample.WithPoints(max(p.Points, 2)))
	}
	set, err := sample.Sample(f, p.Min, p.Max, sopts...)
	if err != nil {
		e.logger.Warn("sample failed", slog.Float64("min", p.Min), slog.Float64("max", p.Max), slog.Any("error", err))
		return set, err
	}
	e.logger.Debug("sampled",
		slog.Float64("min", p.Min),
		slog.Float64("max", p.Max),
		slog.Int("points", set.Len()),
		slog.Int("undefined", set.Undefined()),
	)

	return set, nil
}

func (e *Engine) solve(f *expr.Function, s SolveRequest) (bisection.Result, error) {
	res, err := bisection.FindRootIfBracketed(f, s.A, s.B, &s.Options)
	if err != nil {
		e.logger.Warn("solve failed", slog.Float64("a", s.A), slog.Float64("b", s.B), slog.Any("error", err))
		return res, err
	}
	e.logger.Info("root found",
		slog.Float64("root", res.Root),
		slog.Int("iterations", res.Iterations),
		slog.String("reason", res.Reason.String()),
		slog.Float64("half_width", res.HalfWidth),
	)

	return res, nil
}
