package bisection

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the bracket validator and the search.
var (
	// ErrInvalidBracket indicates f(a)·f(b) is not strictly negative
	// (same signs, a zero endpoint, a degenerate or non-finite interval).
	ErrInvalidBracket = errors.New("bisection: interval does not bracket a root")

	// ErrEvaluation indicates f is undefined (NaN/±Inf) at a point the search
	// needs. The evaluator's own error is wrapped alongside it.
	ErrEvaluation = errors.New("bisection: function undefined at evaluation point")

	// ErrBadTolerance indicates Tolerance is not finite and positive.
	ErrBadTolerance = errors.New("bisection: Tolerance must be finite and > 0")

	// ErrBadMaxIterations indicates MaxIterations < 1.
	ErrBadMaxIterations = errors.New("bisection: MaxIterations must be >= 1")
)

// Evaluator yields a definite value of f at x, or an error when f is
// undefined there. *expr.Function satisfies it.
type Evaluator interface {
	At(x float64) (float64, error)
}

// ScalarFunc adapts a plain Go function to Evaluator. NaN and ±Inf results
// are reported as ErrEvaluation.
type ScalarFunc func(float64) float64

// At implements Evaluator.
func (f ScalarFunc) At(x float64) (float64, error) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return y, fmt.Errorf("ScalarFunc: f(%g) = %g: %w", x, y, ErrEvaluation)
	}

	return y, nil
}

// Reason tells why the search stopped.
type Reason int

const (
	// ExactRootFound means a midpoint evaluated to exactly 0.
	ExactRootFound Reason = iota + 1

	// ToleranceMet means the half-width (hi−lo)/2 dropped to ≤ Tolerance.
	ToleranceMet

	// MaxIterationsReached means MaxIterations updates were spent first.
	// The result still carries the best estimate and is not an error.
	MaxIterationsReached
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ExactRootFound:
		return "ExactRootFound"
	case ToleranceMet:
		return "ToleranceMet"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Result is the outcome of one search. It is a plain value; callers own it.
type Result struct {
	// Root is the estimate: the zero midpoint for ExactRootFound,
	// otherwise (Lower+Upper)/2 of the final working bounds.
	Root float64

	// Iterations counts completed halvings, 0 ≤ Iterations ≤ MaxIterations.
	Iterations int

	// Reason is the termination reason.
	Reason Reason

	// Lower and Upper are the working bounds when the search stopped.
	Lower, Upper float64

	// HalfWidth is (Upper−Lower)/2, the error bound on Root.
	HalfWidth float64

	// Steps holds one record per midpoint evaluation when Options.Trace is set.
	Steps []Step
}

// Step records one midpoint evaluation.
type Step struct {
	K            int     // 1-based evaluation number
	Lower, Upper float64 // bounds before the update
	Mid, FMid    float64 // midpoint and f(midpoint)
	HalfWidth    float64 // (Upper−Lower)/2 before the update
}
