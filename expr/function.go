package expr

import (
	"fmt"
	"math"
)

// Function is a compiled formula. It is immutable after Compile and all
// methods are safe for concurrent use.
type Function struct {
	source   string
	variable string
	tree     Node
	eval     evalFunc
}

// Compile parses text and lowers it into an evaluable Function.
//
// Inputs:
//   - text: formula in one variable, e.g. "x**3 - 5*x + 2".
//   - opts: WithVariable to rename the free variable.
//
// Returns:
//   - *Function on success.
//   - an error matching errors.Is(err, ErrParse) on malformed input.
//
// Complexity: O(len(text)) to compile; evaluation is O(tree size) per point.
func Compile(text string, opts ...Option) (*Function, error) {
	cfg := gatherOptions(opts...)
	tree, err := Parse(text, opts...)
	if err != nil {
		return nil, err
	}

	return &Function{
		source:   text,
		variable: cfg.variable,
		tree:     tree,
		eval:     lower(fold(tree)),
	}, nil
}

// MustCompile is Compile for formulas known to be valid; it panics on error.
func MustCompile(text string, opts ...Option) *Function {
	f, err := Compile(text, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Source returns the text passed to Compile.
func (f *Function) Source() string { return f.source }

// Variable returns the free variable name.
func (f *Function) Variable() string { return f.variable }

// Tree returns the parsed expression tree. Callers must not mutate it.
func (f *Function) Tree() Node { return f.tree }

// String returns the canonical rendering, e.g. "x^3 - 5*x + 2".
func (f *Function) String() string { return Format(f.tree) }

// At evaluates the function at a single point.
// A NaN or ±Inf result is reported as ErrEvaluation; the non-finite value
// is still returned for callers that want to show it.
func (f *Function) At(x float64) (float64, error) {
	y := f.eval(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return y, fmt.Errorf("%s: f(%g) = %g: %w", methodAt, x, y, ErrEvaluation)
	}

	return y, nil
}

// Map evaluates the function elementwise and returns a new slice of the
// same length. Undefined points come back as NaN or ±Inf; evaluation of
// the remaining points is unaffected.
func (f *Function) Map(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f.eval(x)
	}

	return ys
}
