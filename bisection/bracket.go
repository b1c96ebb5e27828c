package bisection

import (
	"fmt"
	"math"
)

const (
	methodCheckBracket        = "CheckBracket"
	methodFindRoot            = "FindRoot"
	methodFindRootIfBracketed = "FindRootIfBracketed"
)

// HasValidBracket reports whether f(a)·f(b) < 0.
//
// A zero at either endpoint, equal signs, or an endpoint where f is
// undefined all yield false. An endpoint root is not a valid bracket;
// callers reject the interval and ask for another one.
func HasValidBracket(f Evaluator, a, b float64) bool {
	return CheckBracket(f, a, b) == nil
}

// CheckBracket is HasValidBracket with a cause attached.
//
// Errors:
//   - ErrEvaluation: f is undefined at a or b.
//   - ErrInvalidBracket: a or b is not finite, or f(a)·f(b) ≥ 0.
//
// Order of the endpoints does not matter.
func CheckBracket(f Evaluator, a, b float64) error {
	if !isFinite(a) || !isFinite(b) {
		return fmt.Errorf("%s: [%g, %g]: %w", methodCheckBracket, a, b, ErrInvalidBracket)
	}
	fa, err := evaluate(methodCheckBracket, f, a)
	if err != nil {
		return err
	}
	fb, err := evaluate(methodCheckBracket, f, b)
	if err != nil {
		return err
	}
	if !(fa*fb < 0) {
		return fmt.Errorf("%s: f(%g) = %g, f(%g) = %g: %w", methodCheckBracket, a, fa, b, fb, ErrInvalidBracket)
	}

	return nil
}

// evaluate calls f.At and classifies any failure as ErrEvaluation, keeping
// the evaluator's error in the chain. A non-finite value returned without an
// error is classified the same way.
func evaluate(method string, f Evaluator, x float64) (float64, error) {
	y, err := f.At(x)
	if err != nil {
		return y, fmt.Errorf("%s: f(%g): %w: %w", method, x, ErrEvaluation, err)
	}
	if !isFinite(y) {
		return y, fmt.Errorf("%s: f(%g) = %g: %w", method, x, y, ErrEvaluation)
	}

	return y, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
