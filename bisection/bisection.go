package bisection

import "math"

// FindRoot — interval bisection
//
// Description:
//
//	Halves the working interval until the midpoint is an exact zero, the
//	half-width drops to Tolerance, or MaxIterations halvings are spent.
//
// Algorithm Outline:
//  1. lo, hi := a, b (swapped when a > b); the caller's values are not touched.
//  2. Loop:
//     if (hi−lo)/2 ≤ tol           → ToleranceMet,         root = (lo+hi)/2
//     if iterations == maxIter     → MaxIterationsReached, root = (lo+hi)/2
//     c := (lo+hi)/2
//     if f(c) == 0 (exact)         → ExactRootFound,       root = c
//     if f(lo)·f(c) < 0 { hi = c } else { lo = c }
//     iterations++
//
// Invariant: f(lo)·f(hi) ≤ 0 at the top of every iteration, given a valid
// starting bracket. The half-width after k halvings is (b−a)/2^(k+1).
//
// Precondition: HasValidBracket(f, a, b). FindRoot does not re-check it;
// on an invalid bracket it still terminates, but the estimate is meaningless.
// Use FindRootIfBracketed to get the check.
//
// Errors:
//   - ErrBadTolerance, ErrBadMaxIterations: invalid *Options.
//   - ErrEvaluation: f undefined at the lower bound or at a midpoint. The
//     returned Result holds the bounds and iteration count reached so far.
func FindRoot(f Evaluator, a, b float64, opts *Options) (Result, error) {
	o, err := resolve(methodFindRoot, opts)
	if err != nil {
		return Result{}, err
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, err := evaluate(methodFindRoot, f, lo)
	if err != nil {
		return Result{Lower: lo, Upper: hi, HalfWidth: (hi - lo) / 2}, err
	}

	var steps []Step
	if o.Trace {
		steps = make([]Step, 0, traceCap(o.MaxIterations))
	}

	k := 0
	for {
		half := (hi - lo) / 2
		if half <= o.Tolerance {
			return settle(lo, hi, k, ToleranceMet, steps), nil
		}
		if k >= o.MaxIterations {
			return settle(lo, hi, k, MaxIterationsReached, steps), nil
		}

		c := (lo + hi) / 2
		fc, err := evaluate(methodFindRoot, f, c)
		if err != nil {
			return Result{Iterations: k, Lower: lo, Upper: hi, HalfWidth: half, Steps: steps}, err
		}
		if o.Trace {
			steps = append(steps, Step{K: k + 1, Lower: lo, Upper: hi, Mid: c, FMid: fc, HalfWidth: half})
		}
		if fc == 0 {
			return Result{
				Root:       c,
				Iterations: k,
				Reason:     ExactRootFound,
				Lower:      lo,
				Upper:      hi,
				HalfWidth:  half,
				Steps:      steps,
			}, nil
		}

		// f(lo) is carried forward instead of re-evaluated; f is pure.
		if flo*fc < 0 {
			hi = c
		} else {
			lo, flo = c, fc
		}
		k++
	}
}

// FindRootIfBracketed validates the options and the bracket, then runs FindRoot.
//
// Errors:
//   - ErrBadTolerance, ErrBadMaxIterations: invalid *Options.
//   - ErrInvalidBracket: no strict sign change across [a, b].
//   - ErrEvaluation: f undefined at an endpoint or a midpoint.
func FindRootIfBracketed(f Evaluator, a, b float64, opts *Options) (Result, error) {
	if _, err := resolve(methodFindRootIfBracketed, opts); err != nil {
		return Result{}, err
	}
	if err := CheckBracket(f, a, b); err != nil {
		return Result{}, err
	}

	return FindRoot(f, a, b, opts)
}

// ExpectedIterations returns how many halvings the tolerance test needs for
// an interval of width |b−a|: the smallest k ≥ 0 with |b−a|/2^(k+1) ≤ tol.
// An exact zero at a midpoint or a MaxIterations cap can stop earlier.
// Returns 0 for a non-positive or non-finite tol, and for non-finite bounds.
//
// The half-width is taken as b/2 − a/2 and k is seeded from the binary
// exponents, so spans wider than MaxFloat64 and subnormal tolerances both
// stay in range.
func ExpectedIterations(a, b, tol float64) int {
	half := math.Abs(b/2 - a/2)
	if !isFinite(half) || !(tol > 0) || math.IsInf(tol, 0) || half <= tol {
		return 0
	}
	_, eh := math.Frexp(half)
	_, et := math.Frexp(tol)
	// half/tol lies in (2^(eh−et−1), 2^(eh−et+1)), so k is within two of the seed.
	k := max(eh-et-1, 0)
	for k > 0 && math.Ldexp(half, -(k-1)) <= tol {
		k--
	}
	for math.Ldexp(half, -k) > tol {
		k++
	}

	return k
}

// settle builds the Result for the two midpoint-of-bounds terminations.
func settle(lo, hi float64, k int, reason Reason, steps []Step) Result {
	return Result{
		Root:       (lo + hi) / 2,
		Iterations: k,
		Reason:     reason,
		Lower:      lo,
		Upper:      hi,
		HalfWidth:  (hi - lo) / 2,
		Steps:      steps,
	}
}

// traceCap bounds the initial trace allocation; the slice grows if needed.
func traceCap(maxIter int) int {
	const capLimit = 64
	if maxIter < capLimit {
		return maxIter
	}

	return capLimit
}
