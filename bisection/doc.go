// Package bisection locates a root of a real function inside a bracketing
// interval by repeated halving.
//
// 🚀 What is bisection?
//
//	If f is continuous on [a, b] and f(a)·f(b) < 0, the interval contains a
//	root. Evaluate the midpoint c, keep the half whose endpoints still
//	differ in sign, repeat. The bracket width halves every iteration, so
//	reaching a half-width tol takes ⌈log2((b−a)/tol)⌉−1 iterations,
//	independent of f.
//
// ✨ Key features:
//   - HasValidBracket / CheckBracket — strict sign-change test f(a)·f(b) < 0;
//     a zero at an endpoint is NOT accepted as a bracket
//   - FindRoot — the search loop, three termination reasons:
//     ExactRootFound, ToleranceMet, MaxIterationsReached (a success, not an error)
//   - FindRootIfBracketed — CheckBracket followed by FindRoot
//   - optional per-iteration trace (Options.Trace)
//
// ⚙️ Usage:
//
//	f := expr.MustCompile("x**3 - 5*x + 2")
//	opts := bisection.DefaultOptions()   // tol 1e-6, 100 iterations
//	res, err := bisection.FindRootIfBracketed(f, 0, 1, &opts)
//	if errors.Is(err, bisection.ErrInvalidBracket) {
//	    // ask for another interval
//	}
//	fmt.Printf("root=%.6f after %d iterations (%s)\n", res.Root, res.Iterations, res.Reason)
//
// Every function here is pure and reentrant; concurrent calls need no locks.
//
// Complexity:
//
//   - Time:   O(min(maxIter, log2((b−a)/tol))) evaluations of f
//   - Memory: O(1), or O(iterations) with Trace
package bisection
