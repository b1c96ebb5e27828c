// Package rootfind is a small numerical toolkit for one-variable formulas:
// type a formula, look at its curve, and bracket and bisect a root.
//
// 🚀 What is rootfind?
//
//	A thread-safe library plus a CLI that brings together:
//		• Expression compiler: "x**3 - 5*x + 2" → a callable f(x)
//		• Domain sampler: evenly spaced (x, f(x)) pairs for a plot
//		• Bracket validator: strict sign-change test f(a)·f(b) < 0
//		• Bisection engine: halving with three explicit stop reasons
//
// ✨ Why rootfind?
//
//   - Safe input – formulas are parsed against a closed grammar, never executed
//   - Undefined points are data – NaN/±Inf stay in the samples instead of aborting
//   - Deterministic – identical inputs give bit-identical results
//   - Sentinel errors – branch with errors.Is on every failure class
//
// Packages:
//
//	expr/      — lexer, parser, canonical printer and compiled evaluator
//	sample/    — Linspace and Sample over a plot domain
//	bisection/ — CheckBracket, FindRoot, FindRootIfBracketed
//	engine/    — one call per user action, with slog logging
//	config/    — YAML defaults validated with go-playground/validator
//	cmd/rootfind — cobra CLI: plot, solve, run
//
// Quick example:
//
//	f := expr.MustCompile("x**3 - 5*x + 2")
//	res, err := bisection.FindRootIfBracketed(f, 0, 1, nil)
//	// res.Root ≈ 0.414214, res.Reason == bisection.ToleranceMet
//
//	go get github.com/katalvlaran/rootfind
package rootfind
