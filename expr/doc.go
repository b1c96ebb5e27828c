// Package expr turns algebraic formulas in one real variable into
// compiled, pure float64 functions.
//
// 🚀 What does it do?
//
//	Compile("x**3 - 5*x + 2") tokenizes the text, parses it into a small
//	tagged-variant AST (Number, Variable, UnaryOp, BinaryOp, Call), folds
//	constant subtrees and lowers the tree into a chain of Go closures.
//	No reflection, no interpretation at evaluation time.
//
// ✨ Key features:
//   - operators + - * / and power written as ^ or ** (right-associative,
//     binds tighter than unary minus: -x^2 == -(x^2))
//   - constants pi, e, E; the variable is x unless WithVariable says otherwise
//   - built-ins: sin cos tan asin acos atan sinh cosh tanh exp log ln log10
//     log2 sqrt cbrt abs floor ceil sign, pow atan2 min max, log(x, base)
//   - two explicit evaluation entry points:
//     At(x)   — scalar; an undefined result (NaN/±Inf) fails with ErrEvaluation
//     Map(xs) — elementwise; undefined points stay NaN/±Inf, nothing aborts
//
// ⚙️ Usage:
//
//	f, err := expr.Compile("sin(x)/x")
//	if err != nil {
//	    // errors.Is(err, expr.ErrParse) for every syntax problem
//	}
//	y, err := f.At(0.5)                 // crisp value or ErrEvaluation
//	ys := f.Map([]float64{-1, 0, 1})    // [0.84…, NaN, 0.84…]
//
// A compiled *Function is immutable and safe for concurrent use.
package expr
