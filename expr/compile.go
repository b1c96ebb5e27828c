package expr

import "math"

// evalFunc is the lowered form of a tree: one closure per node.
type evalFunc func(x float64) float64

// fold replaces every variable-free subtree with a single *Number.
// Named constants are kept as-is when they stand alone so that the
// tree still prints "pi" rather than 3.141592653589793.
func fold(n Node) Node {
	switch v := n.(type) {
	case *UnaryOp:
		operand := fold(v.Operand)
		out := &UnaryOp{Op: v.Op, Operand: operand}
		if isConst(operand) {
			return &Number{Value: lower(out)(0)}
		}
		return out
	case *BinaryOp:
		l, r := fold(v.Left), fold(v.Right)
		out := &BinaryOp{Op: v.Op, Left: l, Right: r}
		if isConst(l) && isConst(r) {
			return &Number{Value: lower(out)(0)}
		}
		return out
	case *Call:
		args := make([]Node, len(v.Args))
		allConst := true
		for i, a := range v.Args {
			args[i] = fold(a)
			allConst = allConst && isConst(args[i])
		}
		out := &Call{Name: v.Name, Args: args}
		if allConst {
			return &Number{Value: lower(out)(0)}
		}
		return out
	default:
		return n
	}
}

func isConst(n Node) bool {
	_, ok := n.(*Number)
	return ok
}

// lower turns a parsed (and arity-checked) tree into a closure chain.
// Every node kind and operator reaching here was produced by the parser,
// so the switches are exhaustive.
func lower(n Node) evalFunc {
	switch v := n.(type) {
	case *Number:
		c := v.Value
		return func(float64) float64 { return c }

	case *Variable:
		return func(x float64) float64 { return x }

	case *UnaryOp:
		f := lower(v.Operand)
		if v.Op == '-' {
			return func(x float64) float64 { return -f(x) }
		}
		return f

	case *BinaryOp:
		l, r := lower(v.Left), lower(v.Right)
		switch v.Op {
		case '+':
			return func(x float64) float64 { return l(x) + r(x) }
		case '-':
			return func(x float64) float64 { return l(x) - r(x) }
		case '*':
			return func(x float64) float64 { return l(x) * r(x) }
		case '/':
			return func(x float64) float64 { return l(x) / r(x) }
		default:
			return lowerPow(v, l, r)
		}

	case *Call:
		fn := builtins[v.Name]
		if len(v.Args) == 1 {
			a, f1 := lower(v.Args[0]), fn.fn1
			return func(x float64) float64 { return f1(a(x)) }
		}
		a, b, f2 := lower(v.Args[0]), lower(v.Args[1]), fn.fn2
		return func(x float64) float64 { return f2(a(x), b(x)) }
	}

	return func(float64) float64 { return math.NaN() }
}

// lowerPow specialises the squares and cubes that dominate polynomial input
// to plain multiplication.
func lowerPow(v *BinaryOp, base, exp evalFunc) evalFunc {
	if n, ok := v.Right.(*Number); ok {
		switch n.Value {
		case 2:
			return func(x float64) float64 { b := base(x); return b * b }
		case 3:
			return func(x float64) float64 { b := base(x); return b * b * b }
		}
	}

	return func(x float64) float64 { return math.Pow(base(x), exp(x)) }
}
