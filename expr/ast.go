package expr

import (
	"strconv"
	"strings"
)

// Node is one vertex of the expression tree. The concrete types are
// *Number, *Variable, *UnaryOp, *BinaryOp and *Call; switch on them.
type Node interface {
	isNode()
}

// Number is a numeric literal or a named constant (Name set, e.g. "pi").
type Number struct {
	Value float64
	Name  string
}

// Variable is a reference to the free variable.
type Variable struct {
	Name string
}

// UnaryOp is a prefix sign: Op is '+' or '-'.
type UnaryOp struct {
	Op      byte
	Operand Node
}

// BinaryOp is an infix operation: Op is one of '+', '-', '*', '/', '^'.
type BinaryOp struct {
	Op          byte
	Left, Right Node
}

// Call is a built-in function application.
type Call struct {
	Name string
	Args []Node
}

func (*Number) isNode()   {}
func (*Variable) isNode() {}
func (*UnaryOp) isNode()  {}
func (*BinaryOp) isNode() {}
func (*Call) isNode()     {}

// Binding strength used by the parser grammar and by Format.
const (
	precAdd = iota + 1
	precMul
	precUnary
	precPow
	precAtom
)

func binaryPrec(op byte) int {
	switch op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

// Format renders n in canonical form with the minimum parentheses needed
// to parse back into the same tree: "x^3 - 5*x + 2", "-(x + 1)^2".
func Format(n Node) string {
	var sb strings.Builder
	format(&sb, n, 0)

	return sb.String()
}

// format writes n, parenthesising when n binds looser than ctx.
func format(sb *strings.Builder, n Node, ctx int) {
	switch v := n.(type) {
	case *Number:
		if v.Name != "" {
			sb.WriteString(v.Name)
			return
		}
		s := strconv.FormatFloat(v.Value, 'g', -1, 64)
		if v.Value < 0 && ctx > precUnary {
			sb.WriteString("(" + s + ")")
			return
		}
		sb.WriteString(s)
	case *Variable:
		sb.WriteString(v.Name)
	case *UnaryOp:
		open := precUnary < ctx
		if open {
			sb.WriteByte('(')
		}
		sb.WriteByte(v.Op)
		format(sb, v.Operand, precUnary)
		if open {
			sb.WriteByte(')')
		}
	case *BinaryOp:
		p := binaryPrec(v.Op)
		open := p < ctx
		if open {
			sb.WriteByte('(')
		}
		switch v.Op {
		case '^':
			// right-associative; the exponent may itself be signed: x^-2
			format(sb, v.Left, precAtom)
			sb.WriteByte('^')
			format(sb, v.Right, precUnary)
		case '+', '-':
			format(sb, v.Left, p)
			sb.WriteString(" " + string(v.Op) + " ")
			format(sb, v.Right, p+1)
		default:
			format(sb, v.Left, p)
			sb.WriteByte(v.Op)
			format(sb, v.Right, p+1)
		}
		if open {
			sb.WriteByte(')')
		}
	case *Call:
		sb.WriteString(v.Name)
		sb.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, a, 0)
		}
		sb.WriteByte(')')
	}
}
