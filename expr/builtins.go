package expr

import "math"

// builtin describes one callable. fn1 serves the one-argument form and fn2
// the two-argument form; a nil entry means that arity is not accepted.
type builtin struct {
	fn1 func(float64) float64
	fn2 func(float64, float64) float64
}

func (b builtin) accepts(n int) bool {
	return (n == 1 && b.fn1 != nil) || (n == 2 && b.fn2 != nil)
}

func (b builtin) arityText() string {
	switch {
	case b.fn1 != nil && b.fn2 != nil:
		return "1 or 2 arguments"
	case b.fn2 != nil:
		return "2 arguments"
	default:
		return "1 argument"
	}
}

// builtins is read-only after package init.
var builtins = map[string]builtin{
	"sin":   {fn1: math.Sin},
	"cos":   {fn1: math.Cos},
	"tan":   {fn1: math.Tan},
	"asin":  {fn1: math.Asin},
	"acos":  {fn1: math.Acos},
	"atan":  {fn1: math.Atan},
	"sinh":  {fn1: math.Sinh},
	"cosh":  {fn1: math.Cosh},
	"tanh":  {fn1: math.Tanh},
	"exp":   {fn1: math.Exp},
	"log":   {fn1: math.Log, fn2: logBase},
	"ln":    {fn1: math.Log},
	"log10": {fn1: math.Log10},
	"log2":  {fn1: math.Log2},
	"sqrt":  {fn1: math.Sqrt},
	"cbrt":  {fn1: math.Cbrt},
	"abs":   {fn1: math.Abs},
	"floor": {fn1: math.Floor},
	"ceil":  {fn1: math.Ceil},
	"sign":  {fn1: sign},
	"pow":   {fn2: math.Pow},
	"atan2": {fn2: math.Atan2},
	"min":   {fn2: math.Min},
	"max":   {fn2: math.Max},
}

// constants is read-only after package init.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
	"E":  math.E,
}

// logBase is log(x, base), the natural log ratio.
func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// sign returns -1, 0 or 1, and NaN for NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return math.NaN()
	}
}
