package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootfind/expr"
)

// ExampleCompile compiles the default formula, evaluates it at one point
// and prints its canonical form.
func ExampleCompile() {
	f, err := expr.Compile("x**3 - 5*x + 2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	y, _ := f.At(1)
	fmt.Printf("f(x) = %s\nf(1) = %g\n", f, y)
	// Output:
	// f(x) = x^3 - 5*x + 2
	// f(1) = -2
}

// ExampleFunction_Map shows the two evaluation paths side by side: the
// sequence keeps a +Inf marker, the scalar call reports an error.
func ExampleFunction_Map() {
	f := expr.MustCompile("1/x")
	fmt.Println(f.Map([]float64{-2, 0, 4}))

	_, err := f.At(0)
	fmt.Println(errors.Is(err, expr.ErrEvaluation))
	// Output:
	// [-0.5 +Inf 0.25]
	// true
}

// ExampleCompile_syntaxError shows how malformed input is classified.
func ExampleCompile_syntaxError() {
	_, err := expr.Compile("2*(x + 1")
	fmt.Println(errors.Is(err, expr.ErrParse), errors.Is(err, expr.ErrUnbalancedParens))
	// Output:
	// true true
}
