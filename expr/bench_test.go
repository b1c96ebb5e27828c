package expr_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/expr"
)

const benchFormula = "x**3 - 5*x + 2 + sin(x)/(1 + x^2)"

// BenchmarkCompile measures lex + parse + fold + lower.
func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := expr.Compile(benchFormula); err != nil {
			b.Fatalf("Compile failed: %v", err)
		}
	}
}

// BenchmarkAt measures one scalar evaluation of the compiled closure chain.
func BenchmarkAt(b *testing.B) {
	f := expr.MustCompile(benchFormula)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.At(0.75)
	}
}

// BenchmarkMap400 measures one plotting pass at the default sample count.
func BenchmarkMap400(b *testing.B) {
	f := expr.MustCompile(benchFormula)
	xs := make([]float64, 400)
	for i := range xs {
		xs[i] = -3 + float64(i)*6/399
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Map(xs)
	}
}
