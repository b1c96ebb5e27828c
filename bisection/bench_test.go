package bisection_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/expr"
)

// benchmarkFindRoot runs FindRootIfBracketed on the default formula over
// [0, 1] with the given options and fails on unexpected errors.
func benchmarkFindRoot(b *testing.B, opts bisection.Options) {
	f := expr.MustCompile("x**3 - 5*x + 2")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bisection.FindRootIfBracketed(f, 0, 1, &opts); err != nil {
			b.Fatalf("FindRootIfBracketed failed: %v", err)
		}
	}
}

// BenchmarkFindRoot_Default benchmarks tol=1e-6 (19 halvings).
func BenchmarkFindRoot_Default(b *testing.B) {
	benchmarkFindRoot(b, bisection.DefaultOptions())
}

// BenchmarkFindRoot_Tight benchmarks tol=1e-15 (about 50 halvings).
func BenchmarkFindRoot_Tight(b *testing.B) {
	opts := bisection.DefaultOptions()
	opts.Tolerance = 1e-15
	benchmarkFindRoot(b, opts)
}

// BenchmarkFindRoot_Trace benchmarks the cost of recording steps.
func BenchmarkFindRoot_Trace(b *testing.B) {
	opts := bisection.DefaultOptions()
	opts.Trace = true
	benchmarkFindRoot(b, opts)
}
