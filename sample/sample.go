// Package sample produces evenly spaced (x, y) pairs of a function over a
// closed domain, the raw material handed to a plot renderer.
//
// Undefined points are not errors here: y carries NaN or ±Inf at those
// positions and the renderer draws a gap.
package sample

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for a plotting request.
const (
	// DefaultPoints is the number of samples when WithPoints is not given.
	DefaultPoints = 400

	// DefaultMin and DefaultMax form the domain offered to users first.
	DefaultMin = -3.0
	DefaultMax = 3.0

	// WideMin and WideMax form the fixed wide domain.
	WideMin = -10.0
	WideMax = 10.0
)

var (
	// ErrInvalidRange indicates xMin ≥ xMax or a non-finite bound.
	ErrInvalidRange = errors.New("sample: range must be finite with xMin < xMax")

	// ErrShapeMismatch indicates a Mapper returned a slice of the wrong length.
	ErrShapeMismatch = errors.New("sample: mapper output length differs from input")
)

const panicPointsInvalid = "sample: WithPoints: n must be >= 2"

// Mapper evaluates a function elementwise, keeping NaN/±Inf for undefined
// points. *expr.Function satisfies it.
type Mapper interface {
	Map(xs []float64) []float64
}

// MapperFunc adapts a plain Go function to Mapper.
type MapperFunc func(float64) float64

// Map implements Mapper.
func (f MapperFunc) Map(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

// Option configures Sample.
type Option func(*options)

type options struct {
	points int
}

// WithPoints sets the sample count n, endpoints included.
// Panics when n < 2: a single point cannot span a domain.
func WithPoints(n int) Option {
	if n < 2 {
		panic(panicPointsInvalid)
	}

	return func(o *options) { o.points = n }
}

// SampleSet is one plotting pass: X strictly increasing and evenly spaced,
// Y[i] = f(X[i]) with NaN/±Inf where f is undefined.
type SampleSet struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (s SampleSet) Len() int { return len(s.X) }

// Undefined returns how many y values are NaN or ±Inf.
func (s SampleSet) Undefined() int {
	n := 0
	for _, y := range s.Y {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			n++
		}
	}

	return n
}

// YRange returns the smallest and largest finite y, which is the vertical
// extent a renderer needs for its axes. ok is false when no y is finite.
func (s SampleSet) YRange() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range s.Y {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}

	return lo, hi, true
}

// Sample evaluates f at n evenly spaced points of [xMin, xMax], both
// endpoints included (n = 400 unless WithPoints says otherwise).
//
// Errors:
//   - ErrInvalidRange: xMin ≥ xMax, or either bound is NaN/±Inf.
//   - ErrShapeMismatch: f.Map returned a slice of a different length.
//
// Complexity: O(n) evaluations, O(n) memory.
func Sample(f Mapper, xMin, xMax float64, opts ...Option) (SampleSet, error) {
	o := options{points: DefaultPoints}
	for _, set := range opts {
		set(&o)
	}

	if math.IsNaN(xMin) || math.IsNaN(xMax) || math.IsInf(xMin, 0) || math.IsInf(xMax, 0) || !(xMin < xMax) {
		return SampleSet{}, fmt.Errorf("Sample: [%g, %g]: %w", xMin, xMax, ErrInvalidRange)
	}

	xs := Linspace(xMin, xMax, o.points)
	ys := f.Map(xs)
	if len(ys) != len(xs) {
		return SampleSet{}, fmt.Errorf("Sample: got %d values for %d points: %w", len(ys), len(xs), ErrShapeMismatch)
	}

	return SampleSet{X: xs, Y: ys}, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive:
// x[i] = start + i·step with step = (stop−start)/(n−1), and the last value
// pinned to stop so rounding never moves the endpoint.
// n ≤ 0 yields an empty slice and n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	xs := make([]float64, n)
	xs[0] = start
	if n == 1 {
		return xs
	}
	span := stop - start
	if math.IsInf(span, 0) {
		// Finite bounds further apart than MaxFloat64: work on half scale.
		hs := stop/2/float64(n-1) - start/2/float64(n-1)
		for i := 1; i < n-1; i++ {
			xs[i] = 2 * (start/2 + float64(i)*hs)
		}
	} else {
		step := span / float64(n-1)
		for i := 1; i < n-1; i++ {
			xs[i] = start + float64(i)*step
		}
	}
	xs[n-1] = stop

	return xs
}
