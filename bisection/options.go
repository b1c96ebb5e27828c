// SPDX-License-Identifier: MIT
// Package: bisection
//
// options.go — convergence configuration and documented defaults.

package bisection

import (
	"fmt"
	"math"
)

// Defaults for a search request.
const (
	// DefaultTolerance is the half-width at which the search reports convergence.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of halvings.
	DefaultMaxIterations = 100

	// DefaultLower and DefaultUpper form the interval offered to users first.
	DefaultLower = 0.0
	DefaultUpper = 2.0
)

// Options configures FindRoot. Supplied per request and read-only during
// the search; a nil *Options means DefaultOptions().
//
// Fields:
//   - Tolerance: stop when (hi−lo)/2 ≤ Tolerance. Must be finite, > 0.
//   - MaxIterations: stop after this many halvings. Must be ≥ 1.
//   - Trace: record a Step per midpoint evaluation in Result.Steps.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Trace         bool
}

// DefaultOptions returns tolerance 1e-6, 100 iterations, no trace.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// resolve returns the effective options, validated.
func resolve(method string, opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return o, fmt.Errorf("%s: tolerance %g: %w", method, o.Tolerance, ErrBadTolerance)
	}
	if o.MaxIterations < 1 {
		return o, fmt.Errorf("%s: max iterations %d: %w", method, o.MaxIterations, ErrBadMaxIterations)
	}

	return o, nil
}
