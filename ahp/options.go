// SPDX-License-Identifier: MIT

// Package ahp - functional options for Evaluate.
//
// Contract:
//   - Option constructors panic on meaningless inputs (programmer error).
//   - Evaluate never panics.

package ahp

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/fahp/consistency"
	"github.com/katalvlaran/fahp/weights"
)

const (
	panicNilStrategy     = "ahp: WithStrategy: strategy must be non-nil"
	panicBadThreshold    = "ahp: WithThreshold: threshold must be in (0, 1]"
	defaultParallelLimit = 0 // 0 = one goroutine per criterion
)

// Option customizes Evaluate.
type Option func(*options)

type options struct {
	strategy  weights.Strategy
	parallel  bool
	limit     int
	threshold float64
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		strategy:  weights.GeometricMean{},
		limit:     defaultParallelLimit,
		threshold: consistency.DefaultThreshold,
		logger:    discardLogger(),
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithStrategy selects the weight synthesis strategy for every matrix.
// Panics when s is nil.
func WithStrategy(s weights.Strategy) Option {
	if s == nil {
		panic(panicNilStrategy)
	}

	return func(o *options) { o.strategy = s }
}

// WithParallel synthesizes the per-criterion alternative matrices
// concurrently. limit caps the number of goroutines; limit <= 0 means no cap.
// Results are identical to the sequential path.
func WithParallel(limit int) Option {
	return func(o *options) {
		o.parallel = true
		o.limit = limit
	}
}

// WithThreshold sets the CR acceptance threshold.
// Panics when th is outside (0, 1].
func WithThreshold(th float64) Option {
	if math.IsNaN(th) || th <= 0 || th > 1 {
		panic(panicBadThreshold)
	}

	return func(o *options) { o.threshold = th }
}

// WithLogger routes debug and warning records to l. A nil l keeps the
// discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
