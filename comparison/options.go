// SPDX-License-Identifier: MIT

// Package comparison - functional options for Build and FromCells.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Option constructors panic on meaningless inputs (programmer error);
//     builders themselves never panic.
//   - Defaults live in one place (defaultOptions).

package comparison

import "math"

const (
	// DefaultTolerance is used by ValidateReciprocal when callers have no
	// better bound.
	DefaultTolerance = 1e-9

	// DefaultRequireComplete leaves unjudged pairs at fuzzy.One.
	DefaultRequireComplete = false

	// DefaultTrustLiterals validates every judgment before it enters the matrix.
	DefaultTrustLiterals = false
)

const panicToleranceInvalid = "comparison: WithReciprocalCheck: tol must be finite, non-negative"

// Option customizes a builder call.
type Option func(*options)

type options struct {
	requireComplete bool    // unjudged pair → ErrMissingJudgment
	trustLiterals   bool    // skip fuzzy.Number.Validate on judgments
	reciprocalTol   float64 // <0 disables the post-build reciprocity check
}

func defaultOptions() options {
	return options{
		requireComplete: DefaultRequireComplete,
		trustLiterals:   DefaultTrustLiterals,
		reciprocalTol:   -1,
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

// WithRequireComplete makes every unordered pair mandatory.
func WithRequireComplete() Option {
	return func(o *options) { o.requireComplete = true }
}

// WithTrustedLiterals skips the l <= m <= u and positivity checks on
// judgments. Use only when the caller has already validated its input.
func WithTrustedLiterals() Option {
	return func(o *options) { o.trustLiterals = true }
}

// WithReciprocalCheck re-validates the finished matrix with
// ValidateReciprocal(m, tol). Mostly useful in tests and when trusted
// literals were used.
//
// Panics when tol is negative or non-finite.
func WithReciprocalCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.reciprocalTol = tol }
}
