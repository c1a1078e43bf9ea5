// SPDX-License-Identifier: MIT
// Package ahp: sentinel error set.
// Shape errors reuse the comparison sentinels so errors.Is matches across
// every layer of the pipeline.

package ahp

import "github.com/katalvlaran/fahp/comparison"

var (
	// ErrDimensionMismatch is returned when the alternative matrix count
	// differs from the criteria count, or the alternative matrices differ
	// in size. Same value as comparison.ErrDimensionMismatch.
	ErrDimensionMismatch = comparison.ErrDimensionMismatch

	// ErrNilMatrix is returned for a nil criteria or alternative matrix.
	ErrNilMatrix = comparison.ErrNilMatrix
)
