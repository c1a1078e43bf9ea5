// SPDX-License-Identifier: MIT
// Package topsis: sentinel error set.

package topsis

import (
	"errors"

	"github.com/katalvlaran/fahp/comparison"
)

var (
	// ErrEmpty is returned for a nil decision matrix or one without rows or
	// columns.
	ErrEmpty = errors.New("topsis: decision matrix is empty")

	// ErrDimensionMismatch is returned when the weight or polarity length
	// differs from the criteria count. It is the same value as
	// comparison.ErrDimensionMismatch.
	ErrDimensionMismatch = comparison.ErrDimensionMismatch

	// ErrUnknownPolarity is returned when a polarity name is not recognised.
	ErrUnknownPolarity = errors.New("topsis: unknown criterion polarity")
)
