// SPDX-License-Identifier: MIT
// Package fuzzy: sentinel error set.
// Every message is prefixed with "fuzzy: ..." for grep-ability. Callers match
// with errors.Is; call sites wrap with fmt.Errorf("ctx: %w", ErrX) when they
// need to attach coordinates or values.

package fuzzy

import "errors"

var (
	// ErrScaleOutOfRange is returned when a Saaty scale value is outside 1..9.
	ErrScaleOutOfRange = errors.New("fuzzy: saaty scale must be in 1..9")

	// ErrLevelOutOfRange is returned when a level is not one of 1,3,5,7,9.
	ErrLevelOutOfRange = errors.New("fuzzy: level must be one of 1,3,5,7,9")

	// ErrDeltaOutOfRange is returned when a confidence spread is outside [0, 0.75].
	ErrDeltaOutOfRange = errors.New("fuzzy: delta must be in [0, 0.75]")

	// ErrUnordered signals a triple violating l <= m <= u.
	ErrUnordered = errors.New("fuzzy: triple violates l <= m <= u")

	// ErrNonPositive signals a zero, negative or non-finite component where a
	// strictly positive ratio is required (reciprocal/division operands).
	ErrNonPositive = errors.New("fuzzy: components must be finite and > 0")
)
