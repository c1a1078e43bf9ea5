// SPDX-License-Identifier: MIT
// Package comparison: sentinel error set.
// Every message is prefixed with "comparison: ...". Algorithms return these
// sentinels wrapped with fmt.Errorf("Op: %w", ErrX) so callers match them via
// errors.Is. No function panics on user input.

package comparison

import "errors"

var (
	// ErrEmpty is returned when a matrix would have no items (n < 1).
	ErrEmpty = errors.New("comparison: at least one item is required")

	// ErrNonSquare signals a grid whose row and column counts disagree.
	ErrNonSquare = errors.New("comparison: matrix is not square")

	// ErrDimensionMismatch signals sizes that disagree with the expected
	// item count (cell grids, vectors, matrix sets).
	ErrDimensionMismatch = errors.New("comparison: dimension mismatch")

	// ErrInvalidReference signals a judgment naming an unknown item, or an
	// item compared with itself.
	ErrInvalidReference = errors.New("comparison: invalid item reference")

	// ErrDuplicateName signals the same item name declared twice.
	ErrDuplicateName = errors.New("comparison: duplicate item name")

	// ErrDuplicateJudgment signals two judgments on the same unordered pair.
	ErrDuplicateJudgment = errors.New("comparison: duplicate judgment for pair")

	// ErrMissingJudgment signals an unjudged pair under WithRequireComplete.
	ErrMissingJudgment = errors.New("comparison: missing judgment for pair")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("comparison: index out of range")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("comparison: nil matrix")

	// ErrNotReciprocal signals a lower cell that is not the reciprocal of its
	// transpose, or a diagonal cell that is not One.
	ErrNotReciprocal = errors.New("comparison: matrix is not reciprocal within tolerance")
)
