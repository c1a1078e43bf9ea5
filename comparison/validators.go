// SPDX-License-Identifier: MIT
// Package: comparison
//
// Purpose:
//  - Single source of truth for shape and structure checks shared by the
//    weight synthesizers, the consistency evaluator and the aggregator.
//  - Return wrapped sentinels so call sites match with errors.Is.

package comparison

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and holds at
// least one item. A zero-value Matrix fails with ErrEmpty.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.n < 1 {
		return validatorErrorf("ValidateNotNil", ErrEmpty)
	}

	return nil
}

// ValidateSize ensures m is non-nil and n×n.
func ValidateSize(m *Matrix, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.n != n {
		return validatorErrorf(fmt.Sprintf("ValidateSize: got %d×%d, want %d×%d", m.n, m.n, n, n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures a raw grid is non-empty and square.
func ValidateSquare[T any](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	for i, r := range rows {
		if len(r) != len(rows) {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", i), ErrNonSquare)
		}
	}

	return nil
}

// ValidateReciprocal checks the structural invariant of a comparison
// matrix: diagonal One and a[j][i] == reciprocal(a[i][j]) within tol.
// Runs O(n²) over the upper triangle only.
func ValidateReciprocal(m *Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	n := m.n
	for i := 0; i < n; i++ {
		if !m.data[i*n+i].IsOne(tol) {
			return validatorErrorf(fmt.Sprintf("ValidateReciprocal: diagonal %d", i), ErrNotReciprocal)
		}
		for j := i + 1; j < n; j++ {
			if !m.data[j*n+i].Equal(m.data[i*n+j].Reciprocal(), tol) {
				return validatorErrorf(fmt.Sprintf("ValidateReciprocal: cell (%d,%d)", j, i), ErrNotReciprocal)
			}
		}
	}

	return nil
}
