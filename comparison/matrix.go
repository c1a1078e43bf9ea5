// SPDX-License-Identifier: MIT

// Package comparison - fuzzy row-major storage & safe accessors.
//
// Purpose:
//   - Hold an n×n grid of fuzzy.Number in one flat buffer (offset i*n + j).
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking; there is no public Set, so a built Matrix is immutable.
//   - Provide crisp views (Defuzzify) as gonum matrices for the numeric
//     stages downstream.
//
// Complexity quicksheet:
//   - NewNeutral/FromRows: O(n²); At: O(1); Rows/Defuzzify/Clone: O(n²).

package comparison

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fahp/fuzzy"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxRow      = "Row"
	ctxFromRows = "FromRows"
	ctxNeutral  = "NewNeutral"
)

// matrixErrorf wraps an error with a uniform Matrix context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an immutable n×n comparison matrix of triangular fuzzy numbers.
//   - n is the item count (rows == cols == n, n >= 1).
//   - data holds n*n cells in row-major order.
type Matrix struct {
	n    int
	data []fuzzy.Number
}

var _ fmt.Stringer = (*Matrix)(nil)

// newMatrix allocates an n×n matrix with every cell set to fuzzy.One.
// Callers validate n.
func newMatrix(n int) *Matrix {
	data := make([]fuzzy.Number, n*n)
	for i := range data {
		data[i] = fuzzy.One
	}

	return &Matrix{n: n, data: data}
}

// NewNeutral returns an n×n matrix whose every cell is the identity judgment.
// This is the state of a comparison before any judgment is entered.
//
// Errors:
//   - ErrEmpty when n < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewNeutral(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNeutral, n, ErrEmpty)
	}

	return newMatrix(n), nil
}

// FromRows copies a complete fuzzy grid into a Matrix.
// MAIN DESCRIPTION:
//   - Entry point for collaborators that already hold a full grid
//     (diagonal and lower triangle included).
//
// Implementation:
//   - Stage 1: validate n >= 1 and every row has length n.
//   - Stage 2: copy cells row by row into the flat buffer.
//
// Behavior highlights:
//   - The reciprocal invariant is NOT re-checked here; use
//     ValidateReciprocal when the source is untrusted.
//
// Errors:
//   - ErrEmpty for zero rows.
//   - ErrNonSquare when a row length differs from the row count.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]fuzzy.Number) (*Matrix, error) {
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	n := len(rows)
	m := &Matrix{n: n, data: make([]fuzzy.Number, n*n)}
	for i, row := range rows {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns the item count n.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// indexOf bounds-checks (row, col) and returns the flat offset.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the cell at (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, n).
//
// Complexity: O(1).
func (m *Matrix) At(row, col int) (fuzzy.Number, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fuzzy.Number{}, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, n).
func (m *Matrix) Row(i int) ([]fuzzy.Number, error) {
	if i < 0 || i >= m.n {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]fuzzy.Number, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Rows returns a deep copy of the grid as n rows of n cells.
// Complexity: O(n²).
func (m *Matrix) Rows() [][]fuzzy.Number {
	out := make([][]fuzzy.Number, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]fuzzy.Number, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Defuzzify returns the crisp n×n matrix of cell centroids.
// Complexity: O(n²).
func (m *Matrix) Defuzzify() *mat.Dense {
	crisp := make([]float64, len(m.data))
	for i, c := range m.data {
		crisp[i] = c.Defuzzify()
	}

	return mat.NewDense(m.n, m.n, crisp)
}

// Clone returns an independent copy.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	cp := make([]fuzzy.Number, len(m.data))
	copy(cp, m.data)

	return &Matrix{n: m.n, data: cp}
}

// Equal reports whether m and o have the same size and every pair of cells
// is within tol componentwise.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m == nil || o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i], tol) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, cells as "(l, m, u)".
// Intended for diagnostics, not hot paths.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
