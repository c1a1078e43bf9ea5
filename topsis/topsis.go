// SPDX-License-Identifier: MIT

// Package topsis - closeness computation.
//
// Determinism:
//   - Fixed row→column traversal; identical inputs give identical output.

package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opEvaluate  = "Evaluate"
	opCloseness = "Closeness"
)

// Closeness returns the closeness coefficient of every alternative (row) of d.
//
// Errors:
//   - ErrEmpty for a nil or zero-sized d.
//   - ErrDimensionMismatch when len(weights) or a non-nil len(polarity)
//     differs from the column count.
func Closeness(d mat.Matrix, weights []float64, polarity []Polarity) ([]float64, error) {
	res, err := Evaluate(d, weights, polarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCloseness, err)
	}

	return res.Closeness, nil
}

// Evaluate runs TOPSIS and returns every intermediate.
// Implementation:
//   - Stage 1: validate shapes; nil polarity means all Benefit.
//   - Stage 2: per-column L2 norm (0 → 1); V[j][k] = d[j][k] / norm_k * w_k.
//   - Stage 3: ideal and anti-ideal per column by polarity.
//   - Stage 4: Euclidean distances and closeness d⁻/(d⁺+d⁻), 0 when both are 0.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch as for Closeness.
//
// Complexity:
//   - Time O(m·n), Space O(m·n).
func Evaluate(d mat.Matrix, weights []float64, polarity []Polarity) (*Result, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, ErrEmpty)
	}
	m, n := d.Dims()
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("%s: %w", opEvaluate, ErrEmpty)
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%s: %d weights for %d criteria: %w", opEvaluate, len(weights), n, ErrDimensionMismatch)
	}
	if polarity != nil && len(polarity) != n {
		return nil, fmt.Errorf("%s: %d polarities for %d criteria: %w", opEvaluate, len(polarity), n, ErrDimensionMismatch)
	}

	res := &Result{
		Norms:     make([]float64, n),
		Weighted:  mat.NewDense(m, n, nil),
		Ideal:     make([]float64, n),
		AntiIdeal: make([]float64, n),
		DPlus:     make([]float64, m),
		DMinus:    make([]float64, m),
		Closeness: make([]float64, m),
	}

	col := make([]float64, m)
	for k := 0; k < n; k++ {
		mat.Col(col, k, d)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			norm = 1
		}
		res.Norms[k] = norm

		floats.Scale(weights[k]/norm, col)
		res.Weighted.SetCol(k, col)

		hi, lo := floats.Max(col), floats.Min(col)
		if polarity != nil && polarity[k] == Cost {
			hi, lo = lo, hi
		}
		res.Ideal[k], res.AntiIdeal[k] = hi, lo
	}

	for j := 0; j < m; j++ {
		row := res.Weighted.RawRowView(j)
		dp := floats.Distance(row, res.Ideal, 2)
		dm := floats.Distance(row, res.AntiIdeal, 2)
		res.DPlus[j], res.DMinus[j] = dp, dm
		if den := dp + dm; den > 0 {
			res.Closeness[j] = dm / den
		}
	}

	return res, nil
}
