// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/fuzzy"
)

// ChangExtent is Chang's extent-analysis strategy.
type ChangExtent struct{}

// Name implements Strategy.
func (ChangExtent) Name() string { return NameChangExtent }

// Weights implements Strategy.
// MAIN DESCRIPTION:
//   - Scores each row by the least possibility that its synthetic extent
//     dominates any other row's.
//
// Implementation:
//   - Stage 1: S_i = Σ_j a_ij; T = Σ_i S_i.
//   - Stage 2: Ŝ_i = S_i ⊗ T⁻¹.
//   - Stage 3: d_i = min_{j≠i} V(Ŝ_i ≥ Ŝ_j); a single row yields d = [1].
//   - Stage 4: normalise d; an all-zero d is returned unchanged.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (ChangExtent) Weights(m *comparison.Matrix) ([]float64, error) {
	if err := comparison.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ChangExtent: %w", err)
	}

	ext := SyntheticExtents(m)
	n := len(ext)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = 1
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v := DegreeOfPossibility(ext[i], ext[j]); v < d[i] {
				d[i] = v
			}
		}
	}

	return normalize(d), nil
}

// SyntheticExtents returns the normalised fuzzy synthetic extent of every
// row of m. m must be non-nil.
func SyntheticExtents(m *comparison.Matrix) []fuzzy.Number {
	rows := m.Rows()
	sums := make([]fuzzy.Number, len(rows))
	for i, row := range rows {
		sums[i] = fuzzy.Sum(row...)
	}
	inv := fuzzy.Sum(sums...).Reciprocal()

	for i := range sums {
		sums[i] = sums[i].Mul(inv)
	}

	return sums
}

// DegreeOfPossibility returns V(a ≥ b) for triangular fuzzy numbers:
// 1 when a.M ≥ b.M, 0 when b.L ≥ a.U, otherwise the height of the
// intersection of the two membership functions.
func DegreeOfPossibility(a, b fuzzy.Number) float64 {
	switch {
	case a.M >= b.M:
		return 1
	case b.L >= a.U:
		return 0
	default:
		return (b.L - a.U) / ((a.M - a.U) - (b.M - b.L))
	}
}
