// SPDX-License-Identifier: MIT

// Package weights - fuzzy geometric-mean synthesis (Buckley).
//
// Implementation:
//   - Stage 1: gm_i = (∏_j a_ij)^(1/n) componentwise.
//   - Stage 2: S = Σ_i gm_i.
//   - Stage 3: w_i = (gm_i.L/S.U, gm_i.M/S.M, gm_i.U/S.L). The lower bound is
//     divided by the upper sum and vice versa, so w_i stays ordered.
//   - Stage 4: centroid of each w_i, renormalised to sum 1.

package weights

import (
	"fmt"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/fuzzy"
)

// GeometricMean is the primary synthesis strategy.
type GeometricMean struct{}

// Name implements Strategy.
func (GeometricMean) Name() string { return NameGeometricMean }

// Weights implements Strategy.
//
// Errors:
//   - comparison.ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (GeometricMean) Weights(m *comparison.Matrix) ([]float64, error) {
	fw, err := FuzzyGeometricWeights(m)
	if err != nil {
		return nil, fmt.Errorf("GeometricMean: %w", err)
	}

	w := make([]float64, len(fw))
	for i, f := range fw {
		w[i] = f.Defuzzify()
	}

	return normalize(w), nil
}

// FuzzyGeometricWeights returns the fuzzy weights w_i of stage 3, before
// defuzzification. Useful for reporting the spread of each priority.
//
// Errors:
//   - comparison.ErrNilMatrix when m is nil.
func FuzzyGeometricWeights(m *comparison.Matrix) ([]fuzzy.Number, error) {
	if err := comparison.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("FuzzyGeometricWeights: %w", err)
	}

	rows := m.Rows()
	n := len(rows)
	exp := 1 / float64(n)

	gms := make([]fuzzy.Number, n)
	for i, row := range rows {
		gms[i] = fuzzy.Product(row...).Pow(exp)
	}
	s := fuzzy.Sum(gms...)

	out := make([]fuzzy.Number, n)
	for i, g := range gms {
		out[i] = fuzzy.New(g.L/s.U, g.M/s.M, g.U/s.L)
	}

	return out, nil
}
