// SPDX-License-Identifier: MIT

package consistency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fahp/comparison"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultThreshold is the conventional upper bound for an acceptable CR.
const DefaultThreshold = 0.1

// minItems is the smallest matrix for which consistency is defined.
const minItems = 3

// randomIndex holds Saaty's random consistency index for n = 1..15.
var randomIndex = [...]float64{0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49, 1.51, 1.48, 1.56, 1.57, 1.59}

// RandomIndex returns RI(n). n > 15 uses the last table entry; n < 1 is 0.
func RandomIndex(n int) float64 {
	switch {
	case n < 1:
		return 0
	case n > len(randomIndex):
		return randomIndex[len(randomIndex)-1]
	default:
		return randomIndex[n-1]
	}
}

// Report is the full outcome of a consistency check.
type Report struct {
	N          int     // item count
	LambdaMax  float64 // principal eigenvalue estimate
	CI         float64 // consistency index
	RI         float64 // random index for N
	CR         float64 // consistency ratio CI/RI
	Acceptable bool    // CR <= threshold
}

// Ratio returns the consistency ratio of m.
//
// Errors:
//   - comparison.ErrNilMatrix when m is nil.
func Ratio(m *comparison.Matrix) (float64, error) {
	r, err := Evaluate(m, DefaultThreshold)
	if err != nil {
		return 0, fmt.Errorf("Ratio: %w", err)
	}

	return r.CR, nil
}

// Evaluate computes the consistency report of m and judges it against
// threshold.
// MAIN DESCRIPTION:
//   - Geometric-mean eigenvector approximation on the centroid matrix,
//     followed by Saaty's CI and CR.
//
// Implementation:
//   - Stage 1: defuzzify m into a gonum Dense A.
//   - Stage 2: row geometric means, normalised to w.
//   - Stage 3: Aw via MulVec; λmax as the mean of (Aw)_i / w_i.
//   - Stage 4: CI, RI lookup, CR with the RI = 0 guard.
//
// Errors:
//   - comparison.ErrNilMatrix when m is nil.
//   - ErrInvalidThreshold when threshold is outside (0, 1].
//
// Complexity:
//   - Time O(n²), Space O(n²) for the crisp copy.
func Evaluate(m *comparison.Matrix, threshold float64) (Report, error) {
	if err := comparison.ValidateNotNil(m); err != nil {
		return Report{}, fmt.Errorf("Evaluate: %w", err)
	}
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return Report{}, fmt.Errorf("Evaluate(%g): %w", threshold, ErrInvalidThreshold)
	}

	n := m.Size()
	rep := Report{N: n, LambdaMax: float64(n), RI: RandomIndex(n), Acceptable: true}
	if n < minItems {
		return rep, nil
	}

	a := m.Defuzzify()
	w := make([]float64, n)
	exp := 1 / float64(n)
	for i := 0; i < n; i++ {
		w[i] = math.Pow(floats.Prod(a.RawRowView(i)), exp)
	}
	if total := floats.Sum(w); total > 0 {
		floats.Scale(1/total, w)
	}

	wv := mat.NewVecDense(n, w)
	var aw mat.VecDense
	aw.MulVec(a, wv)

	var lambda float64
	for i := 0; i < n; i++ {
		lambda += aw.AtVec(i) / w[i]
	}
	rep.LambdaMax = lambda / float64(n)
	rep.CI = (rep.LambdaMax - float64(n)) / float64(n-1)
	if rep.RI > 0 {
		rep.CR = rep.CI / rep.RI
	}
	rep.Acceptable = rep.CR <= threshold

	return rep, nil
}
