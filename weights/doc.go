// SPDX-License-Identifier: MIT

// Package weights derives crisp priority vectors from fuzzy comparison
// matrices.
//
// Two synthesis strategies are provided behind one Strategy interface:
//
//   - GeometricMean: row fuzzy geometric means, cross-paired division by
//     their fuzzy sum, centroid defuzzification, renormalisation.
//   - ChangExtent: Chang's extent analysis; fuzzy synthetic extents per
//     row, degree of possibility between rows, min-aggregation.
//
// The two are not numerically interchangeable on the same matrix. Neither
// is chosen implicitly: Synthesize requires a strategy, and StrategyByName
// resolves configuration strings ("geometric-mean", "chang-extent").
//
// Every returned vector has length n and sums to 1 within floating
// tolerance. The only exception is a degenerate Chang vector whose raw sum
// is zero, which is returned unnormalised.
//
// Complexity: both strategies are O(n²) time, O(n) extra space.
package weights
