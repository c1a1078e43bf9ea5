// SPDX-License-Identifier: MIT

// Package ahp aggregates a fuzzy AHP decision: one criteria comparison
// matrix plus one alternative comparison matrix per criterion.
//
// Evaluate synthesizes criteria weights, per-criterion alternative weights
// and consistency ratios, and assembles:
//
//   - the decision matrix D (m alternatives × n criteria), D[j][k] being
//     alternative j's weight under criterion k;
//   - the aggregated alternative CR, Σ_k w_k·CR_k;
//   - weighted-sum scores Σ_k w_k·D[j][k], renormalised to 1.
//
// Result.TOPSIS ranks the same decision matrix with the criteria weights.
//
// Options:
//
//   - WithStrategy  weight synthesis strategy (default weights.GeometricMean)
//   - WithParallel  synthesize alternative matrices concurrently
//   - WithThreshold CR acceptance threshold (default consistency.DefaultThreshold)
//   - WithLogger    structured logger (default discards)
//
// Evaluate never retains its inputs; a Result shares no memory with them.
package ahp
