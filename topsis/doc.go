// SPDX-License-Identifier: MIT

// Package topsis ranks alternatives by their relative closeness to an ideal
// solution (Technique for Order of Preference by Similarity to Ideal
// Solution).
//
// Input is a crisp m×n decision matrix (m alternatives, n criteria), a
// weight per criterion and an optional Benefit/Cost polarity per criterion
// (nil means every criterion is Benefit). Columns are L2-normalised, scaled
// by their weight, and each alternative's Euclidean distance to the ideal and
// anti-ideal points gives closeness c = d⁻ / (d⁺ + d⁻) in [0, 1].
//
// Degenerate inputs never fail: a zero column norm is replaced by 1, and an
// alternative at zero distance from both points scores 0.
//
// Usage:
//
//	scores, err := topsis.Closeness(decision, weights, []topsis.Polarity{topsis.Benefit, topsis.Cost})
//	order := topsis.Rank(scores) // best first
package topsis
