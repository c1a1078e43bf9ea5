// SPDX-License-Identifier: MIT

// Package fuzzy implements triangular fuzzy numbers (TFN) and the two
// judgment scales used to turn pairwise comparisons into fuzzy values.
//
// What & Why:
//
//	A TFN (l, m, u) is a possibility distribution with a lower bound,
//	a most-likely value and an upper bound. Fuzzy AHP expresses every
//	pairwise judgment as a TFN so that the vagueness of "A is somewhat
//	more important than B" survives until the final defuzzification.
//
// Scales:
//
//   - Saaty 1–9 integer scale: ToTriangular(s) spreads ±1 around s,
//     saturated at the extremes (1 → (1,1,1), 9 → (9,9,9)).
//   - Level scale: discrete levels {1,3,5,7,9} map to ratios through
//     2^((level-5)/2); level 5 is neutral. FromLevel applies a
//     multiplicative confidence spread δ ∈ [0, 0.75].
//
// Number is a plain value type. Every operation returns a new Number;
// nothing is mutated in place, so values can be shared freely across
// goroutines.
//
// Complexity: every operation is O(1).
package fuzzy
