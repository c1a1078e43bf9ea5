// SPDX-License-Identifier: MIT

// Package consistency measures how coherent a set of pairwise judgments is,
// using Saaty's consistency ratio on the defuzzified matrix.
//
//	A      = centroid(m)                       crisp n×n
//	w_i    = (∏_j A_ij)^(1/n), normalised      principal eigenvector estimate
//	λmax   = (1/n) Σ_i (A·w)_i / w_i
//	CI     = (λmax − n) / (n − 1)
//	CR     = CI / RI(n), or 0 when RI(n) = 0
//
// Matrices with fewer than three items carry no consistency constraint and
// always report CR = 0. A CR at or below DefaultThreshold (0.1) is
// conventionally acceptable.
package consistency
