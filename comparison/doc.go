// SPDX-License-Identifier: MIT

// Package comparison builds fuzzy pairwise-comparison matrices.
//
// A comparison matrix is n×n, square, with One on the diagonal. Only the
// strict upper triangle is specified by the user; every lower cell is the
// reciprocal (1/u, 1/m, 1/l) of its transpose. Build and FromCells enforce
// this at construction; a Matrix is never mutated afterwards.
//
// Entry points:
//
//   - Build(names, judgments, opts...)  named items + judgments on pairs
//   - FromCells(names, cells, opts...)   n×n grid of cell text (upper triangle read)
//   - FromRows(rows)                     an already complete fuzzy grid
//   - NewNeutral(n)                      every cell One
//
// Judgments come in four encodings: Saaty scale (ByScale), explicit triple
// (ByTriple), cell text in any notation.ParseCell form (ByText), and
// level with confidence spread (ByLevel).
package comparison
