// SPDX-License-Identifier: MIT

// Package notation parses and formats the textual encoding of individual
// comparison-matrix cells.
//
// Accepted cell text (ParseCell):
//
//	"1".."9"        Saaty scale, mapped through fuzzy.ToTriangular
//	"a/b"           ratio of integers; >=1 rounds to a clamped scale, <1
//	                uses the reciprocal scale and then reciprocates
//	"(l,m,u)"       explicit triple; if all three are levels (1,3,5,7,9
//	                within 1e-4) they are converted through the level law,
//	                otherwise the triple is taken literally
//	anything else   neutral judgment fuzzy.One
//
// Display formatting (FormatCell) goes the other way: a value within 1e-6
// of One renders as "(5,5,5)", otherwise each bound renders as its nearest
// level.
//
// The package holds no state and never logs; presentation layers and the
// problem loader share it.
package notation
