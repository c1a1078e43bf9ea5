// SPDX-License-Identifier: MIT

// Package fuzzy - triangular fuzzy number value type and its algebra.
//
// Purpose:
//   - Provide the closed set of operations fuzzy AHP needs: componentwise
//     addition and multiplication, scalar division, power, reciprocal and
//     centroid defuzzification.
//   - Keep every operation total: division by zero yields ±Inf exactly as
//     IEEE-754 does. Boundary validation lives in Validate, which builders
//     call before a value enters a comparison matrix.

package fuzzy

import (
	"fmt"
	"math"
)

// Number is a triangular fuzzy number (L, M, U).
// The domain invariant is L <= M <= U; it is checked by Validate, not by
// the arithmetic.
type Number struct {
	L float64 // lower bound
	M float64 // most likely value
	U float64 // upper bound
}

// One is the identity judgment (1,1,1).
var One = Number{L: 1, M: 1, U: 1}

// New returns the triple (l, m, u) as a Number.
func New(l, m, u float64) Number {
	return Number{L: l, M: m, U: u}
}

// Crisp returns the degenerate triple (v, v, v).
func Crisp(v float64) Number {
	return Number{L: v, M: v, U: v}
}

// Add returns the componentwise sum a + b.
func (a Number) Add(b Number) Number {
	return Number{L: a.L + b.L, M: a.M + b.M, U: a.U + b.U}
}

// Mul returns the componentwise product (a.L*b.L, a.M*b.M, a.U*b.U).
func (a Number) Mul(b Number) Number {
	return Number{L: a.L * b.L, M: a.M * b.M, U: a.U * b.U}
}

// Div divides every component by scalar. A zero scalar yields ±Inf/NaN.
func (a Number) Div(scalar float64) Number {
	return Number{L: a.L / scalar, M: a.M / scalar, U: a.U / scalar}
}

// Pow raises every component to exponent.
func (a Number) Pow(exponent float64) Number {
	return Number{
		L: math.Pow(a.L, exponent),
		M: math.Pow(a.M, exponent),
		U: math.Pow(a.U, exponent),
	}
}

// Reciprocal returns (1/U, 1/M, 1/L). The bounds swap so that the result
// of an ordered triple stays ordered.
func (a Number) Reciprocal() Number {
	return Number{L: 1 / a.U, M: 1 / a.M, U: 1 / a.L}
}

// Defuzzify collapses the triple to its centroid (L+M+U)/3.
func (a Number) Defuzzify() float64 {
	return (a.L + a.M + a.U) / 3
}

// Equal reports whether every component of a and b differs by at most tol.
func (a Number) Equal(b Number, tol float64) bool {
	return math.Abs(a.L-b.L) <= tol &&
		math.Abs(a.M-b.M) <= tol &&
		math.Abs(a.U-b.U) <= tol
}

// IsOne reports whether a is within tol of the identity judgment.
func (a Number) IsOne(tol float64) bool {
	return a.Equal(One, tol)
}

// Validate checks the ordering invariant and that every component is a
// finite positive ratio.
//
// Errors:
//   - ErrNonPositive when any component is <= 0, NaN or ±Inf.
//   - ErrUnordered when L > M or M > U.
func (a Number) Validate() error {
	for _, v := range [3]float64{a.L, a.M, a.U} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%v: %w", a, ErrNonPositive)
		}
	}
	if a.L > a.M || a.M > a.U {
		return fmt.Errorf("%v: %w", a, ErrUnordered)
	}

	return nil
}

// String implements fmt.Stringer as "(l, m, u)" with %g components.
func (a Number) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.L, a.M, a.U)
}

// Sum adds all numbers componentwise; the sum of no numbers is (0,0,0).
func Sum(xs ...Number) Number {
	var s Number
	for _, x := range xs {
		s = s.Add(x)
	}

	return s
}

// Product multiplies all numbers componentwise; the product of no numbers is One.
func Product(xs ...Number) Number {
	p := One
	for _, x := range xs {
		p = p.Mul(x)
	}

	return p
}
