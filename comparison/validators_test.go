// SPDX-License-Identifier: MIT

package comparison_test

import (
	"testing"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSizeAndVecLen(t *testing.T) {
	m, _ := comparison.NewNeutral(3)
	assert.NoError(t, comparison.ValidateSize(m, 3))
	assert.ErrorIs(t, comparison.ValidateSize(m, 2), comparison.ErrDimensionMismatch)
	assert.ErrorIs(t, comparison.ValidateSize(nil, 2), comparison.ErrNilMatrix)
	assert.ErrorIs(t, comparison.ValidateNotNil(&comparison.Matrix{}), comparison.ErrEmpty)

	assert.NoError(t, comparison.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, comparison.ValidateVecLen([]float64{1}, 2), comparison.ErrDimensionMismatch)
}

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, comparison.ValidateSquare[int](nil), comparison.ErrEmpty)
	assert.ErrorIs(t, comparison.ValidateSquare([][]int{{1, 2}}), comparison.ErrNonSquare)
	assert.NoError(t, comparison.ValidateSquare([][]string{{"a"}}))
}

func TestValidateReciprocal_Detects(t *testing.T) {
	badLower, err := comparison.FromRows([][]fuzzy.Number{
		{fuzzy.One, fuzzy.New(2, 3, 4)},
		{fuzzy.New(2, 3, 4), fuzzy.One},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, comparison.ValidateReciprocal(badLower, tol), comparison.ErrNotReciprocal)

	badDiag, err := comparison.FromRows([][]fuzzy.Number{{fuzzy.Crisp(2)}})
	require.NoError(t, err)
	assert.ErrorIs(t, comparison.ValidateReciprocal(badDiag, tol), comparison.ErrNotReciprocal)

	assert.ErrorIs(t, comparison.ValidateReciprocal(nil, tol), comparison.ErrNilMatrix)
}
