// SPDX-License-Identifier: MIT

package comparison_test

import (
	"testing"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abc = []string{"cost", "quality", "speed"}

func cell(t *testing.T, m *comparison.Matrix, i, j int) fuzzy.Number {
	t.Helper()
	c, err := m.At(i, j)
	require.NoError(t, err)

	return c
}

func TestBuild_ReciprocalStructure(t *testing.T) {
	m, err := comparison.Build(abc, []comparison.Judgment{
		comparison.ByScale("cost", "quality", 3),
		comparison.ByText("cost", "speed", "1/5"),
		comparison.ByLevel("quality", "speed", 7, 0.25),
	})
	require.NoError(t, err)
	require.NoError(t, comparison.ValidateReciprocal(m, tol))

	assert.Equal(t, fuzzy.New(2, 3, 4), cell(t, m, 0, 1))
	assert.Equal(t, fuzzy.New(2, 3, 4).Reciprocal(), cell(t, m, 1, 0))
	assert.True(t, cell(t, m, 0, 2).Equal(fuzzy.New(4, 5, 6).Reciprocal(), tol))

	lvl, _ := fuzzy.FromLevel(7, 0.25)
	assert.Equal(t, lvl, cell(t, m, 1, 2))
}

func TestBuild_ReversedPairIsReciprocated(t *testing.T) {
	m, err := comparison.Build(abc, []comparison.Judgment{
		comparison.ByScale("speed", "cost", 5),
	})
	require.NoError(t, err)

	assert.True(t, cell(t, m, 0, 2).Equal(fuzzy.New(4, 5, 6).Reciprocal(), tol))
	assert.True(t, cell(t, m, 2, 0).Equal(fuzzy.New(4, 5, 6), tol))
}

func TestBuild_MissingPairs(t *testing.T) {
	m, err := comparison.Build(abc, []comparison.Judgment{comparison.ByScale("cost", "quality", 3)})
	require.NoError(t, err)
	assert.Equal(t, fuzzy.One, cell(t, m, 1, 2))
	assert.Equal(t, fuzzy.One, cell(t, m, 2, 1))

	_, err = comparison.Build(abc, []comparison.Judgment{comparison.ByScale("cost", "quality", 3)},
		comparison.WithRequireComplete())
	assert.ErrorIs(t, err, comparison.ErrMissingJudgment)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name      string
		names     []string
		judgments []comparison.Judgment
		want      error
	}{
		{"empty", nil, nil, comparison.ErrEmpty},
		{"duplicate name", []string{"a", "a"}, nil, comparison.ErrDuplicateName},
		{"unknown item", abc, []comparison.Judgment{comparison.ByScale("cost", "price", 3)}, comparison.ErrInvalidReference},
		{"self", abc, []comparison.Judgment{comparison.ByScale("cost", "cost", 3)}, comparison.ErrInvalidReference},
		{"nil value", abc, []comparison.Judgment{{A: "cost", B: "speed"}}, comparison.ErrInvalidReference},
		{"duplicate pair", abc, []comparison.Judgment{
			comparison.ByScale("cost", "speed", 3),
			comparison.ByScale("speed", "cost", 3),
		}, comparison.ErrDuplicateJudgment},
		{"scale", abc, []comparison.Judgment{comparison.ByScale("cost", "speed", 10)}, fuzzy.ErrScaleOutOfRange},
		{"level", abc, []comparison.Judgment{comparison.ByLevel("cost", "speed", 4, 0)}, fuzzy.ErrLevelOutOfRange},
		{"delta", abc, []comparison.Judgment{comparison.ByLevel("cost", "speed", 5, 0.9)}, fuzzy.ErrDeltaOutOfRange},
		{"unordered", abc, []comparison.Judgment{comparison.ByTriple("cost", "speed", fuzzy.New(3, 2, 1))}, fuzzy.ErrUnordered},
		{"non-positive", abc, []comparison.Judgment{comparison.ByTriple("cost", "speed", fuzzy.New(0, 1, 2))}, fuzzy.ErrNonPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := comparison.Build(tc.names, tc.judgments)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_TrustedLiterals(t *testing.T) {
	odd := fuzzy.New(3, 2, 1)
	m, err := comparison.Build(abc, []comparison.Judgment{comparison.ByTriple("cost", "speed", odd)},
		comparison.WithTrustedLiterals())
	require.NoError(t, err)
	assert.Equal(t, odd, cell(t, m, 0, 2))
	assert.Equal(t, odd.Reciprocal(), cell(t, m, 2, 0))
}

func TestBuild_SingleItem(t *testing.T) {
	m, err := comparison.Build([]string{"only"}, nil, comparison.WithRequireComplete())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, fuzzy.One, cell(t, m, 0, 0))
}

func TestFromCells(t *testing.T) {
	cells := [][]string{
		{"", "3", "(1.5,2,2.5)"},
		{"ignored", "x", ""},
		{"ignored", "ignored", ""},
	}
	m, err := comparison.FromCells(abc, cells)
	require.NoError(t, err)
	require.NoError(t, comparison.ValidateReciprocal(m, tol))

	assert.Equal(t, fuzzy.New(2, 3, 4), cell(t, m, 0, 1))
	assert.Equal(t, fuzzy.New(1.5, 2, 2.5), cell(t, m, 0, 2))
	assert.Equal(t, fuzzy.One, cell(t, m, 1, 2))

	_, err = comparison.FromCells(abc, cells, comparison.WithRequireComplete())
	assert.ErrorIs(t, err, comparison.ErrMissingJudgment)
}

func TestFromCells_Errors(t *testing.T) {
	_, err := comparison.FromCells(abc, [][]string{{"", "", ""}})
	assert.ErrorIs(t, err, comparison.ErrDimensionMismatch)

	_, err = comparison.FromCells(abc, [][]string{{"", ""}, {"", ""}, {"", ""}})
	assert.ErrorIs(t, err, comparison.ErrDimensionMismatch)

	_, err = comparison.FromCells([]string{"a", "b"}, [][]string{{"", "(3,2,1)"}, {"", ""}})
	assert.ErrorIs(t, err, fuzzy.ErrUnordered)

	_, err = comparison.FromCells(nil, nil)
	assert.ErrorIs(t, err, comparison.ErrEmpty)
}

func TestWithReciprocalCheck_PanicsOnBadTolerance(t *testing.T) {
	assert.Panics(t, func() { comparison.WithReciprocalCheck(-1) })
	assert.NotPanics(t, func() { comparison.WithReciprocalCheck(0) })

	_, err := comparison.Build(abc, nil, comparison.WithReciprocalCheck(comparison.DefaultTolerance))
	assert.NoError(t, err)
}
