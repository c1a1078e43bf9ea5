// SPDX-License-Identifier: MIT

package topsis_test

import (
	"testing"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/topsis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

const tol = 1e-12

func twoByThree() *mat.Dense {
	return mat.NewDense(2, 3, []float64{
		0.7, 0.3, 0.5,
		0.3, 0.7, 0.5,
	})
}

var w3 = []float64{0.5, 0.3, 0.2}

// TestCloseness_SymmetryBreaking checks that the alternative favoured by
// the heavier criterion wins and scores stay in [0, 1].
func TestCloseness_SymmetryBreaking(t *testing.T) {
	c, err := topsis.Closeness(twoByThree(), w3, nil)
	require.NoError(t, err)
	require.Len(t, c, 2)

	for _, v := range c {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Greater(t, c[0], c[1])
	assert.InDelta(t, 0.625, c[0], tol)
	assert.InDelta(t, 0.375, c[1], tol)
}

func TestCloseness_CostFlipsIdeal(t *testing.T) {
	res, err := topsis.Evaluate(twoByThree(), w3, []topsis.Polarity{topsis.Cost, topsis.Benefit, topsis.Benefit})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.Closeness[0], tol)
	assert.InDelta(t, 1.0, res.Closeness[1], tol)
	assert.Less(t, res.Ideal[0], res.AntiIdeal[0])
	assert.Equal(t, []int{1, 0}, res.Ranking())
}

func TestEvaluate_Intermediates(t *testing.T) {
	res, err := topsis.Evaluate(twoByThree(), w3, nil)
	require.NoError(t, err)

	// Constant third column: both alternatives coincide there.
	assert.InDelta(t, res.Ideal[2], res.AntiIdeal[2], tol)
	assert.InDelta(t, 0.2*0.5/res.Norms[2], res.Weighted.At(0, 2), tol)
	for j := range res.Closeness {
		assert.InDelta(t, res.DMinus[j]/(res.DPlus[j]+res.DMinus[j]), res.Closeness[j], tol)
	}
}

// TestEvaluate_Degenerate covers zero columns and identical alternatives.
func TestEvaluate_Degenerate(t *testing.T) {
	zero := mat.NewDense(2, 2, nil)
	res, err := topsis.Evaluate(zero, []float64{0.5, 0.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, res.Norms)
	assert.Equal(t, []float64{0, 0}, res.Closeness)

	same := mat.NewDense(3, 2, []float64{1, 2, 1, 2, 1, 2})
	c, err := topsis.Closeness(same, []float64{0.5, 0.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, c)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := topsis.Closeness(nil, w3, nil)
	assert.ErrorIs(t, err, topsis.ErrEmpty)

	_, err = topsis.Closeness(twoByThree(), []float64{1, 0}, nil)
	assert.ErrorIs(t, err, topsis.ErrDimensionMismatch)
	assert.ErrorIs(t, err, comparison.ErrDimensionMismatch)

	_, err = topsis.Closeness(twoByThree(), w3, []topsis.Polarity{topsis.Cost})
	assert.ErrorIs(t, err, topsis.ErrDimensionMismatch)
}

func TestRank(t *testing.T) {
	assert.Equal(t, []int{2, 0, 3, 1}, topsis.Rank([]float64{0.5, 0.1, 0.9, 0.5}))
	assert.Empty(t, topsis.Rank(nil))
}

func TestPolarity_Text(t *testing.T) {
	for in, want := range map[string]topsis.Polarity{
		"benefit": topsis.Benefit, "": topsis.Benefit, "COST": topsis.Cost, " min ": topsis.Cost,
	} {
		got, err := topsis.ParsePolarity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := topsis.ParsePolarity("neutral")
	assert.ErrorIs(t, err, topsis.ErrUnknownPolarity)

	var doc struct {
		P []topsis.Polarity `yaml:"p"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("p: [cost, benefit]"), &doc))
	assert.Equal(t, []topsis.Polarity{topsis.Cost, topsis.Benefit}, doc.P)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "p:\n    - cost\n    - benefit\n", string(out))
}
