// SPDX-License-Identifier: MIT

package consistency_test

import (
	"testing"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/consistency"
	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

var abc = []string{"a", "b", "c"}

// TestRatio_NeutralIsZero checks that identity judgments are perfectly
// consistent for every size.
func TestRatio_NeutralIsZero(t *testing.T) {
	for n := 1; n <= 16; n++ {
		m, err := comparison.NewNeutral(n)
		require.NoError(t, err)
		cr, err := consistency.Ratio(m)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, cr, tol, "n=%d", n)
	}
}

func TestRatio_BelowThreeItems(t *testing.T) {
	m, err := comparison.Build([]string{"a", "b"}, []comparison.Judgment{comparison.ByScale("a", "b", 9)})
	require.NoError(t, err)

	rep, err := consistency.Evaluate(m, consistency.DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.CR)
	assert.Equal(t, 0.0, rep.RI)
	assert.True(t, rep.Acceptable)
}

// TestRatio_CrispConsistent uses a transitive crisp matrix (a=2b, b=3c,
// a=6c) whose CR must vanish.
func TestRatio_CrispConsistent(t *testing.T) {
	m, err := comparison.Build(abc, []comparison.Judgment{
		comparison.ByTriple("a", "b", fuzzy.Crisp(2)),
		comparison.ByTriple("b", "c", fuzzy.Crisp(3)),
		comparison.ByTriple("a", "c", fuzzy.Crisp(6)),
	})
	require.NoError(t, err)

	rep, err := consistency.Evaluate(m, consistency.DefaultThreshold)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, rep.LambdaMax, 1e-9)
	assert.InDelta(t, 0.0, rep.CR, 1e-9)
	assert.True(t, rep.Acceptable)
}

// TestRatio_Cycle checks that a preference cycle is flagged.
func TestRatio_Cycle(t *testing.T) {
	m, err := comparison.Build(abc, []comparison.Judgment{
		comparison.ByScale("a", "b", 9),
		comparison.ByScale("b", "c", 9),
		comparison.ByScale("c", "a", 9),
	})
	require.NoError(t, err)

	rep, err := consistency.Evaluate(m, consistency.DefaultThreshold)
	require.NoError(t, err)
	assert.Greater(t, rep.CR, consistency.DefaultThreshold)
	assert.False(t, rep.Acceptable)
	assert.InDelta(t, rep.CI/0.58, rep.CR, tol)
	assert.InDelta(t, (rep.LambdaMax-3)/2, rep.CI, tol)

	cr, err := consistency.Ratio(m)
	require.NoError(t, err)
	assert.Equal(t, rep.CR, cr)
}

func TestRandomIndex(t *testing.T) {
	assert.Equal(t, 0.0, consistency.RandomIndex(0))
	assert.Equal(t, 0.0, consistency.RandomIndex(2))
	assert.Equal(t, 0.58, consistency.RandomIndex(3))
	assert.Equal(t, 1.48, consistency.RandomIndex(12))
	assert.Equal(t, 1.59, consistency.RandomIndex(15))
	assert.Equal(t, 1.59, consistency.RandomIndex(40))
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := consistency.Ratio(nil)
	assert.ErrorIs(t, err, comparison.ErrNilMatrix)
	_, err = consistency.Evaluate(&comparison.Matrix{}, consistency.DefaultThreshold)
	assert.ErrorIs(t, err, comparison.ErrEmpty)

	m, _ := comparison.NewNeutral(3)
	for _, th := range []float64{0, -0.1, 1.5} {
		_, err = consistency.Evaluate(m, th)
		assert.ErrorIs(t, err, consistency.ErrInvalidThreshold, "threshold %g", th)
	}
}
