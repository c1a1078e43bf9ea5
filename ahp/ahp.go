// SPDX-License-Identifier: MIT

package ahp

import (
	"fmt"

	"github.com/katalvlaran/fahp/comparison"
	"github.com/katalvlaran/fahp/consistency"
	"github.com/katalvlaran/fahp/topsis"
	"github.com/katalvlaran/fahp/weights"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opEvaluate = "Evaluate"

// Result is the outcome of one aggregation.
type Result struct {
	// Strategy is the name of the synthesis strategy used.
	Strategy string

	// CriteriaWeights has one weight per criterion, summing to 1.
	CriteriaWeights []float64

	// AlternativeWeights[k] is the alternative weight vector under criterion k.
	AlternativeWeights [][]float64

	// Decision is the m×n matrix D[j][k] = AlternativeWeights[k][j].
	Decision *mat.Dense

	// CriteriaConsistency is the consistency report of the criteria matrix.
	CriteriaConsistency consistency.Report

	// AlternativeConsistency[k] is the report of alternative matrix k.
	AlternativeConsistency []consistency.Report

	// AggregatedAlternativeCR is Σ_k CriteriaWeights[k]·AlternativeConsistency[k].CR.
	AggregatedAlternativeCR float64

	// WeightedScores[j] is Σ_k CriteriaWeights[k]·D[j][k], renormalised to 1.
	WeightedScores []float64
}

// CriteriaCR is shorthand for r.CriteriaConsistency.CR.
func (r *Result) CriteriaCR() float64 { return r.CriteriaConsistency.CR }

// AlternativeCRs returns the per-criterion alternative consistency ratios.
func (r *Result) AlternativeCRs() []float64 {
	out := make([]float64, len(r.AlternativeConsistency))
	for k, rep := range r.AlternativeConsistency {
		out[k] = rep.CR
	}

	return out
}

// Acceptable reports whether every matrix passed its consistency check.
func (r *Result) Acceptable() bool {
	if !r.CriteriaConsistency.Acceptable {
		return false
	}
	for _, rep := range r.AlternativeConsistency {
		if !rep.Acceptable {
			return false
		}
	}

	return true
}

// TOPSIS ranks the alternatives of the decision matrix with the criteria
// weights. polarity may be nil (all Benefit).
func (r *Result) TOPSIS(polarity []topsis.Polarity) (*topsis.Result, error) {
	return topsis.Evaluate(r.Decision, r.CriteriaWeights, polarity)
}

// Evaluate aggregates criteria and per-criterion alternative matrices.
// MAIN DESCRIPTION:
//   - alternatives[k] compares the alternatives under criterion k; the
//     slice is index-aligned with the rows of criteria.
//
// Implementation:
//   - Stage 1: validate that len(alternatives) == n and all are m×m.
//   - Stage 2: criteria weights and consistency.
//   - Stage 3: alternative weights and consistency per criterion,
//     sequentially or through an errgroup under WithParallel.
//   - Stage 4: decision matrix, aggregated CR and weighted-sum scores.
//
// Errors:
//   - ErrNilMatrix for nil inputs.
//   - ErrDimensionMismatch for count or size disagreements.
//   - Any error from the configured strategy.
//
// Complexity:
//   - Time O(n² + n·m²), Space O(n·m).
func Evaluate(criteria *comparison.Matrix, alternatives []*comparison.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	log := o.logger.With("strategy", o.strategy.Name())

	if err := comparison.ValidateNotNil(criteria); err != nil {
		return nil, fmt.Errorf("%s: criteria: %w", opEvaluate, err)
	}
	n := criteria.Size()
	if len(alternatives) != n {
		return nil, fmt.Errorf("%s: %d alternative matrices for %d criteria: %w", opEvaluate, len(alternatives), n, ErrDimensionMismatch)
	}
	if err := comparison.ValidateNotNil(alternatives[0]); err != nil {
		return nil, fmt.Errorf("%s: alternatives[0]: %w", opEvaluate, err)
	}
	m := alternatives[0].Size()
	for k, alt := range alternatives {
		if err := comparison.ValidateSize(alt, m); err != nil {
			return nil, fmt.Errorf("%s: alternatives[%d]: %w", opEvaluate, k, err)
		}
	}

	res := &Result{
		Strategy:               o.strategy.Name(),
		AlternativeWeights:     make([][]float64, n),
		AlternativeConsistency: make([]consistency.Report, n),
	}

	cw, rep, err := synthesize(criteria, o)
	if err != nil {
		return nil, fmt.Errorf("%s: criteria: %w", opEvaluate, err)
	}
	res.CriteriaWeights, res.CriteriaConsistency = cw, rep
	log.Debug("criteria synthesized", "n", n, "cr", rep.CR)
	if !rep.Acceptable {
		log.Warn("criteria judgments are inconsistent", "cr", rep.CR, "threshold", o.threshold)
	}

	if err := synthesizeAlternatives(alternatives, res, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	res.Decision = mat.NewDense(m, n, nil)
	for k := 0; k < n; k++ {
		res.Decision.SetCol(k, res.AlternativeWeights[k])
		res.AggregatedAlternativeCR += cw[k] * res.AlternativeConsistency[k].CR
		if !res.AlternativeConsistency[k].Acceptable {
			log.Warn("alternative judgments are inconsistent", "criterion", k, "cr", res.AlternativeConsistency[k].CR, "threshold", o.threshold)
		}
	}

	scores := make([]float64, m)
	for k := 0; k < n; k++ {
		floats.AddScaled(scores, cw[k], res.AlternativeWeights[k])
	}
	if total := floats.Sum(scores); total > 0 {
		floats.Scale(1/total, scores)
	}
	res.WeightedScores = scores

	log.Debug("aggregation done", "n", n, "m", m, "aggregated_alt_cr", res.AggregatedAlternativeCR)

	return res, nil
}

// synthesize computes the weights and consistency report of one matrix.
func synthesize(mx *comparison.Matrix, o options) ([]float64, consistency.Report, error) {
	w, err := weights.Synthesize(mx, o.strategy)
	if err != nil {
		return nil, consistency.Report{}, err
	}
	rep, err := consistency.Evaluate(mx, o.threshold)
	if err != nil {
		return nil, consistency.Report{}, err
	}

	return w, rep, nil
}

// synthesizeAlternatives fills res.AlternativeWeights and
// res.AlternativeConsistency. Each goroutine writes only its own slot.
func synthesizeAlternatives(alts []*comparison.Matrix, res *Result, o options) error {
	if !o.parallel {
		for k, alt := range alts {
			w, rep, err := synthesize(alt, o)
			if err != nil {
				return fmt.Errorf("alternatives[%d]: %w", k, err)
			}
			res.AlternativeWeights[k], res.AlternativeConsistency[k] = w, rep
		}

		return nil
	}

	var g errgroup.Group
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}
	for k, alt := range alts {
		k, alt := k, alt
		g.Go(func() error {
			w, rep, err := synthesize(alt, o)
			if err != nil {
				return fmt.Errorf("alternatives[%d]: %w", k, err)
			}
			res.AlternativeWeights[k], res.AlternativeConsistency[k] = w, rep

			return nil
		})
	}

	return g.Wait()
}
