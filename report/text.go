// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Text writes an aligned plain-text report.
func Text(w io.Writer, r Report) error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("Text: %w", err)
	}
	res := r.Result
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", r.title())
	fmt.Fprintf(tw, "strategy: %s\n", res.Strategy)
	if r.Threshold > 0 {
		fmt.Fprintf(tw, "cr threshold: %s\n", r.num(r.Threshold))
	}

	fmt.Fprintf(tw, "\ncriteria (CR %s, %s)\n", r.num(res.CriteriaCR()), verdict(res.CriteriaConsistency.Acceptable))
	for k, name := range r.Criteria {
		fmt.Fprintf(tw, "  %s\t%s", name, r.num(res.CriteriaWeights[k]))
		if r.Polarity != nil {
			fmt.Fprintf(tw, "\t%s", r.Polarity[k])
		}
		if r.FuzzyWeights != nil {
			fmt.Fprintf(tw, "\t%s", r.triple(r.FuzzyWeights[k]))
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "\nalternative consistency (aggregated CR %s)\n", r.num(res.AggregatedAlternativeCR))
	for k, name := range r.Criteria {
		rep := res.AlternativeConsistency[k]
		fmt.Fprintf(tw, "  %s\tCR %s\t%s\n", name, r.num(rep.CR), verdict(rep.Acceptable))
	}

	fmt.Fprintln(tw, "\nranking")
	if r.TOPSIS != nil {
		fmt.Fprintln(tw, "  #\talternative\tweighted\tcloseness")
	} else {
		fmt.Fprintln(tw, "  #\talternative\tweighted")
	}
	for pos, j := range r.ranking() {
		fmt.Fprintf(tw, "  %d\t%s\t%s", pos+1, r.Alternatives[j], r.num(res.WeightedScores[j]))
		if r.TOPSIS != nil {
			fmt.Fprintf(tw, "\t%s", r.num(r.TOPSIS.Closeness[j]))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
