// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown writes the report as GFM with one table per section.
func Markdown(w io.Writer, r Report) error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("Markdown: %w", err)
	}
	_, err := io.WriteString(w, r.markdown())

	return err
}

// HTML writes a standalone HTML page rendered from the Markdown report.
func HTML(w io.Writer, r Report) error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("HTML: %w", err)
	}

	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(r.markdown()), &content); err != nil {
		return fmt.Errorf("markdown convert: %w", err)
	}

	_, err := io.WriteString(w, "<!doctype html><html><head><meta charset='utf-8'><title>"+
		html.EscapeString(r.title())+"</title>"+
		"<style>body{font-family:sans-serif;max-width:960px;margin:0 auto;padding:1rem;} "+
		"table{border-collapse:collapse;} th,td{border:1px solid #999;padding:0.3rem 0.5rem;text-align:left;} "+
		"thead th{background:#eef;}</style></head><body>"+
		content.String()+"</body></html>\n")

	return err
}

func (r Report) markdown() string {
	res := r.Result
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cellEscape(r.title()))
	fmt.Fprintf(&b, "Strategy: `%s`", res.Strategy)
	if r.Threshold > 0 {
		fmt.Fprintf(&b, ", CR threshold %s", r.num(r.Threshold))
	}
	b.WriteString("\n\n## Criteria\n\n")

	header := "| Criterion | Weight |"
	rule := "|---|---:|"
	if r.Polarity != nil {
		header += " Polarity |"
		rule += "---|"
	}
	if r.FuzzyWeights != nil {
		header += " Fuzzy weight |"
		rule += "---|"
	}
	b.WriteString(header + "\n" + rule + "\n")
	for k, name := range r.Criteria {
		fmt.Fprintf(&b, "| %s | %s |", cellEscape(name), r.num(res.CriteriaWeights[k]))
		if r.Polarity != nil {
			fmt.Fprintf(&b, " %s |", r.Polarity[k])
		}
		if r.FuzzyWeights != nil {
			fmt.Fprintf(&b, " %s |", r.triple(r.FuzzyWeights[k]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Consistency\n\n| Matrix | CR | Verdict |\n|---|---:|---|\n")
	fmt.Fprintf(&b, "| criteria | %s | %s |\n", r.num(res.CriteriaCR()), verdict(res.CriteriaConsistency.Acceptable))
	for k, name := range r.Criteria {
		rep := res.AlternativeConsistency[k]
		fmt.Fprintf(&b, "| alternatives / %s | %s | %s |\n", cellEscape(name), r.num(rep.CR), verdict(rep.Acceptable))
	}
	fmt.Fprintf(&b, "\nAggregated alternative CR: **%s**\n", r.num(res.AggregatedAlternativeCR))

	b.WriteString("\n## Ranking\n\n")
	if r.TOPSIS != nil {
		b.WriteString("| # | Alternative | Weighted score | TOPSIS closeness |\n|---:|---|---:|---:|\n")
	} else {
		b.WriteString("| # | Alternative | Weighted score |\n|---:|---|---:|\n")
	}
	for pos, j := range r.ranking() {
		fmt.Fprintf(&b, "| %d | %s | %s |", pos+1, cellEscape(r.Alternatives[j]), r.num(res.WeightedScores[j]))
		if r.TOPSIS != nil {
			fmt.Fprintf(&b, " %s |", r.num(r.TOPSIS.Closeness[j]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// cellEscape keeps user-supplied names from breaking table rows.
func cellEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
