// SPDX-License-Identifier: MIT

// Package report renders an aggregation result for people: aligned plain
// text, GitHub-flavoured Markdown, or a standalone HTML page converted from
// the Markdown with goldmark.
//
// All numbers are rounded to Report.Precision decimals (default 4).
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fahp/ahp"
	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/katalvlaran/fahp/notation"
	"github.com/katalvlaran/fahp/topsis"
)

// ErrUnknownFormat is returned by Render for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ErrIncomplete is returned when the names do not match the result's shape.
var ErrIncomplete = errors.New("report: names do not match the result")

// Report is everything a rendering needs.
type Report struct {
	Title        string
	Criteria     []string
	Alternatives []string
	Polarity     []topsis.Polarity // optional, shown next to criteria
	Result       *ahp.Result
	TOPSIS       *topsis.Result // optional
	FuzzyWeights []fuzzy.Number // optional fuzzy criteria weights
	Threshold    float64        // CR threshold shown in the header; 0 hides it
	Precision    int            // decimals; zero (unset) means notation.DisplayPrecision
}

// Render writes r in format ("text", "markdown" or "html").
func Render(w io.Writer, format string, r Report) error {
	switch strings.ToLower(format) {
	case "text", "":
		return Text(w, r)
	case "markdown", "md":
		return Markdown(w, r)
	case "html":
		return HTML(w, r)
	default:
		return fmt.Errorf("Render(%q): %w", format, ErrUnknownFormat)
	}
}

func (r Report) validate() error {
	if r.Result == nil {
		return fmt.Errorf("no result: %w", ErrIncomplete)
	}
	if len(r.Criteria) != len(r.Result.CriteriaWeights) {
		return fmt.Errorf("%d criteria names for %d weights: %w", len(r.Criteria), len(r.Result.CriteriaWeights), ErrIncomplete)
	}
	if len(r.Alternatives) != len(r.Result.WeightedScores) {
		return fmt.Errorf("%d alternative names for %d scores: %w", len(r.Alternatives), len(r.Result.WeightedScores), ErrIncomplete)
	}
	if r.TOPSIS != nil && len(r.TOPSIS.Closeness) != len(r.Alternatives) {
		return fmt.Errorf("%d alternative names for %d closeness scores: %w", len(r.Alternatives), len(r.TOPSIS.Closeness), ErrIncomplete)
	}
	if r.FuzzyWeights != nil && len(r.FuzzyWeights) != len(r.Criteria) {
		return fmt.Errorf("%d criteria names for %d fuzzy weights: %w", len(r.Criteria), len(r.FuzzyWeights), ErrIncomplete)
	}
	if r.Polarity != nil && len(r.Polarity) != len(r.Criteria) {
		return fmt.Errorf("%d criteria names for %d polarities: %w", len(r.Criteria), len(r.Polarity), ErrIncomplete)
	}

	return nil
}

func (r Report) places() int {
	if r.Precision <= 0 {
		return notation.DisplayPrecision
	}

	return r.Precision
}

func (r Report) num(x float64) string { return notation.FormatValue(x, r.places()) }

func (r Report) triple(n fuzzy.Number) string {
	return "(" + r.num(n.L) + ", " + r.num(n.M) + ", " + r.num(n.U) + ")"
}

func (r Report) title() string {
	if r.Title == "" {
		return "Fuzzy AHP decision"
	}

	return r.Title
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}

	return "inconsistent"
}

// ranking returns the display order: TOPSIS when present, else weighted
// scores.
func (r Report) ranking() []int {
	if r.TOPSIS != nil {
		return r.TOPSIS.Ranking()
	}

	return topsis.Rank(r.Result.WeightedScores)
}
