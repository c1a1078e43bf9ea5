// SPDX-License-Identifier: MIT

// Package comparison - name-based matrix construction.
//
// Build resolves judgments on named pairs into the strict upper triangle,
// mirrors reciprocals into the lower triangle and fixes the diagonal at One.
// A judgment on (B, A) where B comes after A in the item order is stored as
// the reciprocal on (A, B), so callers may state either direction.

package comparison

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fahp/fuzzy"
	"github.com/katalvlaran/fahp/notation"
)

const (
	ctxBuild     = "Build"
	ctxFromCells = "FromCells"
)

// Value is a judgment payload that resolves to a fuzzy number.
type Value interface {
	Number() (fuzzy.Number, error)
}

// Scale is a Saaty 1..9 judgment.
type Scale int

// Number implements Value through fuzzy.ToTriangular.
func (s Scale) Number() (fuzzy.Number, error) { return fuzzy.ToTriangular(int(s)) }

// Triple is an explicit (l, m, u) judgment.
type Triple fuzzy.Number

// Number implements Value.
func (t Triple) Number() (fuzzy.Number, error) { return fuzzy.Number(t), nil }

// Text is a judgment in cell notation ("3", "1/5", "(5,7,9)", "(1.5,2,2.5)").
// Unreadable text is the neutral judgment, as in notation.ParseCell.
type Text string

// Number implements Value through notation.ParseCell.
func (t Text) Number() (fuzzy.Number, error) { return notation.ParseCell(string(t)), nil }

// LevelSpread is a discrete level with a confidence spread δ.
type LevelSpread struct {
	Level int
	Delta float64
}

// Number implements Value through fuzzy.FromLevel.
func (l LevelSpread) Number() (fuzzy.Number, error) { return fuzzy.FromLevel(l.Level, l.Delta) }

// Judgment states how much more important item A is than item B.
type Judgment struct {
	A, B  string
	Value Value
}

// ByScale is shorthand for a Saaty-scale judgment.
func ByScale(a, b string, scale int) Judgment { return Judgment{A: a, B: b, Value: Scale(scale)} }

// ByTriple is shorthand for a literal triple judgment.
func ByTriple(a, b string, n fuzzy.Number) Judgment { return Judgment{A: a, B: b, Value: Triple(n)} }

// ByText is shorthand for a cell-notation judgment.
func ByText(a, b, text string) Judgment { return Judgment{A: a, B: b, Value: Text(text)} }

// ByLevel is shorthand for a level/δ judgment.
func ByLevel(a, b string, level int, delta float64) Judgment {
	return Judgment{A: a, B: b, Value: LevelSpread{Level: level, Delta: delta}}
}

// Build assembles the comparison matrix for names from judgments.
// MAIN DESCRIPTION:
//   - Turns an ordered item list plus judgments on unordered pairs into a
//     complete reciprocal matrix.
//
// Implementation:
//   - Stage 1: index names; reject empty lists and duplicates.
//   - Stage 2: resolve every judgment to a validated fuzzy number and place
//     it at (i, j) with i < j, reciprocating when stated as (j, i).
//   - Stage 3: mirror the upper triangle; unjudged pairs stay One unless
//     WithRequireComplete is set.
//
// Errors:
//   - ErrEmpty, ErrDuplicateName for bad item lists.
//   - ErrInvalidReference for unknown names or self comparisons.
//   - ErrDuplicateJudgment when a pair is judged twice (in either direction).
//   - fuzzy.ErrScaleOutOfRange, fuzzy.ErrLevelOutOfRange,
//     fuzzy.ErrDeltaOutOfRange from the judgment payload.
//   - fuzzy.ErrUnordered, fuzzy.ErrNonPositive from validation.
//   - ErrMissingJudgment under WithRequireComplete.
//
// Complexity:
//   - Time O(n² + k) for k judgments, Space O(n²).
func Build(names []string, judgments []Judgment, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	index, err := indexNames(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxBuild, err)
	}
	n := len(names)
	m := newMatrix(n)
	judged := make([]bool, n*n)

	for k, jd := range judgments {
		i, okA := index[jd.A]
		j, okB := index[jd.B]
		if !okA || !okB {
			return nil, fmt.Errorf("%s: judgment %d (%q, %q): %w", ctxBuild, k, jd.A, jd.B, ErrInvalidReference)
		}
		if i == j {
			return nil, fmt.Errorf("%s: judgment %d compares %q with itself: %w", ctxBuild, k, jd.A, ErrInvalidReference)
		}
		if jd.Value == nil {
			return nil, fmt.Errorf("%s: judgment %d (%q, %q) has no value: %w", ctxBuild, k, jd.A, jd.B, ErrInvalidReference)
		}

		t, err := jd.Value.Number()
		if err != nil {
			return nil, fmt.Errorf("%s: judgment %d (%q, %q): %w", ctxBuild, k, jd.A, jd.B, err)
		}
		if !o.trustLiterals {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("%s: judgment %d (%q, %q): %w", ctxBuild, k, jd.A, jd.B, err)
			}
		}
		if i > j {
			i, j, t = j, i, t.Reciprocal()
		}
		if judged[i*n+j] {
			return nil, fmt.Errorf("%s: pair (%q, %q): %w", ctxBuild, names[i], names[j], ErrDuplicateJudgment)
		}
		judged[i*n+j] = true
		m.data[i*n+j] = t
	}

	if err := finish(m, judged, names, o); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxBuild, err)
	}

	return m, nil
}

// FromCells builds a matrix from an n×n grid of cell text, the shape a
// table-based editor holds. Only the strict upper triangle is read; the
// diagonal and lower triangle are ignored and regenerated. Empty upper
// cells count as unjudged.
//
// Errors:
//   - ErrEmpty, ErrDuplicateName for bad item lists.
//   - ErrDimensionMismatch when the grid is not len(names)×len(names).
//   - fuzzy.ErrUnordered, fuzzy.ErrNonPositive for malformed literal triples.
//   - ErrMissingJudgment under WithRequireComplete.
func FromCells(names []string, cells [][]string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if _, err := indexNames(names); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromCells, err)
	}
	n := len(names)
	if len(cells) != n {
		return nil, fmt.Errorf("%s: %d rows for %d items: %w", ctxFromCells, len(cells), n, ErrDimensionMismatch)
	}
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d cells for %d items: %w", ctxFromCells, i, len(row), n, ErrDimensionMismatch)
		}
	}

	m := newMatrix(n)
	judged := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			text := cells[i][j]
			if strings.TrimSpace(text) == "" {
				continue
			}
			t := notation.ParseCell(text)
			if !o.trustLiterals {
				if err := t.Validate(); err != nil {
					return nil, fmt.Errorf("%s: cell (%d,%d) %q: %w", ctxFromCells, i, j, text, err)
				}
			}
			m.data[i*n+j] = t
			judged[i*n+j] = true
		}
	}

	if err := finish(m, judged, names, o); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromCells, err)
	}

	return m, nil
}

// indexNames maps each name to its position.
func indexNames(names []string) (map[string]int, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		index[name] = i
	}

	return index, nil
}

// finish enforces completeness, mirrors reciprocals and runs the optional
// post-build check.
func finish(m *Matrix, judged []bool, names []string, o options) error {
	n := m.n
	for i := 0; i < n; i++ {
		m.data[i*n+i] = fuzzy.One
		for j := i + 1; j < n; j++ {
			if !judged[i*n+j] && o.requireComplete {
				return fmt.Errorf("pair (%q, %q): %w", names[i], names[j], ErrMissingJudgment)
			}
			m.data[j*n+i] = m.data[i*n+j].Reciprocal()
		}
	}
	if o.reciprocalTol >= 0 {
		return ValidateReciprocal(m, o.reciprocalTol)
	}

	return nil
}
