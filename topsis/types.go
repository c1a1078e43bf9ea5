// SPDX-License-Identifier: MIT

package topsis

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Polarity tells whether larger values of a criterion are better.
//
//   - Benefit: the ideal is the column maximum.
//   - Cost:    the ideal is the column minimum.
type Polarity int

const (
	// Benefit criteria prefer larger values.
	Benefit Polarity = iota

	// Cost criteria prefer smaller values.
	Cost
)

// String returns "benefit" or "cost".
func (p Polarity) String() string {
	if p == Cost {
		return "cost"
	}

	return "benefit"
}

// ParsePolarity reads "benefit" or "cost" case-insensitively. The empty
// string is Benefit.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "benefit", "max":
		return Benefit, nil
	case "cost", "min":
		return Cost, nil
	default:
		return Benefit, fmt.Errorf("ParsePolarity(%q): %w", s, ErrUnknownPolarity)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, so polarities decode
// from YAML and JSON documents.
func (p *Polarity) UnmarshalText(text []byte) error {
	v, err := ParsePolarity(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Result carries every intermediate of a TOPSIS run.
//
// Fields:
//   - Norms     - per-criterion L2 norm actually used (0 replaced by 1).
//   - Weighted  - m×n weighted normalised matrix V.
//   - Ideal     - per-criterion ideal value v⁺.
//   - AntiIdeal - per-criterion anti-ideal value v⁻.
//   - DPlus     - per-alternative distance to Ideal.
//   - DMinus    - per-alternative distance to AntiIdeal.
//   - Closeness - per-alternative closeness coefficient in [0, 1].
type Result struct {
	Norms     []float64
	Weighted  *mat.Dense
	Ideal     []float64
	AntiIdeal []float64
	DPlus     []float64
	DMinus    []float64
	Closeness []float64
}

// Ranking returns alternative indices ordered best first.
func (r *Result) Ranking() []int { return Rank(r.Closeness) }
