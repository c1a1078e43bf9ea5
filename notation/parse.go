// SPDX-License-Identifier: MIT

package notation

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fahp/fuzzy"
)

// Convention tells which encoding a parsed cell used.
type Convention int

const (
	// Neutral marks empty or unparsable text that fell back to fuzzy.One.
	Neutral Convention = iota
	// Scale marks a bare Saaty number.
	Scale
	// Ratio marks an "a/b" fraction.
	Ratio
	// Level marks a "(l,m,u)" triple made of discrete levels.
	Level
	// Literal marks a "(l,m,u)" triple taken as-is.
	Literal
)

// String implements fmt.Stringer.
func (c Convention) String() string {
	switch c {
	case Scale:
		return "scale"
	case Ratio:
		return "ratio"
	case Level:
		return "level"
	case Literal:
		return "literal"
	default:
		return "neutral"
	}
}

// levelTol is how close a triple component must be to a level to count as one.
const levelTol = 1e-4

// ParseCell converts cell text to a fuzzy number. It never fails: text that
// cannot be read yields the neutral judgment fuzzy.One.
func ParseCell(text string) fuzzy.Number {
	n, _ := ParseCellConvention(text)

	return n
}

// ParseCellConvention is ParseCell that also reports which encoding matched.
//
// Literal triples are returned without ordering checks; the comparison
// builder validates them before they enter a matrix.
func ParseCellConvention(text string) (fuzzy.Number, Convention) {
	s := strings.TrimSpace(text)
	if s == "" {
		return fuzzy.One, Neutral
	}

	// Stage 1: "(l,m,u)" triple.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && strings.Count(s, ",") == 2 {
		if l, m, u, ok := parseTriple(s); ok {
			if nearLevel(l) && nearLevel(m) && nearLevel(u) {
				return fuzzy.New(fuzzy.LevelToRatio(l), fuzzy.LevelToRatio(m), fuzzy.LevelToRatio(u)), Level
			}

			return fuzzy.New(l, m, u), Literal
		}

		return fuzzy.One, Neutral
	}

	// Stage 2: "a/b" fraction or bare number.
	conv := Scale
	var value float64
	if strings.Contains(s, "/") {
		v, ok := parseFraction(s)
		if !ok {
			return fuzzy.One, Neutral
		}
		value, conv = v, Ratio
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fuzzy.One, Neutral
		}
		value = v
	}

	// Negative ratios carry no judgment; zero is the weakest possible preference.
	if math.IsNaN(value) || value < 0 {
		return fuzzy.One, Neutral
	}
	if value == 0 {
		value = 0 // normalizes -0
	}

	// Stage 3: snap to the Saaty scale.
	if value >= 1 {
		return scaleNumber(value), conv
	}

	return scaleNumber(1 / value).Reciprocal(), conv
}

// scaleNumber clamps v to [1,9], rounds half to even and maps through
// fuzzy.ToTriangular.
func scaleNumber(v float64) fuzzy.Number {
	s := int(math.RoundToEven(clamp(v, fuzzy.MinScale, fuzzy.MaxScale)))
	n, err := fuzzy.ToTriangular(s)
	if err != nil {
		// unreachable: s is clamped into range
		return fuzzy.One
	}

	return n
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func parseTriple(s string) (l, m, u float64, ok bool) {
	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "("), ")"), ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}

	return vals[0], vals[1], vals[2], true
}

func parseFraction(s string) (float64, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, false
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || den == 0 {
		return 0, false
	}

	return float64(num) / float64(den), true
}

func nearLevel(v float64) bool {
	for _, lvl := range fuzzy.Levels {
		if math.Abs(v-float64(lvl)) < levelTol {
			return true
		}
	}

	return false
}

// RepresentativeLevel extracts the level a cell was most likely entered at,
// for pre-selecting an editor. A triple contributes its middle value: an
// exact level (±0.001) is returned as is, any other value resolves to the
// level with the nearest ratio. A bare level integer is accepted too.
func RepresentativeLevel(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && strings.Count(s, ",") == 2 {
		_, m, _, ok := parseTriple(s)
		if !ok {
			return 0, false
		}
		for _, lvl := range fuzzy.Levels {
			if math.Abs(m-float64(lvl)) < 1e-3 {
				return lvl, true
			}
		}

		return fuzzy.NearestLevel(m), true
	}
	if lvl, err := strconv.Atoi(s); err == nil && fuzzy.IsLevel(lvl) {
		return lvl, true
	}

	return 0, false
}
