// SPDX-License-Identifier: MIT

// Package fuzzy - judgment scales.
//
// Two conventions coexist:
//   - Saaty integer scale 1..9 with a ±1 spread (ToTriangular).
//   - Discrete levels {1,3,5,7,9} on an exponential law with a multiplicative
//     confidence spread (LevelToRatio, FromLevel).
//
// Both produce plain Numbers, so a comparison matrix never needs to know
// which convention a judgment was entered in.

package fuzzy

import (
	"fmt"
	"math"
)

const (
	// MinScale and MaxScale bound the Saaty integer scale.
	MinScale = 1
	MaxScale = 9

	// LevelBase is the base of the level → ratio law.
	LevelBase = 2.0

	// NeutralLevel maps to ratio 1.
	NeutralLevel = 5

	// MaxDelta is the widest confidence spread accepted by FromLevel.
	MaxDelta = 0.75

	// levelTieTol decides when two level distances count as equal.
	levelTieTol = 1e-9
)

// Levels lists the discrete levels in ascending order.
var Levels = [5]int{1, 3, 5, 7, 9}

// ConfidenceSpreads lists the δ choices offered to users, tightest first.
var ConfidenceSpreads = [4]float64{0, 0.25, 0.5, 0.75}

// ToTriangular converts a Saaty scale value to a TFN:
// 1 → (1,1,1), 9 → (9,9,9), otherwise (s-1, s, s+1).
//
// Errors: ErrScaleOutOfRange when scale is outside 1..9.
func ToTriangular(scale int) (Number, error) {
	switch {
	case scale < MinScale || scale > MaxScale:
		return Number{}, fmt.Errorf("ToTriangular(%d): %w", scale, ErrScaleOutOfRange)
	case scale == MinScale:
		return One, nil
	case scale == MaxScale:
		return Crisp(MaxScale), nil
	}
	s := float64(scale)

	return Number{L: s - 1, M: s, U: s + 1}, nil
}

// IsLevel reports whether level is one of the discrete levels.
func IsLevel(level int) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}

	return false
}

// LevelToRatio applies ratio = LevelBase^((level-5)/2).
// Level 5 yields 1, level 9 yields 4, level 1 yields 1/4.
func LevelToRatio(level float64) float64 {
	return math.Pow(LevelBase, (level-NeutralLevel)/2)
}

// FromLevel builds (ratio*(1-δ), ratio, ratio*(1+δ)) for a discrete level.
//
// Errors:
//   - ErrLevelOutOfRange when level is not in Levels.
//   - ErrDeltaOutOfRange when delta is outside [0, MaxDelta] or NaN.
func FromLevel(level int, delta float64) (Number, error) {
	if !IsLevel(level) {
		return Number{}, fmt.Errorf("FromLevel(%d): %w", level, ErrLevelOutOfRange)
	}
	if math.IsNaN(delta) || delta < 0 || delta > MaxDelta {
		return Number{}, fmt.Errorf("FromLevel(δ=%g): %w", delta, ErrDeltaOutOfRange)
	}
	r := LevelToRatio(float64(level))

	return Number{L: r * (1 - delta), M: r, U: r * (1 + delta)}, nil
}

// NearestLevel returns the level whose ratio is closest to ratio.
// Equally close levels resolve to the larger one.
func NearestLevel(ratio float64) int {
	nearest := Levels[0]
	best := math.Inf(1)
	for _, lvl := range Levels {
		d := math.Abs(LevelToRatio(float64(lvl)) - ratio)
		switch {
		case d < best-levelTieTol:
			best, nearest = d, lvl
		case math.Abs(d-best) < levelTieTol && lvl > nearest:
			nearest = lvl
		}
	}

	return nearest
}
