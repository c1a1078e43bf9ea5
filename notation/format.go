// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/fahp/fuzzy"
)

const (
	// DisplayPrecision is the conventional number of decimals for weights,
	// closeness scores and consistency ratios.
	DisplayPrecision = 4

	// neutralTol decides when a cell displays as the neutral level tuple.
	neutralTol = 1e-6
)

// FormatCell renders n as a tuple of display levels, e.g. "(5,5,5)" for the
// identity judgment or "(7,7,9)" for a spread around level 7.
func FormatCell(n fuzzy.Number) string {
	if n.IsOne(neutralTol) {
		return "(5,5,5)"
	}

	return fmt.Sprintf("(%d,%d,%d)",
		fuzzy.NearestLevel(n.L), fuzzy.NearestLevel(n.M), fuzzy.NearestLevel(n.U))
}

// CellLevels returns the level tuple FormatCell would render.
func CellLevels(n fuzzy.Number) [3]int {
	if n.IsOne(neutralTol) {
		return [3]int{fuzzy.NeutralLevel, fuzzy.NeutralLevel, fuzzy.NeutralLevel}
	}

	return [3]int{fuzzy.NearestLevel(n.L), fuzzy.NearestLevel(n.M), fuzzy.NearestLevel(n.U)}
}

// Round rounds x to places decimals, half away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(x*p) / p
}

// FormatValue renders x with exactly places decimals.
func FormatValue(x float64, places int) string {
	return strconv.FormatFloat(Round(x, places), 'f', places, 64)
}
