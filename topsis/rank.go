// SPDX-License-Identifier: MIT

package topsis

import "sort"

// Rank returns the indices of scores ordered by descending score. Equal
// scores keep ascending index order.
func Rank(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	return idx
}
