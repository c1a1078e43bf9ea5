// SPDX-License-Identifier: MIT

package topsis_test

import (
	"fmt"

	"github.com/katalvlaran/fahp/topsis"
	"gonum.org/v1/gonum/mat"
)

func ExampleCloseness() {
	// Two suppliers scored on price (cost), quality and lead time (cost).
	d := mat.NewDense(2, 3, []float64{
		120, 8, 5,
		100, 6, 9,
	})
	w := []float64{0.4, 0.4, 0.2}
	pol := []topsis.Polarity{topsis.Cost, topsis.Benefit, topsis.Cost}

	c, err := topsis.Closeness(d, w, pol)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(topsis.Rank(c))
	// Output: [0 1]
}
