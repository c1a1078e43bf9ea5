// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fahp/comparison"
	"gonum.org/v1/gonum/floats"
)

// Strategy names accepted by StrategyByName.
const (
	NameGeometricMean = "geometric-mean"
	NameChangExtent   = "chang-extent"
)

// Strategy turns a comparison matrix into a crisp weight vector.
type Strategy interface {
	// Name returns the configuration name of the strategy.
	Name() string
	// Weights returns one weight per matrix row.
	Weights(m *comparison.Matrix) ([]float64, error)
}

var (
	_ Strategy = GeometricMean{}
	_ Strategy = ChangExtent{}
)

// Synthesize runs strategy s on m.
//
// Errors:
//   - ErrUnknownStrategy when s is nil.
//   - comparison.ErrNilMatrix when m is nil.
func Synthesize(m *comparison.Matrix, s Strategy) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("Synthesize: %w", ErrUnknownStrategy)
	}
	if err := comparison.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}

	return s.Weights(m)
}

// StrategyByName resolves a configuration name, case-insensitively.
// "gm" and "chang" are accepted as short forms.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameGeometricMean, "gm":
		return GeometricMean{}, nil
	case NameChangExtent, "chang":
		return ChangExtent{}, nil
	default:
		return nil, fmt.Errorf("StrategyByName(%q): %w", name, ErrUnknownStrategy)
	}
}

// normalize scales w in place to sum 1. A non-positive sum leaves w as is.
func normalize(w []float64) []float64 {
	if total := floats.Sum(w); total > 0 {
		floats.Scale(1/total, w)
	}

	return w
}
