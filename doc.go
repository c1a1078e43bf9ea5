// Package fahp is a fuzzy AHP + TOPSIS decision engine: it turns pairwise
// judgments between criteria and between alternatives into weights,
// consistency ratios and a ranking.
//
// What is fahp?
//
//	A small, deterministic, value-oriented library:
//		• Fuzzy numbers: triangular (l, m, u) algebra, Saaty 1–9 scale, level/δ scale
//		• Notation: parse "3", "1/5", "(1.5,2,2.5)", "(3,5,7)" cells; format level tuples
//		• Comparison matrices: reciprocal fuzzy matrices from named judgments or cell grids
//		• Weights: geometric mean (Buckley) and extent analysis (Chang)
//		• Consistency: Saaty CR on the defuzzified matrix
//		• Aggregation: decision matrix, aggregated CR, weighted-sum scores
//		• Ranking: TOPSIS closeness with benefit/cost criteria
//
// Packages:
//
//	fuzzy/       - Number, ToTriangular, FromLevel, NearestLevel
//	notation/    - ParseCell, FormatCell, RepresentativeLevel
//	comparison/  - Matrix, Build, FromCells, validators
//	weights/     - Strategy, GeometricMean, ChangExtent, Synthesize
//	consistency/ - Ratio, Evaluate, RandomIndex
//	ahp/         - Evaluate, Result, options (strategy, parallel, logger)
//	topsis/      - Closeness, Evaluate, Rank, Polarity
//	problem/     - YAML decision problems → matrices
//	config/      - defaults, YAML file, FAHP_* environment
//	report/      - text, Markdown and HTML output
//	cmd/fahp     - command-line front end
//
// Quick example:
//
//	crit, _ := comparison.Build([]string{"price", "quality"},
//		[]comparison.Judgment{comparison.ByScale("price", "quality", 3)})
//	w, _ := weights.Synthesize(crit, weights.GeometricMean{})
//
// Every computation is pure and synchronous; a Matrix is immutable once
// built, so results can be shared across goroutines.
//
//	go get github.com/katalvlaran/fahp
package fahp
