// SPDX-License-Identifier: MIT

// Package problem reads a complete decision problem from YAML and turns it
// into comparison matrices.
//
// Document shape:
//
//	name: Supplier selection
//	criteria:
//	  - name: price
//	    polarity: cost        # benefit (default) | cost
//	  - quality               # bare name, benefit
//	alternatives: [acme, globex, initech]
//	criteria_judgments:
//	  - {a: price, b: quality, value: "3"}
//	alternative_judgments:
//	  price:
//	    - {a: acme, b: globex, value: "1/3"}
//	    - {a: acme, b: initech, level: 7, delta: 0.25}
//
// A judgment carries either value (cell notation: "3", "1/5",
// "(1.5,2,2.5)") or level with an optional delta. Unjudged pairs are
// neutral.
package problem
