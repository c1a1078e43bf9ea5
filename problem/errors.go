// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.

package problem

import "errors"

// ErrInvalidProblem is returned for a structurally invalid document.
var ErrInvalidProblem = errors.New("problem: invalid decision problem")
