// SPDX-License-Identifier: MIT
// Package consistency: sentinel error set.

package consistency

import "errors"

// ErrInvalidThreshold is returned when an acceptance threshold is not in (0, 1].
var ErrInvalidThreshold = errors.New("consistency: threshold must be in (0, 1]")
