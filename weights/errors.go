// SPDX-License-Identifier: MIT
// Package weights: sentinel error set.

package weights

import "errors"

// ErrUnknownStrategy is returned for a nil strategy or an unrecognised
// strategy name.
var ErrUnknownStrategy = errors.New("weights: unknown synthesis strategy")
