// SPDX-License-Identifier: MIT

package freq

import (
	"fmt"

	"github.com/katalvlaran/factorshape/factor"
)

// ErrInvalidArgument is factor.ErrInvalidArgument, so one errors.Is check
// covers validation failures from every layer.
var ErrInvalidArgument = factor.ErrInvalidArgument

// Operation names used as error context.
const (
	opCount     = "Count"
	opExtend    = "Extend"
	opTopShapes = "TopShapes"
)

func invalidf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// validateRange checks the shared [start, end] preconditions.
func validateRange(op string, start, end int) error {
	if start < 1 {
		return invalidf(op, "start=%d must be ≥ 1", start)
	}
	if end < start {
		return invalidf(op, "end=%d must be ≥ start=%d", end, start)
	}

	return nil
}
