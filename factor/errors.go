// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a parameter outside its valid domain, such as a
// non-positive integer passed to Factorize or ShapeOf.
// Callers MUST use errors.Is(err, ErrInvalidArgument) to branch on it.
var ErrInvalidArgument = errors.New("factor: invalid argument")

// invalidf wraps ErrInvalidArgument with the offending operation and value.
func invalidf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
