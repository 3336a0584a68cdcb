// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/factorshape/factor"
)

// WriteList writes one line per integer n in [start, end]:
//
//	{n}: factors={Factorization}, shape={Shape}
//
// Validation errors from the Session are returned before anything for that
// n is written.
func WriteList(ctx context.Context, w io.Writer, s *factor.Session, start, end int) error {
	if start > end {
		return fmt.Errorf("WriteList: start=%d > end=%d: %w", start, end, factor.ErrInvalidArgument)
	}
	bw := bufio.NewWriter(w)
	for n := start; ; n++ {
		if (n-start)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		f, err := s.Factorize(n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d: factors=%v, shape=%v\n", n, f, factor.ShapeFrom(f)); err != nil {
			return err
		}
		if n == end {
			break
		}
	}

	return bw.Flush()
}
