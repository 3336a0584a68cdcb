// SPDX-License-Identifier: MIT

package freq

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/factorshape/factor"
)

// Count tallies the shape of every integer in [start, end] (inclusive).
//
// Preconditions (checked before any work):
//  1. start ≥ 1
//  2. end ≥ start
//
// Returns a Table whose Total equals end − start + 1, or ErrInvalidArgument
// (wrapped), or ctx.Err() if the context ends first.
func Count(ctx context.Context, s *factor.Session, start, end int, opts ...Option) (*Table, error) {
	if err := validateRange(opCount, start, end); err != nil {
		return nil, err
	}
	t := NewTable()
	if err := t.extend(ctx, s, start, end, newOptions(opts...)); err != nil {
		return nil, err
	}

	return t, nil
}

// Extend adds the shapes of every integer in [from, to] to t. Callers growing
// a prefix frame by frame pass from = previous bound + 1, which yields the
// same table as a fresh Count over the whole prefix.
//
// On error t is left unchanged.
func (t *Table) Extend(ctx context.Context, s *factor.Session, from, to int, opts ...Option) error {
	if err := validateRange(opExtend, from, to); err != nil {
		return err
	}

	return t.extend(ctx, s, from, to, newOptions(opts...))
}

// TopShapes counts [start, end] and returns the topK highest ranked shapes.
// If topK exceeds the number of distinct shapes, all shapes are returned.
func TopShapes(ctx context.Context, s *factor.Session, start, end, topK int, opts ...Option) ([]Entry, error) {
	if err := validateRange(opTopShapes, start, end); err != nil {
		return nil, err
	}
	if topK < 1 {
		return nil, invalidf(opTopShapes, "topK=%d must be ≥ 1", topK)
	}
	t, err := Count(ctx, s, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return t.Top(topK), nil
}

// extend counts [from, to] into a scratch table and merges it into t only on
// success. Validation has already happened.
func (t *Table) extend(ctx context.Context, s *factor.Session, from, to int, o options) error {
	span := to - from + 1
	chunk := o.chunkFor(span)
	if o.workers == 1 || span <= chunk {
		part := NewTable()
		if err := countRange(ctx, s, from, to, part); err != nil {
			return err
		}
		t.Merge(part)

		return nil
	}

	// Disjoint chunks, one private table each; merged after Wait.
	nChunks := (span + chunk - 1) / chunk
	parts := make([]*Table, nChunks)
	o.logger.Debug("counting shapes in parallel",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("workers", o.workers),
		zap.Int("chunks", nChunks),
		zap.Int("chunk_size", chunk),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < nChunks; i++ {
		lo := from + i*chunk
		hi := lo + chunk - 1
		if hi > to || hi < lo { // hi < lo guards int overflow near MaxInt
			hi = to
		}
		g.Go(func() error {
			part := NewTable()
			if err := countRange(gctx, s, lo, hi, part); err != nil {
				return err
			}
			parts[i] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := NewTable()
	for _, p := range parts {
		merged.Merge(p)
	}
	t.Merge(merged)

	st := s.Stats()
	o.logger.Debug("shape count finished",
		zap.Int("distinct_shapes", merged.Len()),
		zap.Uint64("cache_hits", st.Hits),
		zap.Uint64("cache_misses", st.Misses),
	)

	return nil
}

// countRange is the sequential worker loop over [lo, hi].
func countRange(ctx context.Context, s *factor.Session, lo, hi int, into *Table) error {
	for n := lo; ; n++ {
		if (n-lo)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		sh, err := s.ShapeOf(n)
		if err != nil {
			return err
		}
		into.Add(sh)
		if n == hi { // explicit exit avoids n++ overflow at MaxInt
			return nil
		}
	}
}
