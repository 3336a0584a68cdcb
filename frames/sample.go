// SPDX-License-Identifier: MIT

package frames

import (
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/katalvlaran/factorshape/factor"
)

// DefaultMaxPerDecade is the per-bucket frame cap used by the CLI.
const DefaultMaxPerDecade = 250

// ErrInvalidArgument is factor.ErrInvalidArgument, shared across packages.
var ErrInvalidArgument = factor.ErrInvalidArgument

// Bucket is one decade slice [Lo, Hi] of the sampled range, both inclusive.
type Bucket struct {
	Lo, Hi int
}

// Width returns the number of integers in b.
func (b Bucket) Width() int { return b.Hi - b.Lo + 1 }

// Buckets partitions [start, end] into consecutive decade buckets.
// start > end (or start < 1) yields nil.
func Buckets(start, end int) []Bucket {
	if start < 1 || start > end {
		return nil
	}
	var out []Bucket
	for lo := start; ; {
		last := math.MaxInt
		if lo <= math.MaxInt/10 {
			last = lo*10 - 1
		}
		if last > end {
			last = end
		}
		out = append(out, Bucket{Lo: lo, Hi: last})
		if last == end {
			return out
		}
		lo = last + 1
	}
}

// Points returns up to maxPerDecade integers evenly spaced over b, first and
// last included. Positions round to the nearest integer with halves rounded
// up (2.5 → 3), not half to even. It returns nil for maxPerDecade < 1.
func Points(b Bucket, maxPerDecade int) []int {
	if maxPerDecade < 1 || b.Hi < b.Lo {
		return nil
	}
	count := b.Width()
	if count > maxPerDecade {
		count = maxPerDecade
	}
	if count == 1 {
		return []int{b.Lo}
	}

	span := uint64(b.Hi - b.Lo)
	den := uint64(count - 1)
	out := make([]int, count)
	for i := range out {
		// round(i·span/den) in 128-bit arithmetic; the quotient ≤ span fits.
		hi, lo := bits.Mul64(uint64(i), span)
		lo, carry := bits.Add64(lo, den/2, 0)
		hi += carry
		q, _ := bits.Div64(hi, lo, den)
		out[i] = b.Lo + int(q)
	}

	return out
}

// Sample returns the frame sequence for [start, end]: strictly increasing,
// every value within [start, end], at most maxPerDecade values per decade
// bucket. The last bucket always ends exactly at end, so end is included.
func Sample(start, end, maxPerDecade int) ([]int, error) {
	if start < 1 {
		return nil, fmt.Errorf("Sample: start=%d must be ≥ 1: %w", start, ErrInvalidArgument)
	}
	if maxPerDecade < 1 {
		return nil, fmt.Errorf("Sample: maxPerDecade=%d must be ≥ 1: %w", maxPerDecade, ErrInvalidArgument)
	}
	if start > end {
		return []int{}, nil
	}

	var out []int
	for _, b := range Buckets(start, end) {
		out = append(out, Points(b, maxPerDecade)...)
	}
	// Adjacent buckets may meet on the same integer after rounding.
	slices.Sort(out)

	return slices.Compact(out), nil
}
