// SPDX-License-Identifier: MIT

// Package frames selects a bounded, logarithmically spaced subsequence of a
// range [start, end]: the right-bounds ("frames") at which a growing prefix
// of the range is re-aggregated for progressive display.
//
// Why decades?
//
//	Sampling [2, 10 000 000] uniformly gives either too few frames early on,
//	where the distribution changes fast and each frame is cheap, or too many
//	late frames, where every re-aggregation is expensive. Splitting the range
//	into decade buckets [k, 10k) and capping the points per bucket spends
//	frames where the dynamics are, and bounds the total to
//	maxPerDecade × number of decades.
//
// Algorithm:
//  1. lo = start. The bucket is [lo, last] with last = min(10·lo − 1, end).
//  2. Pick count = min(maxPerDecade, last − lo + 1) points evenly spaced from
//     lo to last inclusive, rounded to the nearest integer (halves up).
//     A bucket narrower than maxPerDecade therefore yields every integer.
//  3. lo = last + 1; repeat while lo ≤ end.
//  4. Merge, deduplicate and sort ascending.
//
// Errors (sentinel):
//
//   - ErrInvalidArgument: start < 1 or maxPerDecade < 1.
//
// start > end is not an error: the sequence is simply empty.
package frames
