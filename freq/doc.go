// SPDX-License-Identifier: MIT

// Package freq aggregates shape frequencies over integer ranges and ranks
// the most common shapes.
//
// Overview:
//
//   - Count computes the shape of every n in [start, end] through a
//     factor.Session and tallies occurrences per distinct shape in a Table.
//   - Table.Ranked orders shapes by descending count; equal counts are
//     ordered by shape length ascending, then by shape contents
//     lexicographically ascending. The order is identical on every run and
//     platform.
//   - TopShapes = Count + Ranked truncated to k entries. Asking for more
//     entries than distinct shapes returns all of them.
//
// Parallelism:
//
//	WithWorkers(n) shards the range into disjoint chunks counted by an
//	errgroup of at most n goroutines. Every chunk fills a private Table;
//	the partial tables are merged after all workers finish, so no table is
//	ever written concurrently. Merging sums counts per shape and is
//	commutative and associative, so the result equals the sequential count.
//
// Complexity:
//
//   - Time:  O((end−start) · √end) on a cold cache, O(end−start) warm.
//   - Space: O(#distinct shapes) per table, plus the Session cache.
//
// Errors (sentinel):
//
//   - ErrInvalidArgument: start < 1, end < start, or topK < 1.
//   - ctx.Err() when the context is cancelled mid-count.
package freq
