// SPDX-License-Identifier: MIT

// Package factor computes prime factorizations of positive integers by trial
// division and derives their exponent "shape".
//
// What is a shape?
//
//	Every integer n ≥ 2 factors uniquely as p₁^e₁ · p₂^e₂ · … · pₖ^eₖ.
//	Dropping the primes and sorting the exponents in descending order gives
//	the shape of n. Numbers with the same exponent signature share a shape
//	regardless of which primes are involved:
//
//	  12 = 2²·3¹  → [2, 1]
//	  18 = 2¹·3²  → [2, 1]
//	  30 = 2·3·5  → [1, 1, 1]
//	   1          → []
//
// Key features:
//   - Factorize: O(√n) trial division by consecutive integers starting at 2,
//     with the early cutoff once d·d exceeds the remaining quotient.
//   - Session: owns a memoization Cache so repeated lookups are O(1).
//     There is no package-level cache; independent computations never share
//     memory unless they share a Session.
//   - Cache: unbounded concurrent map (NewMapCache) or bounded LRU
//     (NewLRUCache) for long-lived processes.
//
// Usage:
//
//	s := factor.NewSession()
//	f, err := s.Factorize(200) // [(2, 3), (5, 2)]
//	sh, err := s.ShapeOf(250)  // [3, 1]
//
// Complexity:
//
//   - Factorize: O(√n) time on a cold cache, O(1) on a hit.
//   - ShapeOf:   Factorize + O(k log k) for k distinct primes (k ≤ 15 for int64).
//
// Errors (sentinel):
//
//   - ErrInvalidArgument: n ≤ 0.
//
// Thread safety:
//
//   - Session and both Cache implementations are safe for concurrent use.
//     Returned slices are copies; callers may modify them freely.
package factor
