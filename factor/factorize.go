// SPDX-License-Identifier: MIT

package factor

import "sort"

// Operation names used as error context.
const (
	opFactorize = "Factorize"
	opShapeOf   = "ShapeOf"
)

// Factorize computes the prime factorization of n by trial division, without
// any memoization. Use a Session to cache results across calls.
//
// Algorithm:
//  1. For d = 2, 3, 4, … while d ≤ n/d (i.e. d² ≤ remaining quotient):
//     divide n by d as long as it divides, counting repetitions;
//     record (d, count) when count > 0.
//  2. If the remaining quotient exceeds 1 it is prime; record it with
//     exponent 1.
//
// Composite candidates never divide: their prime factors were removed
// earlier, so stepping by 1 still yields only primes in the output.
// The d ≤ n/d form of the cutoff cannot overflow.
//
// Returns:
//   - the empty (non-nil) Factorization for n = 1.
//   - ErrInvalidArgument (wrapped) for n ≤ 0.
//
// Complexity: O(√n) time, O(log n) space.
func Factorize(n int) (Factorization, error) {
	if n <= 0 {
		return nil, invalidf(opFactorize, "n=%d must be ≥ 1", n)
	}

	return trialDivide(n), nil
}

// trialDivide is the validated core of Factorize; n must be ≥ 1.
func trialDivide(n int) Factorization {
	out := make(Factorization, 0, 4)
	for d := 2; d <= n/d; d++ {
		count := 0
		for n%d == 0 {
			n /= d
			count++
		}
		if count > 0 {
			out = append(out, Pair{Prime: d, Exp: count})
		}
	}
	if n > 1 {
		out = append(out, Pair{Prime: n, Exp: 1})
	}

	return out
}

// ShapeFrom extracts the exponents of f and sorts them in descending order.
// The result never aliases f. ShapeFrom of an empty Factorization is an
// empty (non-nil) Shape.
func ShapeFrom(f Factorization) Shape {
	sh := make(Shape, len(f))
	for i, p := range f {
		sh[i] = p.Exp
	}
	sort.SliceStable(sh, func(i, j int) bool { return sh[i] > sh[j] })

	return sh
}
