// SPDX-License-Identifier: MIT
// Package: factorshape/factor
//
// types.go — Pair, Factorization and Shape value types.
//
// Contract:
//   • A Factorization lists (prime, exponent) pairs with strictly increasing
//     primes and exponents ≥ 1. The empty Factorization represents 1.
//   • A Shape lists exponents in descending order. It is a value type:
//     equality is structural (Equal), and Key() yields a canonical string
//     usable as a map key.
//   • String forms are stable and used verbatim by the list output:
//     Factorization → "[(2, 3), (5, 2)]", Shape → "[3, 1]".

package factor

import (
	"strconv"
	"strings"
)

// Pair is a single prime power p^e inside a Factorization.
type Pair struct {
	Prime int // prime base, ≥ 2
	Exp   int // exponent, ≥ 1
}

// Factorization is the ordered prime-power decomposition of a positive integer.
type Factorization []Pair

// Product multiplies the prime powers back together.
// The result overflows silently for values beyond int range; Factorize never
// produces such a Factorization.
func (f Factorization) Product() int {
	prod := 1
	for _, p := range f {
		for e := 0; e < p.Exp; e++ {
			prod *= p.Prime
		}
	}

	return prod
}

// Clone returns an independent copy of f (nil stays nil).
func (f Factorization) Clone() Factorization {
	if f == nil {
		return nil
	}
	out := make(Factorization, len(f))
	copy(out, f)

	return out
}

// String renders f as "[(2, 3), (5, 2)]"; the empty factorization is "[]".
func (f Factorization) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range f {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(p.Prime))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(p.Exp))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')

	return sb.String()
}

// Shape is the descending-sorted exponent signature of a Factorization.
type Shape []int

// Equal reports whether s and o hold the same exponents in the same order.
// A nil Shape equals an empty one.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Compare orders shapes by length first, then lexicographically by content.
// It returns -1, 0 or +1. This is the tie-break order used when ranking
// shapes with equal counts.
func (s Shape) Compare(o Shape) int {
	switch {
	case len(s) < len(o):
		return -1
	case len(s) > len(o):
		return 1
	}
	for i := range s {
		switch {
		case s[i] < o[i]:
			return -1
		case s[i] > o[i]:
			return 1
		}
	}

	return 0
}

// Key returns the canonical map key of s: exponents joined by commas
// ("3,1"); the empty shape maps to "".
func (s Shape) Key() string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// Clone returns an independent copy of s (nil stays nil).
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders s as "[3, 1]"; the empty shape is "[]".
func (s Shape) String() string {
	return "[" + strings.ReplaceAll(s.Key(), ",", ", ") + "]"
}
