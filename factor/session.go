// SPDX-License-Identifier: MIT

package factor

import "sync/atomic"

// Session owns the memoization state for one computation (one CLI run, one
// batch job). Independent Sessions never share cached factorizations.
//
// A Session is safe for concurrent use when its Cache is (both built-in
// caches are). Concurrent misses on the same n may both compute; the results
// are identical, so the last Add wins harmlessly.
type Session struct {
	cache  Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCache installs a custom Cache. It panics on nil.
func WithCache(c Cache) SessionOption {
	if c == nil {
		panic("factor: WithCache(nil)")
	}

	return func(s *Session) {
		s.cache = c
	}
}

// WithCapacity bounds the Session cache to capacity entries using an LRU
// policy. It panics if capacity < 1.
func WithCapacity(capacity int) SessionOption {
	c := NewLRUCache(capacity)

	return func(s *Session) {
		s.cache = c
	}
}

// NewSession returns a Session with an unbounded MapCache unless an option
// overrides it. Later options win.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewMapCache()
	}

	return s
}

// Factorize returns the prime factorization of n, consulting the Session
// cache first. Results for the same n are structurally identical on every
// call. The returned slice is a private copy.
//
// Errors: ErrInvalidArgument (wrapped) for n ≤ 0; the cache is untouched.
func (s *Session) Factorize(n int) (Factorization, error) {
	if n <= 0 {
		return nil, invalidf(opFactorize, "n=%d must be ≥ 1", n)
	}

	return s.lookup(n).Clone(), nil
}

// ShapeOf returns the shape of n: the exponents of its factorization sorted
// in descending order. ShapeOf(1) is the empty shape.
//
// Errors: ErrInvalidArgument (wrapped) for n ≤ 0.
func (s *Session) ShapeOf(n int) (Shape, error) {
	if n <= 0 {
		return nil, invalidf(opShapeOf, "n=%d must be ≥ 1", n)
	}

	return ShapeFrom(s.lookup(n)), nil
}

// lookup returns the cached (shared, read-only) factorization of n ≥ 1,
// computing and storing it on a miss.
func (s *Session) lookup(n int) Factorization {
	if f, ok := s.cache.Get(n); ok {
		s.hits.Add(1)
		return f
	}
	s.misses.Add(1)
	f := trialDivide(n)
	s.cache.Add(n, f)

	return f
}

// Stats is a snapshot of Session cache activity.
type Stats struct {
	Hits    uint64 // lookups served from the cache
	Misses  uint64 // lookups that ran trial division
	Entries int    // entries currently held by the cache
}

// Stats returns the current cache counters.
func (s *Session) Stats() Stats {
	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Entries: s.cache.Len(),
	}
}
