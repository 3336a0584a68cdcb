// SPDX-License-Identifier: MIT
// Package: factorshape/factor
//
// cache.go — memoization stores for a Session.
//
// Contract:
//   • Implementations MUST be safe for concurrent Get/Add.
//   • Stored values are treated as immutable; Session copies on the way out.
//   • Entries are never invalidated except by capacity eviction (LRU).

package factor

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache maps an integer to its Factorization.
type Cache interface {
	// Get returns the stored factorization of n, if any.
	Get(n int) (Factorization, bool)
	// Add stores f as the factorization of n.
	Add(n int, f Factorization)
	// Len reports the number of stored entries.
	Len() int
}

// MapCache is an unbounded Cache backed by a map under a RWMutex.
// It suits one-shot batch runs where the range bounds memory growth.
type MapCache struct {
	mu      sync.RWMutex
	entries map[int]Factorization
}

// NewMapCache returns an empty unbounded cache.
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[int]Factorization)}
}

// Get implements Cache.
func (c *MapCache) Get(n int) (Factorization, bool) {
	c.mu.RLock()
	f, ok := c.entries[n]
	c.mu.RUnlock()

	return f, ok
}

// Add implements Cache.
func (c *MapCache) Add(n int, f Factorization) {
	c.mu.Lock()
	c.entries[n] = f
	c.mu.Unlock()
}

// Len implements Cache.
func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// LRUCache is a bounded Cache evicting the least recently used entry once
// capacity is reached. Get updates recency, so every access takes the lock.
type LRUCache struct {
	mu    sync.Mutex
	inner *lru.Cache
}

// NewLRUCache returns a cache holding at most capacity entries.
// It panics if capacity < 1; use NewMapCache for an unbounded cache.
func NewLRUCache(capacity int) *LRUCache {
	if capacity < 1 {
		panic("factor: LRU capacity must be ≥ 1")
	}

	return &LRUCache{inner: lru.New(capacity)}
}

// Get implements Cache.
func (c *LRUCache) Get(n int) (Factorization, bool) {
	c.mu.Lock()
	v, ok := c.inner.Get(n)
	c.mu.Unlock()
	if !ok {
		return nil, false
	}

	return v.(Factorization), true
}

// Add implements Cache.
func (c *LRUCache) Add(n int, f Factorization) {
	c.mu.Lock()
	c.inner.Add(n, f)
	c.mu.Unlock()
}

// Len implements Cache.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inner.Len()
}
