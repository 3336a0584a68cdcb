package factor_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorshape/factor"
)

func TestSession_ShapeOfKnown(t *testing.T) {
	s := factor.NewSession()
	cases := map[int]factor.Shape{
		1:   {},
		250: {3, 1},
		30:  {1, 1, 1},
		12:  {2, 1},
		18:  {2, 1},
		7:   {1},
	}
	for n, want := range cases {
		got, err := s.ShapeOf(n)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "ShapeOf(%d) = %v; want %v", n, got, want)
	}
}

func TestSession_InvalidDoesNotTouchCache(t *testing.T) {
	s := factor.NewSession()
	_, err := s.Factorize(0)
	assert.ErrorIs(t, err, factor.ErrInvalidArgument)
	_, err = s.ShapeOf(-5)
	assert.ErrorIs(t, err, factor.ErrInvalidArgument)
	assert.Equal(t, factor.Stats{}, s.Stats())
}

func TestSession_Idempotent(t *testing.T) {
	s := factor.NewSession()
	for n := 1; n <= 300; n++ {
		a, err := s.Factorize(n)
		require.NoError(t, err)
		b, err := s.Factorize(n)
		require.NoError(t, err)
		require.Equal(t, a, b, "n=%d", n)

		sa, err := s.ShapeOf(n)
		require.NoError(t, err)
		sb, err := s.ShapeOf(n)
		require.NoError(t, err)
		require.Equal(t, sa, sb, "n=%d", n)

		direct, err := factor.Factorize(n)
		require.NoError(t, err)
		require.Equal(t, direct, a, "cached result must match uncached for %d", n)
	}
}

func TestSession_HitsAndMisses(t *testing.T) {
	s := factor.NewSession()
	_, _ = s.Factorize(60)
	_, _ = s.Factorize(60)
	_, _ = s.ShapeOf(60)

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, 1, st.Entries)
}

func TestSession_ResultIsPrivateCopy(t *testing.T) {
	s := factor.NewSession()
	f, err := s.Factorize(200)
	require.NoError(t, err)
	f[0].Exp = 42

	again, err := s.Factorize(200)
	require.NoError(t, err)
	assert.Equal(t, "[(2, 3), (5, 2)]", again.String())
}

func TestSession_LRUCapacity(t *testing.T) {
	s := factor.NewSession(factor.WithCapacity(8))
	for n := 1; n <= 100; n++ {
		_, err := s.ShapeOf(n)
		require.NoError(t, err)
	}
	assert.Equal(t, 8, s.Stats().Entries)

	// Evicted entries are recomputed with identical results.
	f, err := s.Factorize(2)
	require.NoError(t, err)
	assert.Equal(t, factor.Factorization{{2, 1}}, f)
}

func TestSession_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { factor.WithCapacity(0) })
	assert.Panics(t, func() { factor.WithCache(nil) })
}

func TestSession_CustomCache(t *testing.T) {
	c := factor.NewMapCache()
	s := factor.NewSession(factor.WithCache(c))
	_, err := s.Factorize(12)
	require.NoError(t, err)
	got, ok := c.Get(12)
	require.True(t, ok)
	assert.Equal(t, factor.Factorization{{2, 2}, {3, 1}}, got)
}

// TestSession_Concurrent hammers one Session from many goroutines; run with
// -race to check the cache discipline.
func TestSession_Concurrent(t *testing.T) {
	for name, s := range map[string]*factor.Session{
		"map": factor.NewSession(),
		"lru": factor.NewSession(factor.WithCapacity(64)),
	} {
		t.Run(name, func(t *testing.T) {
			const workers = 16
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func() {
					defer wg.Done()
					for n := 1; n <= 500; n++ {
						f, err := s.Factorize(n)
						if err != nil || f.Product() != n {
							t.Errorf("Factorize(%d) = %v, %v", n, f, err)
							return
						}
					}
				}()
			}
			wg.Wait()
			st := s.Stats()
			assert.Equal(t, uint64(workers*500), st.Hits+st.Misses)
		})
	}
}
