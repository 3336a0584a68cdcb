// Package frames_test checks decade bucketing and the frame sequence
// contract: ordering, bounds, per-bucket caps and the worked examples.
package frames_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorshape/frames"
)

func TestSample_Validation(t *testing.T) {
	_, err := frames.Sample(0, 10, 5)
	assert.ErrorIs(t, err, frames.ErrInvalidArgument)
	_, err = frames.Sample(1, 10, 0)
	assert.ErrorIs(t, err, frames.ErrInvalidArgument)
	_, err = frames.Sample(1, 10, -2)
	assert.ErrorIs(t, err, frames.ErrInvalidArgument)
}

func TestSample_StartAfterEnd(t *testing.T) {
	got, err := frames.Sample(50, 10, 250)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, frames.Buckets(50, 10))
}

func TestBuckets_TwoToThousand(t *testing.T) {
	want := []frames.Bucket{{2, 19}, {20, 199}, {200, 1000}}
	if diff := cmp.Diff(want, frames.Buckets(2, 1000)); diff != "" {
		t.Fatalf("Buckets(2, 1000) mismatch (-want +got):\n%s", diff)
	}
}

func TestSample_TwoToThousand(t *testing.T) {
	got, err := frames.Sample(2, 1000, 250)
	require.NoError(t, err)

	// First two decades are narrower than the cap: every integer appears.
	for n := 2; n <= 199; n++ {
		require.Contains(t, got, n)
	}
	assert.Len(t, got, 18+180+250)
	assert.Equal(t, 2, got[0])
	assert.Equal(t, 1000, got[len(got)-1])
	assert.Contains(t, got, 200)
	assertContract(t, got, 2, 1000, 250)
}

func TestPoints_EvenSpacing(t *testing.T) {
	got := frames.Points(frames.Bucket{Lo: 0, Hi: 10}, 3)
	assert.Equal(t, []int{0, 5, 10}, got)

	got = frames.Points(frames.Bucket{Lo: 10, Hi: 99}, 4)
	assert.Equal(t, []int{10, 40, 69, 99}, got) // 10 + round(k·89/3)

	assert.Equal(t, []int{7}, frames.Points(frames.Bucket{Lo: 7, Hi: 7}, 250))
	assert.Equal(t, []int{7}, frames.Points(frames.Bucket{Lo: 7, Hi: 70}, 1))
	assert.Nil(t, frames.Points(frames.Bucket{Lo: 7, Hi: 70}, 0))
}

func TestPoints_HalvesRoundUp(t *testing.T) {
	// midpoint of [0, 5] is 2.5
	assert.Equal(t, []int{0, 3, 5}, frames.Points(frames.Bucket{Lo: 0, Hi: 5}, 3))
	// 100 + 1·89/2 = 144.5; 100 + 3·89/2 = 233.5
	assert.Equal(t, []int{100, 145, 189, 234, 278}, frames.Points(frames.Bucket{Lo: 100, Hi: 278}, 5))
}

func TestPoints_NarrowBucketEveryInteger(t *testing.T) {
	got := frames.Points(frames.Bucket{Lo: 20, Hi: 29}, 250)
	assert.Equal(t, []int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}, got)
}

func TestSample_Contract(t *testing.T) {
	cases := []struct{ start, end, m int }{
		{1, 1, 250},
		{1, 9, 3},
		{2, 10_000_000, 250},
		{5, 123_456, 7},
		{999, 1001, 250},
		{3, 30, 1},
	}
	for _, tc := range cases {
		got, err := frames.Sample(tc.start, tc.end, tc.m)
		require.NoError(t, err)
		assertContract(t, got, tc.start, tc.end, tc.m)
	}
}

func TestSample_LargeValuesNoOverflow(t *testing.T) {
	const start = 1 << 61
	got, err := frames.Sample(start, start+1_000_000, 10)
	require.NoError(t, err)
	assertContract(t, got, start, start+1_000_000, 10)
	assert.Equal(t, start+1_000_000, got[len(got)-1])
}

func TestSample_Bounded(t *testing.T) {
	got, err := frames.Sample(2, 10_000_000, 250)
	require.NoError(t, err)
	decades := len(frames.Buckets(2, 10_000_000))
	assert.LessOrEqual(t, len(got), 250*decades)
}

// assertContract checks ordering, bounds and the per-bucket cap.
func assertContract(t *testing.T, got []int, start, end, m int) {
	t.Helper()
	require.NotEmpty(t, got)
	assert.GreaterOrEqual(t, got[0], start)
	assert.LessOrEqual(t, got[len(got)-1], end)
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i], got[i-1], "not strictly increasing at %d", i)
	}
	for _, b := range frames.Buckets(start, end) {
		in := 0
		for _, v := range got {
			if v >= b.Lo && v <= b.Hi {
				in++
			}
		}
		assert.LessOrEqual(t, in, m, "bucket %v over cap", b)
		assert.Positive(t, in, "bucket %v got no frames", b)
	}
}
