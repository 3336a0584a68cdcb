// SPDX-License-Identifier: MIT
// Package: factorshape/freq
//
// options.go — functional options for Count, Extend and TopShapes.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values.
//     Counting functions never panic.
//   • Defaults: 1 worker (sequential), automatic chunk size, no-op logger.

package freq

import "go.uber.org/zap"

const (
	// minChunk keeps per-chunk scheduling overhead small next to the work.
	minChunk = 1024
	// chunksPerWorker oversubscribes workers so uneven chunk costs
	// (larger n factor more slowly) still balance out.
	chunksPerWorker = 4
	// ctxCheckEvery is how many integers a worker counts between context checks.
	ctxCheckEvery = 4096
)

// Option customizes a counting call.
type Option func(*options)

type options struct {
	workers   int
	chunkSize int // 0 means derive from range size and workers
	logger    *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers sets the maximum number of goroutines counting in parallel.
// It panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("freq: WithWorkers requires n ≥ 1")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize fixes the number of integers per parallel work unit.
// It panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("freq: WithChunkSize requires n ≥ 1")
	}

	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger routes debug diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// chunkFor picks the chunk size for a range of span integers.
func (o options) chunkFor(span int) int {
	if o.chunkSize > 0 {
		return o.chunkSize
	}
	c := span / (o.workers * chunksPerWorker)
	if c < minChunk {
		c = minChunk
	}

	return c
}
