// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/factorshape/factor"
	"github.com/katalvlaran/factorshape/frames"
	"github.com/katalvlaran/factorshape/freq"
)

// ErrInvalidArgument is factor.ErrInvalidArgument, shared across packages.
var ErrInvalidArgument = factor.ErrInvalidArgument

// ErrNilSink is returned by Run when no sink is supplied.
var ErrNilSink = errors.New("progress: sink is nil")

// Frame is one incremental view handed to a sink.
type Frame struct {
	Index   int          // 0-based position in the frame sequence
	Total   int          // number of frames in the sequence
	Start   int          // left bound of the range (constant)
	Bound   int          // right bound of this frame, inclusive
	Entries []freq.Entry // top shapes of [Start, Bound], ranked
}

// Last reports whether f is the final frame.
func (f Frame) Last() bool { return f.Index == f.Total-1 }

// Sink consumes frames in order.
type Sink interface {
	Render(ctx context.Context, f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, f Frame) error

// Render implements Sink.
func (fn SinkFunc) Render(ctx context.Context, f Frame) error { return fn(ctx, f) }

// Option configures a Driver.
type Option func(*Driver)

// WithMaxPerDecade sets the frame cap per decade bucket. It panics if m < 1.
func WithMaxPerDecade(m int) Option {
	if m < 1 {
		panic("progress: WithMaxPerDecade requires m ≥ 1")
	}

	return func(d *Driver) {
		d.maxPerDecade = m
	}
}

// WithCountOptions forwards options (workers, chunk size) to every
// freq.Table.Extend call.
func WithCountOptions(opts ...freq.Option) Option {
	return func(d *Driver) {
		d.countOpts = append(d.countOpts, opts...)
	}
}

// WithLogger routes per-frame debug logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// Driver yields frames for one progressive aggregation request.
// A Driver is single-use and not safe for concurrent calls to Next.
type Driver struct {
	session      *factor.Session
	start, top   int
	maxPerDecade int
	countOpts    []freq.Option
	logger       *zap.Logger

	bounds  []int
	next    int // index of the next frame to produce
	counted int // last bound already folded into table
	table   *freq.Table
}

// New validates the request and computes its frame sequence.
//
// Errors (ErrInvalidArgument, wrapped): nil session, start < 1, end < start,
// top < 1.
func New(s *factor.Session, start, end, top int, opts ...Option) (*Driver, error) {
	switch {
	case s == nil:
		return nil, fmt.Errorf("progress.New: nil session: %w", ErrInvalidArgument)
	case start < 1:
		return nil, fmt.Errorf("progress.New: start=%d must be ≥ 1: %w", start, ErrInvalidArgument)
	case end < start:
		return nil, fmt.Errorf("progress.New: end=%d must be ≥ start=%d: %w", end, start, ErrInvalidArgument)
	case top < 1:
		return nil, fmt.Errorf("progress.New: top=%d must be ≥ 1: %w", top, ErrInvalidArgument)
	}
	d := &Driver{
		session:      s,
		start:        start,
		top:          top,
		maxPerDecade: frames.DefaultMaxPerDecade,
		logger:       zap.NewNop(),
		counted:      start - 1,
		table:        freq.NewTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	bounds, err := frames.Sample(start, end, d.maxPerDecade)
	if err != nil {
		return nil, err
	}
	d.bounds = bounds

	return d, nil
}

// Bounds returns a copy of the frame sequence.
func (d *Driver) Bounds() []int {
	return append([]int(nil), d.bounds...)
}

// Len returns the number of frames.
func (d *Driver) Len() int { return len(d.bounds) }

// Next produces the next frame. ok is false once every frame was produced.
// On error the Driver state is unchanged and Next may be retried.
func (d *Driver) Next(ctx context.Context) (f Frame, ok bool, err error) {
	if d.next >= len(d.bounds) {
		return Frame{}, false, nil
	}
	bound := d.bounds[d.next]
	if bound > d.counted {
		if err := d.table.Extend(ctx, d.session, d.counted+1, bound, d.countOpts...); err != nil {
			return Frame{}, false, err
		}
		d.counted = bound
	}
	f = Frame{
		Index:   d.next,
		Total:   len(d.bounds),
		Start:   d.start,
		Bound:   bound,
		Entries: d.table.Top(d.top),
	}
	d.next++
	d.logger.Debug("frame ready",
		zap.Int("index", f.Index),
		zap.Int("bound", f.Bound),
		zap.Int("distinct_shapes", d.table.Len()),
	)

	return f, true, nil
}

// Run pulls every remaining frame and renders it, stopping at the first
// error from counting, the sink, or ctx.
func (d *Driver) Run(ctx context.Context, sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, ok, err := d.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink.Render(ctx, f); err != nil {
			return fmt.Errorf("render frame %d (bound %d): %w", f.Index, f.Bound, err)
		}
	}
}
