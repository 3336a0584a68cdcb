// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"io"
	"time"

	"github.com/katalvlaran/factorshape/progress"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// TerminalSink draws every frame as a Chart on w. With Redraw set it clears
// the screen first, so frames replace each other in place; it then waits
// Delay before returning (skipped after the last frame).
type TerminalSink struct {
	W      io.Writer
	Chart  *Chart
	Redraw bool
	Delay  time.Duration
}

// Render implements progress.Sink.
func (t *TerminalSink) Render(ctx context.Context, f progress.Frame) error {
	out := t.Chart.Render(Title(f), f.Entries)
	if t.Redraw {
		out = clearScreen + out
	}
	if _, err := io.WriteString(t.W, out); err != nil {
		return err
	}
	if t.Delay <= 0 || f.Last() {
		return nil
	}

	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
