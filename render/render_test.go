package render_test

import (
	"bytes"
	"context"
	"image/gif"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorshape/factor"
	"github.com/katalvlaran/factorshape/freq"
	"github.com/katalvlaran/factorshape/progress"
	"github.com/katalvlaran/factorshape/render"
)

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteList(context.Background(), &buf, factor.NewSession(), 2, 5))
	assert.Equal(t, ""+
		"2: factors=[(2, 1)], shape=[1]\n"+
		"3: factors=[(3, 1)], shape=[1]\n"+
		"4: factors=[(2, 2)], shape=[2]\n"+
		"5: factors=[(5, 1)], shape=[1]\n", buf.String())

	buf.Reset()
	require.NoError(t, render.WriteList(context.Background(), &buf, factor.NewSession(), 200, 200))
	assert.Equal(t, "200: factors=[(2, 3), (5, 2)], shape=[3, 2]\n", buf.String())

	buf.Reset()
	require.NoError(t, render.WriteList(context.Background(), &buf, factor.NewSession(), 250, 250))
	assert.Equal(t, "250: factors=[(2, 1), (5, 3)], shape=[3, 1]\n", buf.String())
}

func TestWriteList_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := render.WriteList(context.Background(), &buf, factor.NewSession(), 0, 3)
	assert.ErrorIs(t, err, factor.ErrInvalidArgument)
	err = render.WriteList(context.Background(), &buf, factor.NewSession(), 5, 3)
	assert.ErrorIs(t, err, factor.ErrInvalidArgument)
}

func sampleFrame(t *testing.T, index, total int) progress.Frame {
	t.Helper()
	entries, err := freq.TopShapes(context.Background(), factor.NewSession(), 2, 1000, 5)
	require.NoError(t, err)

	return progress.Frame{Index: index, Total: total, Start: 2, Bound: 1000, Entries: entries}
}

func TestChart_Render(t *testing.T) {
	f := sampleFrame(t, 0, 1)
	out := render.NewChart(40).Render(render.Title(f), f.Entries)

	assert.Contains(t, out, "Shapes of 2 … 1,000")
	assert.NotContains(t, out, "frame", "single-frame charts carry no frame counter")
	for _, e := range f.Entries {
		assert.Contains(t, out, e.Shape.String())
	}
	assert.Contains(t, out, "█")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), len(f.Entries)+1)
}

func TestTitle_FrameCounter(t *testing.T) {
	f := progress.Frame{Index: 2, Total: 448, Start: 2, Bound: 12345}
	assert.Equal(t, "Shapes of 2 … 12,345 (frame 3/448)", render.Title(f))
}

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	sink := &render.TerminalSink{W: &buf, Chart: render.NewChart(20), Redraw: true}
	require.NoError(t, sink.Render(context.Background(), sampleFrame(t, 0, 2)))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[H\x1b[2J"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Delay = time.Hour
	err := sink.Render(ctx, sampleFrame(t, 0, 2))
	assert.ErrorIs(t, err, context.Canceled)

	// No wait after the final frame.
	require.NoError(t, sink.Render(ctx, sampleFrame(t, 1, 2)))
}

func TestGIFSink(t *testing.T) {
	g := render.NewGIFSink(400, 240, 30*time.Millisecond)
	assert.ErrorIs(t, g.Encode(&bytes.Buffer{}), render.ErrNoFrames)

	d, err := progress.New(factor.NewSession(), 2, 500, 6, progress.WithMaxPerDecade(5))
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background(), g))
	assert.Equal(t, d.Len(), g.Frames())

	path := filepath.Join(t.TempDir(), "shapes.gif")
	require.NoError(t, g.WriteFile(path))

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, decoded.Image, d.Len())
	assert.Equal(t, 400, decoded.Config.Width)
	assert.Equal(t, 3, decoded.Delay[0])
	assert.Equal(t, 200, decoded.Delay[len(decoded.Delay)-1], "final frame is held")
}

func TestGIFSink_TooNarrow(t *testing.T) {
	g := render.NewGIFSink(40, 240, 0)
	err := g.Render(context.Background(), sampleFrame(t, 0, 1))
	assert.Error(t, err)
	assert.Zero(t, g.Frames())
}
