// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/factorshape/progress"
)

// ErrNoFrames is returned when encoding a GIFSink that never rendered.
var ErrNoFrames = errors.New("render: no frames to encode")

// GIF layout, in pixels.
const (
	gifMargin    = 12
	gifTitleH    = 28
	gifMaxBarH   = 22
	gifHoldLast  = 200 // hundredths of a second the final frame stays up
	glyphAdvance = 7   // basicfont.Face7x13 advance
)

var (
	gifBackground = color.RGBA{0xf4, 0xf5, 0xf6, 0xff}
	gifForeground = color.RGBA{0x10, 0x1f, 0x38, 0xff}
	gifBar        = color.RGBA{0x4d, 0xb6, 0xac, 0xff}
	gifMuted      = color.RGBA{0x6b, 0x7a, 0x90, 0xff}

	gifPalette = color.Palette{gifBackground, gifForeground, gifBar, gifMuted}
)

// GIFSink rasterizes every frame as a bar chart and accumulates an animated
// GIF, written by Encode or WriteFile once the driver finishes.
type GIFSink struct {
	width, height int
	delay         int // hundredths of a second
	anim          gif.GIF
}

// NewGIFSink returns a sink producing width×height frames shown for delay
// each (rounded to GIF's 10ms resolution, at least 10ms).
func NewGIFSink(width, height int, delay time.Duration) *GIFSink {
	d := int(delay / (10 * time.Millisecond))
	if d < 1 {
		d = 1
	}

	return &GIFSink{width: width, height: height, delay: d}
}

// Frames returns the number of frames rendered so far.
func (g *GIFSink) Frames() int { return len(g.anim.Image) }

// Render implements progress.Sink.
func (g *GIFSink) Render(_ context.Context, f progress.Frame) error {
	img := image.NewPaletted(image.Rect(0, 0, g.width, g.height), gifPalette)
	draw.Draw(img, img.Bounds(), image.NewUniform(gifBackground), image.Point{}, draw.Src)

	drawText(img, gifMargin, gifMargin+11, Title(f), gifForeground)

	if n := len(f.Entries); n > 0 {
		labelW, countW, maxCount := 0, 0, 0
		for _, e := range f.Entries {
			labelW = max(labelW, len(e.Shape.String()))
			countW = max(countW, len(humanize.Comma(int64(e.Count))))
			maxCount = max(maxCount, e.Count)
		}
		labelPx := labelW*glyphAdvance + 8
		countPx := countW*glyphAdvance + 8
		barMax := g.width - 2*gifMargin - labelPx - countPx
		if barMax < 1 {
			return fmt.Errorf("gif frame %dpx wide cannot fit labels", g.width)
		}

		top := gifMargin + gifTitleH
		rowH := (g.height - top - gifMargin) / n
		barH := min(rowH*3/4, gifMaxBarH)
		if barH < 1 {
			return fmt.Errorf("gif frame %dpx tall cannot fit %d rows", g.height, n)
		}

		for i, e := range f.Entries {
			y := top + i*rowH
			baseline := y + (barH+11)/2
			label := e.Shape.String()
			drawText(img, gifMargin+labelPx-8-len(label)*glyphAdvance, baseline, label, gifForeground)

			x0 := gifMargin + labelPx
			w := barCells(e.Count, maxCount, barMax)
			draw.Draw(img, image.Rect(x0, y, x0+w, y+barH), image.NewUniform(gifBar), image.Point{}, draw.Src)
			drawText(img, x0+w+6, baseline, humanize.Comma(int64(e.Count)), gifMuted)
		}
	}

	delay := g.delay
	if f.Last() {
		delay = max(delay, gifHoldLast)
	}
	g.anim.Image = append(g.anim.Image, img)
	g.anim.Delay = append(g.anim.Delay, delay)

	return nil
}

// Encode writes the animation to w.
func (g *GIFSink) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}

	return gif.EncodeAll(w, &g.anim)
}

// WriteFile encodes the animation into the file at path.
func (g *GIFSink) WriteFile(path string) (err error) {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return g.Encode(fh)
}

// drawText draws s with its baseline at (x, y).
func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
