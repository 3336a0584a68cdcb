// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/factorshape/config"
	"github.com/katalvlaran/factorshape/factor"
	"github.com/katalvlaran/factorshape/freq"
	"github.com/katalvlaran/factorshape/progress"
	"github.com/katalvlaran/factorshape/render"
)

// chartBarWidth is the terminal width of the longest bar.
const chartBarWidth = 50

// run executes one validated configuration.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	s := newSession(cfg.Compute)
	countOpts := []freq.Option{
		freq.WithWorkers(cfg.Compute.Workers),
		freq.WithLogger(logger),
	}
	logger.Debug("starting run",
		zap.String("mode", string(cfg.Mode)),
		zap.Int("start", cfg.Range.Start),
		zap.Int("end", cfg.Range.End),
		zap.Int("top", cfg.Range.Top),
		zap.Int("workers", cfg.Compute.Workers),
	)

	var err error
	switch cfg.Mode {
	case config.ModeList:
		err = render.WriteList(ctx, stdout, s, cfg.Range.Start, cfg.Range.End)
	case config.ModePlot:
		err = plot(ctx, cfg, s, countOpts, stdout)
	case config.ModeAnimate:
		err = animate(ctx, cfg, s, countOpts, logger, &render.TerminalSink{
			W:      stdout,
			Chart:  render.NewChart(chartBarWidth),
			Redraw: true,
			Delay:  cfg.Frames.Delay,
		})
	case config.ModeVideoOut:
		g := render.NewGIFSink(cfg.Output.Width, cfg.Output.Height, cfg.Frames.Delay)
		if err = animate(ctx, cfg, s, countOpts, logger, g); err == nil {
			err = g.WriteFile(cfg.Output.Path)
		}
		if err == nil {
			logger.Info("animation written", zap.String("path", cfg.Output.Path), zap.Int("frames", g.Frames()))
			fmt.Fprintf(stdout, "wrote %d frames to %s\n", g.Frames(), cfg.Output.Path)
		}
	default:
		err = fmt.Errorf("unsupported mode %q", cfg.Mode)
	}
	if err != nil {
		return err
	}

	st := s.Stats()
	logger.Debug("run complete",
		zap.Uint64("cache_hits", st.Hits),
		zap.Uint64("cache_misses", st.Misses),
		zap.Int("cache_entries", st.Entries),
	)

	return nil
}

// newSession builds the factorization session for the configured cache size.
func newSession(c config.Compute) *factor.Session {
	if c.CacheSize > 0 {
		return factor.NewSession(factor.WithCapacity(c.CacheSize))
	}

	return factor.NewSession()
}

// plot renders one static chart over the whole range.
func plot(ctx context.Context, cfg *config.Config, s *factor.Session, opts []freq.Option, w io.Writer) error {
	top, err := freq.TopShapes(ctx, s, cfg.Range.Start, cfg.Range.End, cfg.Range.Top, opts...)
	if err != nil {
		return err
	}
	f := progress.Frame{Index: 0, Total: 1, Start: cfg.Range.Start, Bound: cfg.Range.End, Entries: top}
	_, err = io.WriteString(w, render.NewChart(chartBarWidth).Render(render.Title(f), f.Entries))

	return err
}

// animate drives every sampled frame into sink.
func animate(ctx context.Context, cfg *config.Config, s *factor.Session, opts []freq.Option, logger *zap.Logger, sink progress.Sink) error {
	d, err := progress.New(s, cfg.Range.Start, cfg.Range.End, cfg.Range.Top,
		progress.WithMaxPerDecade(cfg.Frames.MaxPerDecade),
		progress.WithCountOptions(opts...),
		progress.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Debug("frame sequence ready", zap.Int("frames", d.Len()))

	return d.Run(ctx, sink)
}
