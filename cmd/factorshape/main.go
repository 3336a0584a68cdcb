// SPDX-License-Identifier: MIT

// Command factorshape factorizes every integer in a range, classifies each
// by its exponent shape and reports how often every shape occurs.
//
//	factorshape --start 2 --end 100                  # list factorizations
//	factorshape --end 1000000 --mode plot --top 15   # ranked bar chart
//	factorshape --end 100000 --mode animate          # progressive chart
//	factorshape --end 100000 --mode video-out --out shapes.gif
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/factorshape/config"
	"github.com/katalvlaran/factorshape/internal/logging"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by invalid input rather than by the run.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// cliFlags mirrors the command-line surface before it is folded into a
// config.Config.
type cliFlags struct {
	configPath   string
	start, end   int
	top          int
	mode         string
	maxPerDecade int
	workers      int
	cacheSize    int
	out          string
	delay        time.Duration
	verbose      bool
}

// newRootCmd builds the command tree writing results to stdout.
func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		flags  cliFlags
		cfg    *config.Config
		logger *zap.Logger
	)
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "factorshape",
		Short: "Prime factorization shapes and their frequencies over a range",
		Long: `factorshape computes the prime factorization of every integer in
[start, end], reduces it to its shape (exponents sorted descending, e.g.
12 = 2²·3 → [2, 1]) and ranks how often each shape occurs.

Modes:
  list       print "n: factors=..., shape=..." per integer
  plot       one ranked bar chart for the whole range
  animate    progressive charts over a logarithmic sample of the range
  video-out  the animate frames written to an animated GIF`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = resolveConfig(cmd, flags)
			if err != nil {
				return usageError{err}
			}
			logger, err = logging.New(cfg.Logging)
			if err != nil {
				return usageError{err}
			}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, logger, stdout)
		},
	}
	cmd.SetOut(stdout)

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	f.IntVar(&flags.start, "start", def.Range.Start, "first integer to factorize (inclusive)")
	f.IntVar(&flags.end, "end", def.Range.End, "last integer to factorize (inclusive)")
	f.IntVar(&flags.top, "top", def.Range.Top, "number of ranked shapes to report")
	f.StringVar(&flags.mode, "mode", string(def.Mode), "output mode: "+modeList())
	f.IntVar(&flags.maxPerDecade, "max-per-decade", def.Frames.MaxPerDecade, "maximum frames per decade (animate, video-out)")
	f.IntVar(&flags.workers, "workers", def.Compute.Workers, "parallel counting goroutines")
	f.IntVar(&flags.cacheSize, "cache-size", def.Compute.CacheSize, "factorization cache entries (0 = unbounded)")
	f.StringVarP(&flags.out, "out", "o", def.Output.Path, "video-out GIF path")
	f.DurationVar(&flags.delay, "delay", def.Frames.Delay, "pause between animated frames")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	return cmd
}

// resolveConfig layers defaults, the YAML file, the environment and finally
// explicitly set flags, then validates the result.
func resolveConfig(cmd *cobra.Command, fl cliFlags) (*config.Config, error) {
	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("start") {
		cfg.Range.Start = fl.start
	}
	if changed("end") {
		cfg.Range.End = fl.end
	}
	if changed("top") {
		cfg.Range.Top = fl.top
	}
	if changed("mode") {
		cfg.Mode = config.Mode(fl.mode)
	}
	if changed("max-per-decade") {
		cfg.Frames.MaxPerDecade = fl.maxPerDecade
	}
	if changed("delay") {
		cfg.Frames.Delay = fl.delay
	}
	if changed("workers") {
		cfg.Compute.Workers = fl.workers
	}
	if changed("cache-size") {
		cfg.Compute.CacheSize = fl.cacheSize
	}
	if changed("out") {
		cfg.Output.Path = fl.out
	}
	if fl.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func modeList() string {
	names := make([]string, len(config.Modes))
	for i, m := range config.Modes {
		names[i] = string(m)
	}

	return strings.Join(names, ", ")
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "usage error: %v\nRun 'factorshape --help' for usage.\n", err)
			return exitUsage
		}
		fmt.Fprintf(stderr, "error: %v\n", err)

		return exitError
	}

	return exitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
