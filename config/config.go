// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the factorshape CLI:
// defaults, YAML loading, environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mode selects how results are presented.
type Mode string

// Supported output modes.
const (
	ModeList     Mode = "list"      // one line per integer: factorization and shape
	ModePlot     Mode = "plot"      // one static ranked bar chart over the whole range
	ModeAnimate  Mode = "animate"   // progressive charts redrawn in the terminal
	ModeVideoOut Mode = "video-out" // progressive charts persisted as an animated GIF
)

// Modes lists every supported Mode in help-text order.
var Modes = []Mode{ModeList, ModePlot, ModeAnimate, ModeVideoOut}

// Environment variables consulted by Load.
const (
	EnvWorkers  = "FACTORSHAPE_WORKERS"
	EnvLogLevel = "FACTORSHAPE_LOG_LEVEL"
)

// Config is the full run configuration.
type Config struct {
	Range   Range   `yaml:"range"`
	Mode    Mode    `yaml:"mode"`
	Frames  Frames  `yaml:"frames"`
	Compute Compute `yaml:"compute"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Range bounds the integers to analyse.
type Range struct {
	Start int `yaml:"start"` // first integer, inclusive
	End   int `yaml:"end"`   // last integer, inclusive
	Top   int `yaml:"top"`   // ranked shapes to report
}

// Frames tunes progressive output.
type Frames struct {
	MaxPerDecade int           `yaml:"max_per_decade"`
	Delay        time.Duration `yaml:"delay"` // pause between animated frames
}

// Compute tunes the aggregation engine.
type Compute struct {
	Workers   int `yaml:"workers"`    // parallel counting goroutines
	CacheSize int `yaml:"cache_size"` // 0 = unbounded factorization cache
}

// Output configures the video-out artifact.
type Output struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Logging configures zap.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Range:   Range{Start: 2, End: 1000, Top: 20},
		Mode:    ModeList,
		Frames:  Frames{MaxPerDecade: 250, Delay: 40 * time.Millisecond},
		Compute: Compute{Workers: 1, CacheSize: 0},
		Output:  Output{Path: "shapes.gif", Width: 800, Height: 480},
		Logging: Logging{Level: "warn", Format: "console"},
	}
}

// Load reads a YAML file over the defaults, then applies environment
// overrides. A missing file yields the defaults; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidConfig)
		}
		c.Compute.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks every field and reports the first violation wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Range.Start < 1:
		return invalid("range.start", c.Range.Start, "must be ≥ 1")
	case c.Range.End < 1:
		return invalid("range.end", c.Range.End, "must be ≥ 1")
	case c.Range.Start > c.Range.End:
		return invalid("range.start", c.Range.Start, fmt.Sprintf("must be ≤ range.end (%d)", c.Range.End))
	case c.Range.Top < 1:
		return invalid("range.top", c.Range.Top, "must be ≥ 1")
	case c.Frames.MaxPerDecade < 1:
		return invalid("frames.max_per_decade", c.Frames.MaxPerDecade, "must be ≥ 1")
	case c.Frames.Delay < 0:
		return invalid("frames.delay", c.Frames.Delay, "must be ≥ 0")
	case c.Compute.Workers < 1:
		return invalid("compute.workers", c.Compute.Workers, "must be ≥ 1")
	case c.Compute.CacheSize < 0:
		return invalid("compute.cache_size", c.Compute.CacheSize, "must be ≥ 0")
	}
	if !c.Mode.Valid() {
		return invalid("mode", c.Mode, fmt.Sprintf("must be one of %v", Modes))
	}
	if c.Mode == ModeVideoOut {
		switch {
		case c.Output.Path == "":
			return invalid("output.path", c.Output.Path, "must be set for video-out")
		case c.Output.Width < 200 || c.Output.Height < 120:
			return invalid("output.size", fmt.Sprintf("%dx%d", c.Output.Width, c.Output.Height), "must be at least 200x120")
		}
	}

	return nil
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	for _, v := range Modes {
		if m == v {
			return true
		}
	}

	return false
}

func invalid(field string, value interface{}, why string) error {
	return fmt.Errorf("%s=%v %s: %w", field, value, why, ErrInvalidConfig)
}
