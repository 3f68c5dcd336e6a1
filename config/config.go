// SPDX-License-Identifier: MIT

// Package config loads orgmetrics settings from defaults, an optional YAML
// file and ORGMETRICS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/logging"
	"github.com/katalvlaran/orgindex/orgmetrics"
	"github.com/katalvlaran/orgindex/series"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all orgmetrics settings.
type Config struct {
	// Connectivity is the adjacency rule: "four" (default) or "eight".
	Connectivity string `json:"connectivity" yaml:"connectivity"`

	// Cyclic makes the x axis periodic for labeling and distances.
	Cyclic bool `json:"cyclic" yaml:"cyclic"`

	// Workers bounds concurrently processed time slices; ≤ 1 is sequential.
	Workers int `json:"workers" yaml:"workers"`

	// ProgressEvery is the progress report cadence in slices; 0 selects
	// 1000, or 5000 for long series.
	ProgressEvery int `json:"progress_every" yaml:"progress_every"`

	// MinDistance floors pairwise centroid distances; 0 selects 1e-6.
	MinDistance float64 `json:"min_distance" yaml:"min_distance"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Connectivity: cluster.Conn4.String(),
		Workers:      1,
		MinDistance:  orgmetrics.DefaultMinDistance,
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys absent
// from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := cluster.ParseConnectivity(c.Connectivity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must be non-negative, got %d", ErrInvalidConfig, c.ProgressEvery)
	}
	if c.MinDistance < 0 || math.IsNaN(c.MinDistance) || math.IsInf(c.MinDistance, 0) {
		return fmt.Errorf("%w: min_distance must be finite and non-negative, got %g", ErrInvalidConfig, c.MinDistance)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s (valid: info, debug, trace, or empty for default)",
			ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

// SeriesOptions converts the configuration into series.Options. It fails
// when Validate does.
func (c *Config) SeriesOptions() (series.Options, error) {
	if err := c.Validate(); err != nil {
		return series.Options{}, err
	}
	conn, _ := cluster.ParseConnectivity(c.Connectivity)

	opts := series.DefaultOptions()
	opts.Cluster = cluster.Options{Conn: conn, Cyclic: c.Cyclic}
	opts.Metrics = orgmetrics.Options{Cyclic: c.Cyclic, MinDistance: c.MinDistance}
	opts.Workers = c.Workers
	opts.ProgressEvery = c.ProgressEvery
	return opts, nil
}

// applyEnvOverrides applies ORGMETRICS_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ORGMETRICS_CONNECTIVITY"); v != "" {
		cfg.Connectivity = v
	}

	if v := os.Getenv("ORGMETRICS_CYCLIC"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ORGMETRICS_CYCLIC: %w", err)
		}
		cfg.Cyclic = b
	}

	if v := os.Getenv("ORGMETRICS_WORKERS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ORGMETRICS_WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	if v := os.Getenv("ORGMETRICS_PROGRESS_EVERY"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ORGMETRICS_PROGRESS_EVERY: %w", err)
		}
		cfg.ProgressEvery = n
	}

	if v := os.Getenv("ORGMETRICS_MIN_DISTANCE"); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("ORGMETRICS_MIN_DISTANCE: %w", err)
		}
		cfg.MinDistance = f
	}

	if v := os.Getenv("ORGMETRICS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}
