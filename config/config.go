// SPDX-License-Identifier: MIT

// Package config holds the engine and CLI settings: built-in defaults,
// overlaid by an optional YAML file, overlaid by FAHP_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fahp/weights"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the report package.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type EngineConfig struct {
	Strategy      string  `yaml:"strategy"`
	Parallel      bool    `yaml:"parallel"`
	ParallelLimit int     `yaml:"parallel_limit"`
	CRThreshold   float64 `yaml:"cr_threshold"`
	Complete      bool    `yaml:"require_complete"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
	TOPSIS    bool   `yaml:"topsis"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Strategy:    weights.NameGeometricMean,
			CRThreshold: 0.1,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 4,
			TOPSIS:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path != "") and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FAHP_STRATEGY"); v != "" {
		cfg.Engine.Strategy = v
	}
	if v := os.Getenv("FAHP_PARALLEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.Parallel = b
		}
	}
	if v := os.Getenv("FAHP_CR_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.CRThreshold = f
		}
	}
	if v := os.Getenv("FAHP_REQUIRE_COMPLETE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.Complete = b
		}
	}
	if v := os.Getenv("FAHP_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("FAHP_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Precision = n
		}
	}
	if v := os.Getenv("FAHP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FAHP_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate rejects unknown strategies, formats and levels, thresholds
// outside (0, 1] and precisions outside 1..12.
func (c *Config) Validate() error {
	if _, err := weights.StrategyByName(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: engine.strategy %q", ErrInvalidConfig, c.Engine.Strategy)
	}
	if !(c.Engine.CRThreshold > 0 && c.Engine.CRThreshold <= 1) {
		return fmt.Errorf("%w: engine.cr_threshold %g", ErrInvalidConfig, c.Engine.CRThreshold)
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Precision < 1 || c.Output.Precision > 12 {
		return fmt.Errorf("%w: output.precision %d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// Strategy resolves Engine.Strategy.
func (c *Config) Strategy() (weights.Strategy, error) {
	s, err := weights.StrategyByName(c.Engine.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s, nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, l.Level)
	}

	return lvl, nil
}
