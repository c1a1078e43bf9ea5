// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fahp/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"FAHP_STRATEGY", "FAHP_PARALLEL", "FAHP_CR_THRESHOLD", "FAHP_REQUIRE_COMPLETE",
	"FAHP_OUTPUT_FORMAT", "FAHP_PRECISION", "FAHP_LOG_LEVEL", "FAHP_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, weights.NameGeometricMean, cfg.Engine.Strategy)
	assert.False(t, cfg.Engine.Parallel)
	assert.Equal(t, 0.1, cfg.Engine.CRThreshold)
	assert.False(t, cfg.Engine.Complete)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.True(t, cfg.Output.TOPSIS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, weights.NameGeometricMean, s.Name())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "fahp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine:
  strategy: chang-extent
  parallel: true
  parallel_limit: 2
output:
  format: markdown
  precision: 3
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chang-extent", cfg.Engine.Strategy)
	assert.True(t, cfg.Engine.Parallel)
	assert.Equal(t, 2, cfg.Engine.ParallelLimit)
	assert.Equal(t, 0.1, cfg.Engine.CRThreshold, "unset keys keep defaults")
	assert.Equal(t, FormatMarkdown, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Output.Precision)

	lvl, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAHP_STRATEGY", "chang")
	t.Setenv("FAHP_PARALLEL", "true")
	t.Setenv("FAHP_CR_THRESHOLD", "0.2")
	t.Setenv("FAHP_REQUIRE_COMPLETE", "1")
	t.Setenv("FAHP_OUTPUT_FORMAT", "html")
	t.Setenv("FAHP_PRECISION", "6")
	t.Setenv("FAHP_LOG_LEVEL", "warn")
	t.Setenv("FAHP_LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "chang", cfg.Engine.Strategy)
	assert.True(t, cfg.Engine.Parallel)
	assert.Equal(t, 0.2, cfg.Engine.CRThreshold)
	assert.True(t, cfg.Engine.Complete)
	assert.Equal(t, FormatHTML, cfg.Output.Format)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Unparsable numbers are ignored.
	t.Setenv("FAHP_PRECISION", "many")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Output.Precision)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"strategy":  func(c *Config) { c.Engine.Strategy = "eigen" },
		"threshold": func(c *Config) { c.Engine.CRThreshold = 0 },
		"format":    func(c *Config) { c.Output.Format = "pdf" },
		"precision": func(c *Config) { c.Output.Precision = -1 },
		"zeroprec":  func(c *Config) { c.Output.Precision = 0 },
		"level":     func(c *Config) { c.Logging.Level = "loud" },
		"logformat": func(c *Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("FAHP_STRATEGY", "eigen")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
