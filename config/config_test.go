package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waypath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Graph)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
graph: city.yaml
format: dot
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "city.yaml", cfg.Graph)
	assert.Equal(t, "dot", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Color)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeFile(t, "format: [text"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	_, err := config.Load(writeFile(t, "fromat: dot\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fromat")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"format", func(c *config.Config) { c.Format = "svg" }},
		{"level", func(c *config.Config) { c.Log.Level = "trace" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.LogConfig{Level: "info", Format: "json"}.NewLogger(&buf)
	log.Debug("hidden")
	log.Info("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)

	assert.Equal(t, slog.LevelDebug, config.LogConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelError, config.LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, config.LogConfig{}.SlogLevel())
}
