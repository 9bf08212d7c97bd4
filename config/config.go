// SPDX-License-Identifier: MIT

// Package config holds the waypath CLI settings: which graph to load, how to
// draw it and how to log.
//
// Settings resolve in three layers, later layers winning:
//
//  1. Default()
//  2. a YAML file (Load); a missing file is not an error
//  3. command-line flags, applied by the caller
//
// Validate runs after every layer has been applied.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every schema violation reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full CLI configuration.
type Config struct {
	// Graph is a graphfile path; empty selects the built-in sample graph.
	Graph string `yaml:"graph"`

	// Format is the render format used by the render command.
	Format string `yaml:"format" validate:"oneof=text dot"`

	// Color enables styled terminal output when stdout is a terminal.
	Color bool `yaml:"color"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the slog handler written to stderr.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format: "text",
		Color:  true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

var cfgValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := cfgValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load returns Default() overlaid with the YAML file at path.
// An empty path, a missing file or an empty file yields the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
