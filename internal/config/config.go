// Package config loads daytime tool configuration from DAYTIME_* environment
// variables over compiled defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before they are
// mapped to keys: DAYTIME_LOG_LEVEL becomes log_level.
const EnvPrefix = "DAYTIME_"

// ErrInvalidConfig is returned when a configured value is not accepted.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the tool configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// Workers bounds concurrent batch evaluations.
	Workers int `koanf:"workers"`

	// EventLog is the path of the CBOR event log. Empty disables it.
	EventLog string `koanf:"event_log"`

	// Prompt is the REPL prompt.
	Prompt string `koanf:"prompt"`
}

func defaults() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   4,
		Prompt:    "daytime> ",
	}
}

// Load returns the defaults overlaid with DAYTIME_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")
	cfg := defaults()

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (valid: text, json)", ErrInvalidConfig, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log_level %q (valid: debug, info, warn, error)", ErrInvalidConfig, s)
	}
}
