package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Clash holds configuration shared by the clash commands.
type Clash struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Format   string `yaml:"format"`    // battle log output: text or json

	// Battle defaults for scenario players that leave them out
	Seed         uint64 `yaml:"seed"` // discard RNG seed
	StartingGold int    `yaml:"starting_gold"`
}

// DefaultClash returns Clash config with sensible defaults.
func DefaultClash() Clash {
	return Clash{
		LogLevel:     "info",
		Format:       "text",
		Seed:         1,
		StartingGold: 100,
	}
}

// LoadClash loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadClash(path string) (Clash, error) {
	cfg := DefaultClash()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Clash) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", c.Format)
	}
	if c.StartingGold < 0 {
		return fmt.Errorf("starting_gold must not be negative, got %d", c.StartingGold)
	}
	return nil
}

// SlogLevel returns the configured log level, falling back to info.
func (c Clash) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
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
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
