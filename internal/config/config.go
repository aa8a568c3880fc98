// Package config holds the command line defaults, read from the environment.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/olehluchkiv/tripkit/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Output formats for scenario events.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is overridden field by field by command line flags.
type Config struct {
	LogLevel          string `env:"TRIPKIT_LOG_LEVEL" envDefault:"warn"`
	LogFile           string `env:"TRIPKIT_LOG_FILE"`
	Format            string `env:"TRIPKIT_FORMAT" envDefault:"text"`
	DiagramMaxMethods int    `env:"TRIPKIT_DIAGRAM_MAX_METHODS" envDefault:"5"`
}

// Defaults returns the envDefault values, ignoring the environment.
func Defaults() Config {
	var cfg Config
	// envDefault tags are constants, so parsing an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !slices.Contains([]string{FormatText, FormatJSON}, c.Format) {
		return fmt.Errorf("%w: unknown format %q (valid: text, json)", ErrInvalidConfig, c.Format)
	}
	if c.DiagramMaxMethods < 0 {
		return fmt.Errorf("%w: diagram max methods must not be negative", ErrInvalidConfig)
	}
	return nil
}
