// Package config loads generator settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the generator commands.
type Config struct {
	// Root is the directory the platform trees are written under.
	Root string `env:"PAWPRINT_ROOT" envDefault:"."`

	// LogLevel is one of debug, info, warn or error.
	LogLevel slog.Level `env:"PAWPRINT_LOG_LEVEL" envDefault:"warn"`

	// Workers bounds concurrent export writes. 1 keeps the batch sequential.
	Workers int `env:"PAWPRINT_WORKERS" envDefault:"1"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the generator configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("parse env: PAWPRINT_WORKERS must be at least 1, got %d", cfg.Workers)
	}
	return cfg, nil
}
