// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all CLI configuration.
type Config struct {
	Output  OutputConfig
	Logging LogConfig
}

// OutputConfig controls how resolved paths are printed.
type OutputConfig struct {
	Format string `envconfig:"APPPATH_FORMAT" default:"text"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"APPPATH_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"APPPATH_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}
