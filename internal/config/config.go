// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Cache   CacheConfig
	Logging LogConfig
	Folders FolderConfig
}

// CacheConfig holds cached-manager settings.
type CacheConfig struct {
	TTL time.Duration `envconfig:"AUTOSTART_CACHE_TTL" default:"30s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"AUTOSTART_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"AUTOSTART_LOG_DEV" default:"false"`
}

// FolderConfig overrides the startup directories resolved from the
// environment, mainly for tests and demo runs.
type FolderConfig struct {
	UserDir    string `envconfig:"AUTOSTART_USER_STARTUP_DIR"`
	MachineDir string `envconfig:"AUTOSTART_MACHINE_STARTUP_DIR"`
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
		Cache:   CacheConfig{TTL: 30 * time.Second},
		Logging: LogConfig{Level: "info"},
	}
}
