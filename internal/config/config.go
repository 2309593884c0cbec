// Package config holds the process-level configuration read from the
// environment and the user-editable settings persisted as JSON.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process-level configuration, read once at startup.
type Config struct {
	LogLevel string `env:"NEXUS_LOG_LEVEL" env-default:"info"`
	// DataDir holds settings and history; defaults to ~/.nexus-downloader
	DataDir string `env:"NEXUS_DATA_DIR" env-default:""`
}

// Load reads configuration from the environment and resolves the data
// directory, creating it if needed.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".nexus-downloader")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &cfg, nil
}

// SettingsPath returns the path of the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.json")
}

// HistoryDBPath returns the path of the history database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.DataDir, "history.db")
}
