// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	IgnorePatterns    []string `yaml:"ignore_patterns"`
	MinSizeMB         int      `yaml:"min_size_mb"`
	ScreenshotAgeDays int      `yaml:"screenshot_age_days"`
	ChartWidth        int      `yaml:"chart_width"`
	Verbose           bool     `yaml:"verbose"`
}

// Load reads configuration from a file. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a file, creating parent directories.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks thresholds and the chart geometry.
func (c *Config) Validate() error {
	if c.MinSizeMB < 0 {
		return fmt.Errorf("min_size_mb must be >= 0")
	}
	if c.ScreenshotAgeDays < 0 {
		return fmt.Errorf("screenshot_age_days must be >= 0")
	}
	if c.ChartWidth <= 0 {
		return fmt.Errorf("chart_width must be > 0")
	}
	return nil
}

// Path returns the default config file location.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "storclean", "config.yaml"), nil
}
