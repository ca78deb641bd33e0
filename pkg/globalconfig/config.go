// Package globalconfig provides global configuration management for acli.
// Configuration is stored at ~/.config/acli/config.yaml. Everything in
// it is an optional default, command-line flags always take precedence.
package globalconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current config schema version.
const Version = "1.0"

// Config represents the global acli configuration.
type Config struct {
	Version string `yaml:"version"`
	// ScriptsDir is the install scripts directory used when no --dir
	// flag is given and no project root is found.
	ScriptsDir string `yaml:"scripts_dir,omitempty"`
	// PreferredHelper is probed first during AUR helper detection.
	// Recognized values are "yay" and "paru", anything else is ignored.
	PreferredHelper string `yaml:"preferred_helper,omitempty"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version: Version,
	}
}

// Load loads the config from ~/.config/acli/config.yaml. A missing file
// is not an error, defaults are returned so the tool works without any
// prior setup.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = Version
	}

	return &cfg, nil
}

// Save saves the config to ~/.config/acli/config.yaml atomically.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to temp file first, then rename into place
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Update loads the config, applies modify, and saves the result.
func Update(modify func(*Config) error) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if err := modify(cfg); err != nil {
		return err
	}
	return cfg.Save()
}
