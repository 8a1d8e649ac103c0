// Package config loads and saves tabsplit preferences from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tabsplit configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// DefaultsConfig holds the values pre-filled into the interactive prompts.
type DefaultsConfig struct {
	ServicePercent float64 `toml:"service_percent"`
	TipPercent     float64 `toml:"tip_percent"`
}

// CatalogConfig holds settings for the saved menu/diner catalog.
type CatalogConfig struct {
	// Path overrides the catalog database location. Empty means the
	// default under the user data directory.
	Path string `toml:"path,omitempty"`

	// Disabled turns off catalog lookups and writes entirely.
	Disabled bool `toml:"disabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			ServicePercent: 10,
			TipPercent:     10,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tabsplit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabsplit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// CatalogPath resolves the catalog database path: explicit config value
// first, then the default under the user home directory.
func CatalogPath(cfg Config) string {
	if cfg.Catalog.Path != "" {
		return cfg.Catalog.Path
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tabsplit", "catalog.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tabsplit", "catalog.db")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
