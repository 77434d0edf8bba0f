// Package config loads optional ModuLair tool configuration from a
// TOML file. Everything has a working default; the config file is
// opt-in.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVarConfig overrides the config file location.
const EnvVarConfig = "MODULAIR_CONFIG"

// DefaultGroupRoot is the base directory for group-shared storage.
const DefaultGroupRoot = "/scratch/group"

// Config holds tool-level settings.
type Config struct {
	// GroupRoot is the base directory under which each group's shared
	// storage lives, one subdirectory per group.
	GroupRoot string `toml:"group_root"`

	// Color controls styled output: "auto", "always", or "never".
	Color string `toml:"color"`
}

// Default returns a config with all defaults applied.
func Default() *Config {
	return &Config{
		GroupRoot: DefaultGroupRoot,
		Color:     "auto",
	}
}

// Path returns the config file location: $MODULAIR_CONFIG if set,
// otherwise ~/.config/modulair/config.toml.
func Path() string {
	if p := os.Getenv(EnvVarConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "modulair", "config.toml")
}

// Load reads the config file at path. A missing file yields defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Re-apply defaults for fields the file left empty.
	if cfg.GroupRoot == "" {
		cfg.GroupRoot = DefaultGroupRoot
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}

	return cfg, nil
}
