// Package config loads the optional tactix config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "~/.config/tactix/config.toml"

// Config captures user preferences. Zero-config runs work: every field has
// a usable default.
type Config struct {
	// CollectionsDir holds extra collection JSON files for `tactix solve
	// <name>`.
	CollectionsDir string

	// AutoAdvance moves to the next puzzle automatically on solve.
	AutoAdvance bool

	// AllowHints enables the hint key in the solver.
	AllowHints bool

	// Coach enables LLM hint elaboration when a provider is configured.
	Coach bool

	// DBPath overrides the session database location.
	DBPath string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{AutoAdvance: true, AllowHints: true, Coach: true}
}

// Load parses the config at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = defaultConfigPath
	}
	resolved, err := expand(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// Pointer fields distinguish "absent" from "false".
	var raw struct {
		CollectionsDir string `toml:"collections_dir"`
		AutoAdvance    *bool  `toml:"auto_advance"`
		AllowHints     *bool  `toml:"allow_hints"`
		Coach          *bool  `toml:"coach"`
		DBPath         string `toml:"db_path"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.CollectionsDir != "" {
		cfg.CollectionsDir, err = expand(raw.CollectionsDir)
		if err != nil {
			return Config{}, err
		}
	}
	if raw.AutoAdvance != nil {
		cfg.AutoAdvance = *raw.AutoAdvance
	}
	if raw.AllowHints != nil {
		cfg.AllowHints = *raw.AllowHints
	}
	if raw.Coach != nil {
		cfg.Coach = *raw.Coach
	}
	if raw.DBPath != "" {
		cfg.DBPath, err = expand(raw.DBPath)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// expand resolves a leading ~ to the user's home directory.
func expand(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
