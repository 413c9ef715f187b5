// Package config loads the optional .pmxrc.yaml file from the project
// directory. The file sets defaults for flags the user would otherwise
// repeat on every call; command-line flags win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const rcFile = ".pmxrc.yaml"

// Config is the project-level rc file schema.
type Config struct {
	// Silent discards package manager output for every operation.
	Silent bool `yaml:"silent"`
	// AddParams are extra pnpm parameters inserted into every add
	// invocation, e.g. ["--save-exact"].
	AddParams []string `yaml:"addParams"`
	// PackageManager pins the manager this project expects. Only "pnpm"
	// is implemented; any other value is rejected when loading.
	PackageManager string `yaml:"packageManager"`
}

// Path returns the rc file path for the given project directory.
func Path(dir string) string {
	return filepath.Join(dir, rcFile)
}

// Load reads <dir>/.pmxrc.yaml. A missing file yields the zero config —
// the rc file is optional. A present but malformed file is always an
// error (no silent fallback).
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", rcFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rcFile, err)
	}
	if cfg.PackageManager != "" && cfg.PackageManager != "pnpm" {
		return nil, fmt.Errorf("%s: unsupported packageManager %q — only pnpm is implemented", rcFile, cfg.PackageManager)
	}
	return &cfg, nil
}
