// Package config provides the configuration loader for glhost.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable overriding the config file
// location.
const EnvConfigPath = "GLHOST_CONFIG"

// Loader reads the YAML configuration file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration from path. An empty path means the default
// location; a missing file at the default location is not an error and yields
// the built-in defaults. An explicitly named file must exist.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // Config path is user provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	merge(cfg, &overrides)

	if !cfg.Mode().Valid() {
		return nil, zerr.With(domain.ErrInvalidIdentityMode, "mode", cfg.IdentityMode)
	}
	return cfg, nil
}

// DefaultPath returns the default config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glhost", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glhost", "config.yaml")
}

func merge(base, overrides *Config) {
	if overrides.CacheDir != "" {
		base.CacheDir = overrides.CacheDir
	}
	if overrides.IdentityMode != "" {
		base.IdentityMode = overrides.IdentityMode
	}
	if overrides.PatchelfPath != "" {
		base.PatchelfPath = overrides.PatchelfPath
	}
	if len(overrides.DriverDirs) > 0 {
		base.DriverDirs = overrides.DriverDirs
	}
}
