package config

import "go.trai.ch/glhost/internal/core/domain"

// Config holds the resolved runtime configuration. Every field has a working
// default; a config file only overrides what it names.
type Config struct {
	// CacheDir is the published cache generation directory.
	CacheDir string `yaml:"cache_dir"`

	// IdentityMode selects the fingerprint strategy: "content" (default) or
	// "mtime-size".
	IdentityMode string `yaml:"identity_mode"`

	// PatchelfPath is the patchelf binary to invoke. A packaged build pins
	// its own binary here instead of relying on PATH.
	PatchelfPath string `yaml:"patchelf"`

	// DriverDirs, when set, replaces loader-config discovery entirely.
	DriverDirs []string `yaml:"driver_dirs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CacheDir:     domain.DefaultCacheRoot(),
		IdentityMode: string(domain.IdentityModeContent),
		PatchelfPath: "patchelf",
	}
}

// Mode returns the identity mode as a domain value.
func (c *Config) Mode() domain.IdentityMode {
	return domain.IdentityMode(c.IdentityMode)
}
