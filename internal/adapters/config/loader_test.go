package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/internal/adapters/config"
	"go.trai.ch/glhost/internal/core/domain"
)

func TestLoader_Load_Defaults(t *testing.T) {
	// Point the default location somewhere empty so a developer's real config
	// cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, string(domain.IdentityModeContent), cfg.IdentityMode)
	assert.Equal(t, "patchelf", cfg.PatchelfPath)
	assert.NotEmpty(t, cfg.CacheDir)
	assert.Empty(t, cfg.DriverDirs)
}

func TestLoader_Load_MergesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
cache_dir: /var/cache/glhost
identity_mode: mtime-size
driver_dirs:
  - /opt/nvidia/lib
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/glhost", cfg.CacheDir)
	assert.Equal(t, domain.IdentityModeMTime, cfg.Mode())
	assert.Equal(t, []string{"/opt/nvidia/lib"}, cfg.DriverDirs)
	// Unset keys keep their defaults.
	assert.Equal(t, "patchelf", cfg.PatchelfPath)
}

func TestLoader_Load_ExplicitMissingFileFails(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir: [unclosed"), 0o644))

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_RejectsUnknownIdentityMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identity_mode: sha1"), 0o644))

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}

func TestDefaultPath_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/glhost/config.yaml", config.DefaultPath())
}
