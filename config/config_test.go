package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUILDROOT_CONFIG_DIR", t.TempDir())

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", config.BuildDir)
	assert.True(t, config.Spinner)
	assert.Empty(t, config.MinPluginVersions)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BUILDROOT_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
build_dir: /var/tmp/build
spinner: false
min_plugin_versions:
  gradle: 8.2.0
`), 0644))

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/build", config.BuildDir)
	assert.False(t, config.Spinner)
	assert.Equal(t, map[string]string{"gradle": "8.2.0"}, config.MinPluginVersions)
}

func TestLoadFromXdgConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("BUILDROOT_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "buildroot"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "buildroot", "config.yaml"), []byte("build_dir: out\n"), 0644))

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out", config.BuildDir)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BUILDROOT_CONFIG_DIR", dir)
	t.Setenv("BUILDROOT_BUILD_DIR", "/from/env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("build_dir: /from/file\n"), 0644))

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", config.BuildDir)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv("BUILDROOT_CONFIG_DIR", t.TempDir())
	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("build_dir: custom\n"), 0644))

	config, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "custom", config.BuildDir)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
