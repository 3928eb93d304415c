package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
set_command = "swww img {path}"
cache_dir = "/tmp/wallfetch-test-cache"
notify = true

[[categories]]
name = "nature"
tags = ["landscape", "forest"]
aspect_ratios = ["16:9", "21x9"]

[[categories]]
name = "space"
tags = ["galaxy"]

[[suppliers]]
name = "wallhaven"
file = "suppliers/wallhaven.toml"
`)

	cfg, err := Load(zap.NewNop(), NewViper(path))
	require.NoError(t, err)

	require.Len(t, cfg.GetCategories(), 2)
	nature := cfg.GetCategories()[0]
	assert.Equal(t, "nature", nature.Name)
	assert.Equal(t, []string{"landscape", "forest"}, nature.Tags)
	assert.Equal(t, []domain.AspectRatio{{Width: 16, Height: 9}, {Width: 21, Height: 9}}, nature.AspectRatios)
	assert.Nil(t, cfg.GetCategories()[1].AspectRatios)

	assert.Equal(t, []domain.SupplierRef{{Name: "wallhaven", File: "suppliers/wallhaven.toml"}}, cfg.GetSuppliers())
	assert.Equal(t, "swww img {path}", cfg.GetSetCommand())
	assert.Equal(t, "/tmp/wallfetch-test-cache", cfg.GetCacheDir())
	assert.Equal(t, filepath.Dir(path), cfg.GetConfigRoot())
	assert.True(t, cfg.NotifyEnabled())
	assert.False(t, cfg.MatchScreen())
	assert.Equal(t, "warn", cfg.LogLevel())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
categories:
  - name: cities
    tags: [skyline]
    aspect_ratios: ["32:9"]
suppliers:
  - name: local
    file: /etc/wallfetch/local.yaml
`)

	cfg, err := Load(zap.NewNop(), NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, []domain.AspectRatio{{Width: 32, Height: 9}}, cfg.GetCategories()[0].AspectRatios)
	assert.Empty(t, cfg.GetSetCommand())
	assert.True(t, filepath.IsAbs(cfg.GetCacheDir()))
}

func TestLoad_InvalidAspectRatio(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[[categories]]
name = "bad"
aspect_ratios = ["wide"]
`)

	_, err := Load(zap.NewNop(), NewViper(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid aspect ratio")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(zap.NewNop(), NewViper(filepath.Join(t.TempDir(), "nope.toml")))
	assert.Error(t, err)
}

func TestLoad_NoDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	cfg, err := Load(zap.NewNop(), NewViper(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.GetCategories())
	assert.Empty(t, cfg.GetSuppliers())
	assert.Equal(t, "/tmp/xdg-cache/wallfetch", cfg.GetCacheDir())
	assert.Equal(t, Dir(), cfg.GetConfigRoot())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "config.toml", `set_command = "feh --bg-fill {path}"`)
	t.Setenv("WALLFETCH_SET_COMMAND", "swaybg -i {path}")

	cfg, err := Load(zap.NewNop(), NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, "swaybg -i {path}", cfg.GetSetCommand())
}

func TestSettings_Validate(t *testing.T) {
	s := Settings{
		Categories: []domain.Category{{Name: "a"}, {Name: "A"}, {Name: ""}},
		Suppliers:  []domain.SupplierRef{{Name: "s"}, {Name: "a", File: "a.toml"}},
	}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate name "A"`)
	assert.Contains(t, err.Error(), "categories[2]: name is required")
	assert.Contains(t, err.Error(), "suppliers[0] (s): file is required")
	// a category and a supplier may share a name
	assert.NotContains(t, err.Error(), `suppliers[1]: duplicate`)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/walls")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "walls"), got)

	t.Setenv("WALLFETCH_TEST_DIR", "/srv")
	got, err = expandPath("$WALLFETCH_TEST_DIR/cache")
	require.NoError(t, err)
	assert.Equal(t, "/srv/cache", got)
}
