package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100, cfg.Editor.HistoryCapacity)
	assert.Equal(t, 10, cfg.Editor.AutosaveInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.DatabasePath)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Editor.HistoryCapacity = 42
	cfg.Log.Level = "debug"
	cfg.UI.Stroke = "#88c0d0"
	require.NoError(t, saveTo(path, cfg))

	got := loadFrom(path)
	assert.Equal(t, 42, got.Editor.HistoryCapacity)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, "#88c0d0", got.UI.Stroke)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))

	got := loadFrom(path)
	assert.Equal(t, "warn", got.Log.Level)
	assert.Equal(t, 100, got.Editor.HistoryCapacity, "unset sections keep defaults")
}

func TestInvalidHistoryCapacityNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nhistory_capacity = -5\n"), 0o644))
	assert.Equal(t, 100, loadFrom(path).Editor.HistoryCapacity)
}
