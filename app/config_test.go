package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "OpenGL application", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, filepath.Join("shaders", "lighting.vert"), cfg.ShaderPath("lighting.vert"))
	assert.Equal(t, filepath.Join("assets", "container.png"), cfg.AssetPath("container.png"))
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutorial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Lighting
width: 800
watch_shaders: true
capture_cursor: false
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Lighting", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "unset keys keep defaults")
	assert.True(t, cfg.WatchShaders)
	assert.False(t, cfg.CaptureCursor)
	assert.Equal(t, "shaders", cfg.ShaderDir)

	w := cfg.Window()
	assert.Equal(t, WindowConfig{Title: "Lighting", Width: 800, Height: 720, VSync: true, Resizable: true}, w)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "parse config")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("width: -1\ntitle: \"\"\n"), 0o644))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "must be positive")
	assert.ErrorContains(t, err, "title must not be empty")
}
