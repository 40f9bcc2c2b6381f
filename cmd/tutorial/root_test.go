package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gltutorials/app"
	"gltutorials/logging"
	"gltutorials/tutorials"
)

type capture struct {
	calls int
	cfg   app.Config
	name  string
	opts  tutorials.Options
}

func (c *capture) run(cfg app.Config, t tutorials.Tutorial, opts tutorials.Options) error {
	c.calls++
	c.cfg, c.name, c.opts = cfg, t.Name, opts
	return nil
}

func execute(t *testing.T, args ...string) (*capture, error) {
	t.Helper()
	t.Cleanup(func() { logging.SetLogger(nil) })
	c := &capture{}
	cmd := newRootCmd(c.run)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return c, cmd.Execute()
}

func TestTutorialDefaults(t *testing.T) {
	c, err := execute(t, "triangle")
	require.NoError(t, err)
	require.Equal(t, 1, c.calls)
	assert.Equal(t, "triangle", c.name)
	assert.Equal(t, "Hello Triangle", c.cfg.Title)
	assert.Equal(t, 1280, c.cfg.Width)
	assert.False(t, c.cfg.WatchShaders)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutorial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: From file\nwidth: 640\nheight: 480\n"), 0o644))

	c, err := execute(t, "lighting", "--config", path, "--height", "400", "--watch", "--model", "cube.glb", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "lighting", c.name)
	assert.Equal(t, "From file", c.cfg.Title)
	assert.Equal(t, 640, c.cfg.Width)
	assert.Equal(t, 400, c.cfg.Height)
	assert.True(t, c.cfg.WatchShaders)
	assert.Equal(t, "debug", c.cfg.LogLevel)
	assert.Equal(t, "cube.glb", c.opts.Model)
}

func TestInvalidInvocations(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown tutorial":  {"shadows"},
		"zero width":        {"triangle", "--width", "0"},
		"bad log level":     {"texture", "--log-level", "loud"},
		"missing config":    {"texture", "--config", filepath.Join(t.TempDir(), "nope.yaml")},
		"model on triangle": {"triangle", "--model", "x.glb"},
	} {
		t.Run(name, func(t *testing.T) {
			c, err := execute(t, args...)
			assert.Error(t, err)
			assert.Zero(t, c.calls)
		})
	}
}
