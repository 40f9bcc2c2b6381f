package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the window and asset settings for a run. Zero-valued fields
// in a config file keep their defaults.
type Config struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	VSync         bool   `yaml:"vsync"`
	Resizable     bool   `yaml:"resizable"`
	CaptureCursor bool   `yaml:"capture_cursor"`

	ShaderDir    string `yaml:"shader_dir"`
	AssetDir     string `yaml:"asset_dir"`
	WatchShaders bool   `yaml:"watch_shaders"`

	LogLevel string `yaml:"log_level"`
}

// WindowConfig is the part of Config the platform needs to open a window.
type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	VSync         bool
	Resizable     bool
	CaptureCursor bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Title:         "OpenGL application",
		Width:         1280,
		Height:        720,
		VSync:         true,
		Resizable:     true,
		CaptureCursor: true,
		ShaderDir:     "shaders",
		AssetDir:      "assets",
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that would make window creation fail.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Title == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	return errors.Join(errs...)
}

// Window returns the window settings.
func (c Config) Window() WindowConfig {
	return WindowConfig{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		VSync:         c.VSync,
		Resizable:     c.Resizable,
		CaptureCursor: c.CaptureCursor,
	}
}

// ShaderPath resolves a shader file name against ShaderDir.
func (c Config) ShaderPath(name string) string {
	return filepath.Join(c.ShaderDir, name)
}

// AssetPath resolves an asset file name against AssetDir.
func (c Config) AssetPath(name string) string {
	return filepath.Join(c.AssetDir, name)
}
