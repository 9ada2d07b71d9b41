// Package config loads user defaults for musclechart from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultFormat = "png"
	DefaultEngine = "gonum"
	DefaultColor  = "auto"
)

// Config holds user defaults. Zero values mean "not set".
type Config struct {
	// Output format (png, svg, pdf, xlsx, ...)
	Format string `yaml:"format,omitempty"`

	// Rendering engine (gonum, gochart)
	Engine string `yaml:"engine,omitempty"`

	// Figure size in inches
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Viewer command; the chart path is appended
	Viewer string `yaml:"viewer,omitempty"`

	// Skip launching the viewer
	NoView bool `yaml:"no_view,omitempty"`

	// Color mode for messages (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Enable debug logging
	Debug bool `yaml:"debug,omitempty"`
}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns $XDG_CONFIG_HOME/musclechart/config.yaml or
// ~/.config/musclechart/config.yaml
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "musclechart", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "musclechart", "config.yaml"), nil
}

// DefaultConfigPath returns the path Load reads.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// WithDefaults returns a copy of c with built-in defaults filled in.
func (c Config) WithDefaults() Config {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	return c
}

// Merge overlays the set fields of o onto c and returns the result.
func (c Config) Merge(o Config) Config {
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Engine != "" {
		c.Engine = o.Engine
	}
	if o.Width > 0 {
		c.Width = o.Width
	}
	if o.Height > 0 {
		c.Height = o.Height
	}
	if o.Viewer != "" {
		c.Viewer = o.Viewer
	}
	if o.Color != "" {
		c.Color = o.Color
	}
	c.NoView = c.NoView || o.NoView
	c.Debug = c.Debug || o.Debug
	return c
}
