// Package config loads the run configuration of the rgbproc command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/rgbproc"
	"github.com/gogpu/rgbproc/filter"
)

// Default frame size, matching the hardware pipeline under test.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Config is the run configuration. Zero fields in a file keep their
// defaults.
type Config struct {
	// Width and Height are the frame resolution, fixed for a run.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Mode selects the filter; see filter.ParseMode.
	Mode string `yaml:"mode,omitempty"`

	// Input is the pixel stream path ("" or "-" for stdin).
	Input string `yaml:"input,omitempty"`

	// Output is the result path ("" or "-" for stdout).
	Output string `yaml:"output,omitempty"`

	// Workers bounds concurrent filter passes in batch runs (0 = GOMAXPROCS).
	Workers int `yaml:"workers,omitempty"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   string(filter.ModeIdentity),
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolution and worker count.
func (c *Config) Validate() error {
	if err := c.Resolution().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Resolution returns the configured frame size.
func (c *Config) Resolution() rgbproc.Resolution {
	return rgbproc.Resolution{Width: c.Width, Height: c.Height}
}

// FilterMode returns the parsed filter mode.
func (c *Config) FilterMode() filter.Mode {
	return filter.ParseMode(c.Mode)
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	c.path = path
	return nil
}
