// Package config loads the panfl configuration file.
//
// The file is YAML:
//
//	format: latex
//	filters: [include, caps.go]
//	dirs: [~/filters]
//	data-dir: true
//	drop: ['tag == "Div" && hasClass("draft")']
//	keep: 'category == "block"'
//	trace: false
//	log:
//	  level: info
//	  format: auto
//
// Command line flags override the values it sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/growler/go-panflute/internal/logging"
)

// FileName is the name of the configuration file in the user config dir.
const FileName = "panfl.yaml"

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Format  string   `yaml:"format"`   // output format passed to filters
	Filters []string `yaml:"filters"`  // filters run before the command line ones
	Dirs    []string `yaml:"dirs"`     // filter search dirs
	DataDir bool     `yaml:"data-dir"` // search the pandoc user data dir too
	Drop    []string `yaml:"drop"`     // expressions of elements to delete
	Keep    string   `yaml:"keep"`     // expression of top-level blocks to keep
	Trace   bool     `yaml:"trace"`
	Log     Log      `yaml:"log"`
}

// Parse decodes and validates a configuration. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultPath returns the path of the configuration file in the user
// config dir, or "" if there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "panfl", FileName)
}

// LoadDefault reads the configuration file at DefaultPath. A missing file
// yields an empty configuration.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return c, err
}
