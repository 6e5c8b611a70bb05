// Package config loads the optional .faucolors.yaml settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/fau-colors/internal/fonts"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = ".faucolors.yaml"

// Config holds user settings. Zero fields fall back to defaults.
type Config struct {
	Generation string     `yaml:"generation,omitempty"`
	OutputDir  string     `yaml:"output_dir,omitempty"`
	Font       FontConfig `yaml:"font,omitempty"`
}

// FontConfig overrides the font locator
type FontConfig struct {
	Dirs    []string `yaml:"dirs,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Family  string   `yaml:"family,omitempty"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Font: FontConfig{
			Pattern: fonts.DefaultPattern,
			Family:  fonts.DefaultFamily,
		},
	}
}

// Load reads path. A missing file yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Font.Pattern == "" {
		cfg.Font.Pattern = fonts.DefaultPattern
	}
	if cfg.Font.Family == "" {
		cfg.Font.Family = fonts.DefaultFamily
	}
	return cfg, nil
}

// Apply copies the font settings onto l. Empty settings keep l's values.
func (c *Config) Apply(l *fonts.Locator) {
	if len(c.Font.Dirs) > 0 {
		l.Dirs = c.Font.Dirs
	}
	if c.Font.Pattern != "" {
		l.Pattern = c.Font.Pattern
	}
	if c.Font.Family != "" {
		l.Family = c.Font.Family
	}
}
