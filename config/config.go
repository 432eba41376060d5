// Package config loads settings for the grid CLI and painter.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// GRID_* environment variables. Command line flags are applied by the caller
// on top of the returned Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds grid and painter settings.
type Config struct {
	// Width and Height size a new grid when no file is given.
	Width  int `yaml:"width" env:"GRID_WIDTH"`
	Height int `yaml:"height" env:"GRID_HEIGHT"`

	// Fill is the character new grids start with.
	Fill string `yaml:"fill" env:"GRID_FILL"`

	// Brush is the painter's initial brush.
	Brush string `yaml:"brush" env:"GRID_BRUSH"`

	// HistoryDepth bounds the painter's undo stack.
	HistoryDepth int `yaml:"history_depth" env:"GRID_HISTORY_DEPTH"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:        40,
		Height:       12,
		Fill:         " ",
		Brush:        "#",
		HistoryDepth: 50,
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can build a grid and a painter.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if utf8.RuneCountInString(c.Fill) != 1 {
		return fmt.Errorf("%w: fill must be a single character, got %q", ErrInvalidConfig, c.Fill)
	}
	if utf8.RuneCountInString(c.Brush) != 1 {
		return fmt.Errorf("%w: brush must be a single character, got %q", ErrInvalidConfig, c.Brush)
	}
	if c.HistoryDepth < 1 {
		return fmt.Errorf("%w: history_depth must be at least 1, got %d", ErrInvalidConfig, c.HistoryDepth)
	}
	return nil
}

// FillRune returns Fill as a rune. Only meaningful after Validate succeeds.
func (c Config) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Fill)
	return r
}

// BrushRune returns Brush as a rune. Only meaningful after Validate succeeds.
func (c Config) BrushRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Brush)
	return r
}
