// Package config carries the tuning constants of the diagram and an
// optional YAML overlay for the handful of values worth changing without a
// rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 800
	WindowHeight = 800

	// The scene sits left of the window center to leave room for the
	// value panel.
	SceneOffsetX = -120

	DefaultRate     = 0.25
	RateIncrement   = 0.08
	DefaultRadius   = 200.0
	RadiusIncrement = 10.0

	StrokeWeight  = 3.0
	NodeRadius    = 8.0
	LabelFontSize = 15
	ValueFontSize = 18

	// Theta arc resolution at a full turn.
	ArcPoints = 128
)

// Config holds the user-adjustable startup settings.
type Config struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Rate         float64 `yaml:"rate"`
	Radius       float64 `yaml:"radius"`
	Muted        bool    `yaml:"muted"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Rate:         DefaultRate,
		Radius:       DefaultRadius,
	}
}

// Load reads a YAML settings file over the defaults. An empty path returns
// the defaults untouched; any field missing from the file keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
