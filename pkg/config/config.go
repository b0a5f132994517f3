// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/webmrec/pkg/recorder"
)

// Config represents the full configuration for webmrec.
type Config struct {
	// Session
	FPS                  float64 `yaml:"fps"`
	Quality              float64 `yaml:"quality"`
	MaxClusterDurationMs float64 `yaml:"max_cluster_duration_ms"`
	Workers              int     `yaml:"workers"`

	// Image encoding
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Demo pattern
	Demo DemoConfig `yaml:"demo"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// DemoConfig controls the generated test pattern.
type DemoConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Frames          int    `yaml:"frames"`
	BackgroundColor string `yaml:"background_color"`
	ForegroundColor string `yaml:"foreground_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Session
		FPS:                  1,
		Quality:              0.8,
		MaxClusterDurationMs: 30000,
		Workers:              0,

		// Demo pattern
		Demo: DemoConfig{
			Width:           320,
			Height:          240,
			Frames:          30,
			BackgroundColor: "#1a1a2e",
			ForegroundColor: "#4ade80",
		},

		// Logging
		LogLevel: "info",

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from
// the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error

	if !(c.FPS > 0) || math.IsInf(c.FPS, 0) {
		errs = append(errs, fmt.Errorf("fps must be positive, got %v", c.FPS))
	}
	if !(c.Quality >= 0 && c.Quality <= 1) {
		errs = append(errs, fmt.Errorf("quality must be between 0 and 1, got %v", c.Quality))
	}
	// relative block timecodes are signed 16-bit
	if !(c.MaxClusterDurationMs >= 1 && c.MaxClusterDurationMs <= math.MaxInt16) {
		errs = append(errs, fmt.Errorf("max_cluster_duration_ms must be between 1 and %d, got %v", math.MaxInt16, c.MaxClusterDurationMs))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Demo.Width <= 0 || c.Demo.Height <= 0 || c.Demo.Width > 0x3FFF || c.Demo.Height > 0x3FFF {
		errs = append(errs, fmt.Errorf("demo size must be between 1x1 and 16383x16383, got %dx%d", c.Demo.Width, c.Demo.Height))
	}

	return errors.Join(errs...)
}

// ToRecorderConfig converts Config to recorder.Config.
func (c Config) ToRecorderConfig() recorder.Config {
	return recorder.NewConfigBuilder().
		WithFPS(c.FPS).
		WithQuality(c.Quality).
		WithMaxClusterDuration(c.MaxClusterDurationMs).
		WithWorkers(c.Workers).
		Build()
}

// ParseColor parses a "#rrggbb" hex color. Malformed input yields black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := range rgb {
		rgb[i] = hexValue(hex[2*i])<<4 | hexValue(hex[2*i+1])
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
