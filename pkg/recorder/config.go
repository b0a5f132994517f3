// Package recorder buffers captured frames and compiles them into WebM
// segments.
package recorder

import (
	"math"

	"github.com/user/webmrec/pkg/cluster"
)

// QualityPreset represents an image quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// PresetQuality returns the image encoder quality for the given preset.
func PresetQuality(preset QualityPreset) float64 {
	switch preset {
	case QualityLow:
		return 0.5
	case QualityHigh:
		return 0.95
	default: // medium
		return 0.8
	}
}

// Config represents the configuration of a recording session.
type Config struct {
	FPS                  float64 // Sets the duration of frames appended without one
	Quality              float64 // Image encoder quality for pixel buffers (0.0-1.0)
	MaxClusterDurationMs float64 // Cluster duration ceiling
	Workers              int     // Parallel frame decoders (0 = number of CPUs)
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		FPS:                  1,
		Quality:              PresetQuality(QualityMedium),
		MaxClusterDurationMs: cluster.DefaultMaxDurationMs,
		Workers:              0,
	}
}

// DefaultDurationMs is the duration given to frames appended without one.
func (c Config) DefaultDurationMs() float64 {
	if !(c.FPS > 0) || math.IsInf(c.FPS, 0) {
		return 1000
	}
	return 1000 / c.FPS
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// Build returns the final Config, clamping values into range.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if !(cfg.FPS > 0) || math.IsInf(cfg.FPS, 0) {
		cfg.FPS = 1
	}
	if cfg.Quality < 0 {
		cfg.Quality = 0
	}
	if cfg.Quality > 1 {
		cfg.Quality = 1
	}
	if cfg.MaxClusterDurationMs <= 0 {
		cfg.MaxClusterDurationMs = cluster.DefaultMaxDurationMs
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}

	return cfg
}

// WithFPS sets the frame rate used for frames without a duration.
func (b *ConfigBuilder) WithFPS(fps float64) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithQuality sets the image encoder quality (0.0-1.0).
func (b *ConfigBuilder) WithQuality(quality float64) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	b.config.Quality = PresetQuality(preset)
	return b
}

// WithMaxClusterDuration sets the cluster duration ceiling in milliseconds.
func (b *ConfigBuilder) WithMaxClusterDuration(ms float64) *ConfigBuilder {
	b.config.MaxClusterDurationMs = ms
	return b
}

// WithWorkers sets the number of parallel frame decoders.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.config.Workers = n
	return b
}
