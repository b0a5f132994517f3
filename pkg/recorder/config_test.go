package recorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1.0, cfg.FPS)
	require.Equal(t, 0.8, cfg.Quality)
	require.Equal(t, 30000.0, cfg.MaxClusterDurationMs)
	require.Equal(t, 0, cfg.Workers)
}

func TestConfig_DefaultDurationMs(t *testing.T) {
	tests := []struct {
		fps  float64
		want float64
	}{
		{fps: 1, want: 1000},
		{fps: 30, want: 1000.0 / 30},
		{fps: 0, want: 1000},
		{fps: -5, want: 1000},
		{fps: math.NaN(), want: 1000},
		{fps: math.Inf(1), want: 1000},
	}

	for _, tt := range tests {
		cfg := Config{FPS: tt.fps}
		require.InDelta(t, tt.want, cfg.DefaultDurationMs(), 1e-9, "fps %v", tt.fps)
	}
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFPS(25).
		WithQuality(0.6).
		WithMaxClusterDuration(5000).
		WithWorkers(3).
		Build()

	require.Equal(t, Config{FPS: 25, Quality: 0.6, MaxClusterDurationMs: 5000, Workers: 3}, cfg)
}

func TestConfigBuilder_Clamps(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFPS(0).
		WithQuality(1.5).
		WithMaxClusterDuration(-1).
		WithWorkers(-2).
		Build()

	require.Equal(t, 1.0, cfg.FPS)
	require.Equal(t, 1.0, cfg.Quality)
	require.Equal(t, 30000.0, cfg.MaxClusterDurationMs)
	require.Equal(t, 0, cfg.Workers)

	require.Equal(t, 0.0, NewConfigBuilder().WithQuality(-0.1).Build().Quality)
	require.Equal(t, 1.0, NewConfigBuilder().WithFPS(math.NaN()).Build().FPS)
}

func TestConfigBuilder_QualityPreset(t *testing.T) {
	tests := []struct {
		preset QualityPreset
		want   float64
	}{
		{QualityLow, 0.5},
		{QualityMedium, 0.8},
		{QualityHigh, 0.95},
		{QualityPreset("unknown"), 0.8},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := NewConfigBuilder().WithQualityPreset(tt.preset).Build()
			require.Equal(t, tt.want, cfg.Quality)
		})
	}
}
