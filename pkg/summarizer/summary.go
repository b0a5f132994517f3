// Package summarizer reports the result of a compile as a document.
package summarizer

import (
	"time"

	"github.com/user/webmrec/pkg/muxer"
)

// Summary contains everything reported about one compile.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `json:"generatedAt"`

	// Where the frames came from
	Source SourceInfo `json:"source"`

	// Session settings
	Settings Settings `json:"settings"`

	// Output file details
	Video VideoInfo `json:"video"`

	// Per-cluster breakdown
	Clusters []ClusterInfo `json:"clusters"`
}

// SourceInfo describes the frame input.
type SourceInfo struct {
	Input      string `json:"input"` // Directory, or "demo" for the generated pattern
	FrameCount int    `json:"frameCount"`
}

// Settings contains the session configuration.
type Settings struct {
	FPS                  float64 `json:"fps"`
	Quality              float64 `json:"quality"`
	MaxClusterDurationMs float64 `json:"maxClusterDurationMs"`
	ImageEncoder         string  `json:"imageEncoder,omitempty"` // Empty when every frame was already lossy WebP
}

// VideoInfo contains information about the output file.
type VideoInfo struct {
	OutputPath   string  `json:"outputPath"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	FrameCount   int     `json:"frameCount"`
	ClusterCount int     `json:"clusterCount"`
	DurationMs   float64 `json:"durationMs"`
	FileSize     int64   `json:"fileSize"`
}

// ClusterInfo describes one cluster.
type ClusterInfo struct {
	TimecodeMs uint64  `json:"timecodeMs"`
	FrameCount int     `json:"frameCount"`
	DurationMs float64 `json:"durationMs"`
	Bytes      int     `json:"bytes"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the frame input.
func (b *Builder) WithSource(input string, frameCount int) *Builder {
	b.summary.Source = SourceInfo{
		Input:      input,
		FrameCount: frameCount,
	}
	return b
}

// WithSettings sets session settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets output file information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithResult fills video and cluster information from a compile result.
func (b *Builder) WithResult(outputPath string, result muxer.Result) *Builder {
	b.summary.Video = VideoInfo{
		OutputPath:   outputPath,
		Width:        int(result.Width),
		Height:       int(result.Height),
		FrameCount:   result.FrameCount,
		ClusterCount: result.ClusterCount,
		DurationMs:   result.DurationMs,
		FileSize:     int64(len(result.Data)),
	}

	b.summary.Clusters = make([]ClusterInfo, 0, len(result.Layout.Clusters))
	for _, c := range result.Layout.Clusters {
		info := ClusterInfo{
			TimecodeMs: c.TimecodeMs,
			FrameCount: len(c.Blocks),
			DurationMs: c.DurationMs,
		}
		for _, blk := range c.Blocks {
			info.Bytes += blk.Size
		}
		b.summary.Clusters = append(b.summary.Clusters, info)
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
