package summarizer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/user/webmrec/pkg/cluster"
	"github.com/user/webmrec/pkg/mocks"
	"github.com/user/webmrec/pkg/muxer"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	require.False(t, summary.GeneratedAt.Before(before))
	require.False(t, summary.GeneratedAt.After(after))
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithSource("frames", 3).
		WithSettings(Settings{FPS: 30, Quality: 0.8, MaxClusterDurationMs: 30000, ImageEncoder: "ffmpeg"}).
		Build()

	require.Equal(t, SourceInfo{Input: "frames", FrameCount: 3}, summary.Source)
	require.Equal(t, 30.0, summary.Settings.FPS)
	require.Equal(t, "ffmpeg", summary.Settings.ImageEncoder)
}

func TestBuilder_WithResult(t *testing.T) {
	result := muxer.Result{
		Data:         make([]byte, 2048),
		DurationMs:   100,
		FrameCount:   3,
		ClusterCount: 2,
		Width:        320,
		Height:       240,
		Layout: cluster.Layout{Clusters: []cluster.ClusterLayout{
			{TimecodeMs: 0, DurationMs: 66, Blocks: []cluster.BlockLayout{{Size: 10}, {Size: 20}}},
			{TimecodeMs: 66, DurationMs: 34, Blocks: []cluster.BlockLayout{{Size: 5}}},
		}},
	}

	summary := NewBuilder().WithResult("out.webm", result).Build()

	require.Equal(t, VideoInfo{
		OutputPath:   "out.webm",
		Width:        320,
		Height:       240,
		FrameCount:   3,
		ClusterCount: 2,
		DurationMs:   100,
		FileSize:     2048,
	}, summary.Video)
	require.Equal(t, []ClusterInfo{
		{TimecodeMs: 0, FrameCount: 2, DurationMs: 66, Bytes: 30},
		{TimecodeMs: 66, FrameCount: 1, DurationMs: 34, Bytes: 5},
	}, summary.Clusters)
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string { return "summary of " + s.Source.Input })
	path := filepath.Join("out", "summary.md")

	require.NoError(t, NewWriter(formatter, fs).Write(path, &Summary{Source: SourceInfo{Input: "demo"}}))

	data, ok := fs.GetFile(path)
	require.True(t, ok)
	require.Equal(t, "summary of demo", string(data))
}

func TestForPath(t *testing.T) {
	require.IsType(t, JSONFormatter{}, ForPath("out/summary.json"))
	require.IsType(t, JSONFormatter{}, ForPath("SUMMARY.JSON"))
	require.IsType(t, &MarkdownFormatter{}, ForPath("summary.md"))
	require.IsType(t, &MarkdownFormatter{}, ForPath("summary"))
}

func TestJSONFormatter_Format(t *testing.T) {
	summary := &Summary{
		GeneratedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Source:      SourceInfo{Input: "frames", FrameCount: 3},
		Settings:    Settings{FPS: 30, Quality: 0.8, MaxClusterDurationMs: 30000},
		Video:       VideoInfo{OutputPath: "out.webm", Width: 320, Height: 240, FrameCount: 3, ClusterCount: 1, DurationMs: 100, FileSize: 512},
		Clusters:    []ClusterInfo{{TimecodeMs: 0, FrameCount: 3, DurationMs: 100, Bytes: 420}},
	}

	out := JSONFormatter{}.Format(summary)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "2026-10-19T12:00:00Z", decoded["generatedAt"])
	require.Equal(t, "frames", decoded["source"].(map[string]any)["input"])
	require.NotContains(t, decoded["settings"], "imageEncoder")
	require.Equal(t, 320.0, decoded["video"].(map[string]any)["width"])
	require.Len(t, decoded["clusters"], 1)
}
