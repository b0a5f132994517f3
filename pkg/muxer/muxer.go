// Package muxer compiles captured frames into a WebM file.
package muxer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/webmrec/pkg/cluster"
	"github.com/user/webmrec/pkg/ebml"
	"github.com/user/webmrec/pkg/ivf"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/webp"
)

// Input is one compile unit.
type Input struct {
	Frames               []pipeline.CapturedFrame
	Quality              float64 // Image encoder quality for pixel buffers (0.0-1.0)
	MaxClusterDurationMs float64 // 0 = cluster.DefaultMaxDurationMs
}

// Result is a compiled WebM file with its bookkeeping.
type Result struct {
	Data         []byte
	DurationMs   float64
	FrameCount   int
	ClusterCount int
	Width        uint16
	Height       uint16
	Layout       cluster.Layout
}

// Muxer assembles the EBML header and a Segment holding Info, Tracks and
// Clusters. It holds no per-compile state and may be shared.
type Muxer struct {
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Muxer.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Muxer {
	return &Muxer{
		decodeStage: decodeStage,
		sink:        sink,
		logger:      logger.WithComponent("muxer"),
	}
}

// Compile decodes every frame, packs them into clusters and serializes the
// file. Any failure aborts the whole compile.
func (m *Muxer) Compile(ctx context.Context, input Input) (Result, error) {
	if len(input.Frames) == 0 {
		return Result{}, ErrNoFrames
	}
	if err := checkDurations(input.Frames); err != nil {
		return Result{}, err
	}

	// 1. Decode frames
	decoded, err := m.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Frames:  input.Frames,
		Quality: input.Quality,
	})
	if err != nil {
		return Result{}, fmt.Errorf("decode: %w", err)
	}
	frames := decoded.Frames

	// 2. Validate dimensions against the first frame
	width, height, err := checkDimensions(frames)
	if err != nil {
		return Result{}, err
	}
	m.logger.Debug("Frame size: %dx%d", width, height)

	// 3. Pack clusters
	clusters, err := cluster.Pack(frames, input.MaxClusterDurationMs)
	if err != nil {
		return Result{}, fmt.Errorf("pack: %w", err)
	}
	m.logger.Debug("Packed %d frames into %d clusters", len(frames), len(clusters))

	// 4. Build and serialize the tree
	durationMs := pipeline.TotalDurationMs(frames)

	segment := ebml.Master(ebml.IDSegment,
		infoNode(durationMs),
		tracksNode(width, height),
	)
	for i, c := range clusters {
		encoded, err := cluster.Encode(c)
		if err != nil {
			return Result{}, fmt.Errorf("cluster %d: %w", i, err)
		}
		m.logger.Debug("Cluster %d: timecode %d ms, %d frames", i, c.TimecodeMs, len(c.Blocks))
		segment = segment.Append(ebml.Raw(encoded))
	}

	data, err := ebml.SerializeAll(headerNode(), segment)
	if err != nil {
		return Result{}, fmt.Errorf("serialize: %w", err)
	}
	m.logger.Debug("Muxed %d bytes, duration %.1f ms", len(data), durationMs)

	layout := cluster.Describe(clusters)
	if m.sink.Enabled() {
		m.saveDebug(frames, width, height, layout)
	}

	return Result{
		Data:         data,
		DurationMs:   durationMs,
		FrameCount:   len(frames),
		ClusterCount: len(clusters),
		Width:        width,
		Height:       height,
		Layout:       layout,
	}, nil
}

func checkDurations(frames []pipeline.CapturedFrame) error {
	for i, f := range frames {
		if !pipeline.ValidDurationMs(f.DurationMs) {
			return &pipeline.FrameError{Index: i, Err: fmt.Errorf("%w: %v ms", ErrInvalidDuration, f.DurationMs)}
		}
	}
	return nil
}

func checkDimensions(frames []pipeline.DecodedFrame) (uint16, uint16, error) {
	width, height := frames[0].Width, frames[0].Height
	for i, f := range frames[1:] {
		if f.Width != width || f.Height != height {
			return 0, 0, &pipeline.FrameError{
				Index: i + 1,
				Err:   fmt.Errorf("%w: %dx%d, want %dx%d", ErrInconsistentDimensions, f.Width, f.Height, width, height),
			}
		}
	}
	return width, height, nil
}

// saveDebug writes the IVF dump and cluster layout. Failures are logged only.
func (m *Muxer) saveDebug(frames []pipeline.DecodedFrame, width, height uint16, layout cluster.Layout) {
	if data, err := buildIVF(frames, width, height); err != nil {
		m.logger.Warn("Failed to save debug output: %s", err)
	} else if err := m.sink.SaveIVF(data); err != nil {
		m.logger.Warn("Failed to save debug output: %s", err)
	}

	if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
		if err := m.sink.SaveClusterJSON(data); err != nil {
			m.logger.Warn("Failed to save debug output: %s", err)
		}
	}
}

func buildIVF(frames []pipeline.DecodedFrame, width, height uint16) ([]byte, error) {
	var buf bytes.Buffer
	w, err := ivf.NewWriter(&buf, ivf.Header{
		Width:      width,
		Height:     height,
		FrameCount: uint32(len(frames)),
	})
	if err != nil {
		return nil, err
	}

	var ts float64
	for i, f := range frames {
		bitstream, err := webp.VP8Bitstream(f.Payload)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if err := w.WriteFrame(bitstream, uint64(ts+0.5)); err != nil {
			return nil, err
		}
		ts += f.DurationMs
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
