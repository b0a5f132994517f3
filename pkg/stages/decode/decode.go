// Package decode implements the frame decoding stage.
package decode

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/webp"
)

var (
	// ErrNoImageEncoder is returned for a pixel buffer when no image encoder is configured.
	ErrNoImageEncoder = errors.New("decode: pixel buffer frame needs an image encoder")

	// ErrUnsupportedSource is returned for a nil or unknown frame source.
	ErrUnsupportedSource = errors.New("decode: unsupported frame source")
)

// Stage turns captured frames into VP8 keyframes. Frames are independent,
// so they are decoded in parallel; the result keeps input order.
type Stage struct {
	encoder    ports.ImageEncoder
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new decode stage. encoder may be nil when every frame
// arrives already encoded.
func NewStage(encoder ports.ImageEncoder, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		encoder:    encoder,
		sink:       sink,
		logger:     logger.WithComponent("decode"),
		numWorkers: numWorkers,
	}
}

// Execute decodes all frames. A failing frame stops scheduling of later
// frames; frames already scheduled finish, and the failure with the lowest
// index is returned.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	if len(input.Frames) == 0 {
		return pipeline.DecodeResult{Frames: []pipeline.DecodedFrame{}}, nil
	}

	s.logger.Debug("Decoding %d frames with %d workers", len(input.Frames), s.numWorkers)

	decoded := make([]pipeline.DecodedFrame, len(input.Frames))
	failures := make([]error, len(input.Frames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorkers)

	for i := range input.Frames {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame, err := s.decodeFrame(input.Frames[i], input.Quality)
			if err != nil {
				failures[i] = &pipeline.FrameError{Index: i, Err: err}
				return failures[i]
			}
			decoded[i] = frame
			return nil
		})
	}

	waitErr := g.Wait()
	if err := ctx.Err(); err != nil {
		return pipeline.DecodeResult{}, err
	}
	if waitErr != nil {
		for _, err := range failures {
			if err != nil {
				return pipeline.DecodeResult{}, err
			}
		}
		return pipeline.DecodeResult{}, waitErr
	}

	if s.sink.Enabled() {
		s.saveFrames(decoded)
	}

	s.logger.Debug("Decoded %d frames", len(decoded))
	return pipeline.DecodeResult{Frames: decoded}, nil
}

// decodeFrame resolves the frame source to a data URI and extracts the keyframe.
func (s *Stage) decodeFrame(frame pipeline.CapturedFrame, quality float64) (pipeline.DecodedFrame, error) {
	var uri string
	switch src := frame.Source.(type) {
	case pipeline.EncodedImage:
		uri = string(src)
	case pipeline.PixelBuffer:
		if s.encoder == nil {
			return pipeline.DecodedFrame{}, ErrNoImageEncoder
		}
		if src.Image == nil {
			return pipeline.DecodedFrame{}, fmt.Errorf("%w: nil image", ErrUnsupportedSource)
		}
		encoded, err := s.encoder.EncodeWebP(src.Image, quality)
		if err != nil {
			return pipeline.DecodedFrame{}, fmt.Errorf("encode webp: %w", err)
		}
		uri = encoded
	default:
		return pipeline.DecodedFrame{}, fmt.Errorf("%w: %T", ErrUnsupportedSource, frame.Source)
	}

	f, err := webp.Decode(uri)
	if err != nil {
		return pipeline.DecodedFrame{}, err
	}

	return pipeline.DecodedFrame{
		Payload:    f.Payload,
		Width:      f.Width,
		Height:     f.Height,
		DurationMs: frame.DurationMs,
	}, nil
}

func (s *Stage) saveFrames(frames []pipeline.DecodedFrame) {
	for i, f := range frames {
		bitstream, err := webp.VP8Bitstream(f.Payload)
		if err != nil {
			s.logger.Warn("Failed to save debug frame %d: %s", i, err)
			continue
		}
		if err := s.sink.SaveFrame(i, bitstream); err != nil {
			s.logger.Warn("Failed to save debug frame %d: %s", i, err)
		}
	}
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult] = (*Stage)(nil)
