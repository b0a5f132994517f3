package recorder

import (
	"context"
	"image"
	"sync"

	"github.com/user/webmrec/pkg/muxer"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/stages/decode"
)

// Compiler turns one compile unit into a WebM file.
type Compiler interface {
	Compile(ctx context.Context, input muxer.Input) (muxer.Result, error)
}

// Session is an append-only frame buffer. Each Compile consumes the frames
// buffered so far; recording may continue afterwards.
//
// Appends never wait for a compile: Compile takes the buffer and releases
// it before decoding. Compiles on one session run one at a time.
type Session struct {
	config   Config
	compiler Compiler
	logger   ports.Logger

	mu     sync.Mutex
	frames []pipeline.CapturedFrame

	compileMu sync.Mutex
}

// New creates a session wired to the default decode stage and muxer.
// encoder may be nil if only encoded images are appended.
func New(cfg Config, encoder ports.ImageEncoder, sink ports.DebugSink, logger ports.Logger) *Session {
	stage := decode.NewStage(encoder, sink, logger, cfg.Workers)
	return NewSession(cfg, muxer.New(stage, sink, logger), logger)
}

// NewSession creates a session that compiles with compiler.
func NewSession(cfg Config, compiler Compiler, logger ports.Logger) *Session {
	return &Session{
		config:   cfg,
		compiler: compiler,
		logger:   logger.WithComponent("recorder"),
	}
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.config
}

// Append buffers a frame. A duration that is not finite and positive means
// one frame interval at the configured fps. The source is not validated
// until Compile.
func (s *Session) Append(src pipeline.FrameSource, durationMs float64) {
	if !pipeline.ValidDurationMs(durationMs) {
		durationMs = s.config.DefaultDurationMs()
	}

	s.mu.Lock()
	s.frames = append(s.frames, pipeline.CapturedFrame{Source: src, DurationMs: durationMs})
	s.mu.Unlock()
}

// AppendEncoded buffers a "data:image/webp;base64," frame.
func (s *Session) AppendEncoded(dataURI string, durationMs float64) {
	s.Append(pipeline.EncodedImage(dataURI), durationMs)
}

// AppendImage buffers a raw frame; it is encoded to WebP during Compile.
func (s *Session) AppendImage(img image.Image, durationMs float64) {
	s.Append(pipeline.PixelBuffer{Image: img}, durationMs)
}

// Len returns the number of buffered frames.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Compile muxes the buffered frames into a WebM file and clears the buffer.
// On failure the frames are put back ahead of any appended meanwhile, so a
// retry sees the same frames.
func (s *Session) Compile(ctx context.Context) (muxer.Result, error) {
	s.compileMu.Lock()
	defer s.compileMu.Unlock()

	s.mu.Lock()
	snapshot := s.frames
	s.frames = nil
	s.mu.Unlock()

	s.logger.Info("Compiling %d frames", len(snapshot))

	result, err := s.compiler.Compile(ctx, muxer.Input{
		Frames:               snapshot,
		Quality:              s.config.Quality,
		MaxClusterDurationMs: s.config.MaxClusterDurationMs,
	})
	if err != nil {
		s.restore(snapshot)
		s.logger.Error("Failed to compile: %s", err)
		return muxer.Result{}, err
	}

	s.logger.Info("Compiled %d frames into %d clusters", result.FrameCount, result.ClusterCount)
	return result, nil
}

func (s *Session) restore(snapshot []pipeline.CapturedFrame) {
	if len(snapshot) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	frames := make([]pipeline.CapturedFrame, 0, len(snapshot)+len(s.frames))
	frames = append(frames, snapshot...)
	s.frames = append(frames, s.frames...)
}
