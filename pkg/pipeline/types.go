package pipeline

import (
	"image"
	"math"
)

// =============================================================================
// Frame Sources
// =============================================================================

// FrameSource is what a capture driver hands to a session: either an
// already encoded WebP image or raw pixels that still need encoding.
// The set of implementations is closed.
type FrameSource interface {
	frameSource()
}

// EncodedImage is a lossy WebP image as a "data:image/webp;base64," URI.
type EncodedImage string

func (EncodedImage) frameSource() {}

// PixelBuffer is a raw raster frame. It is turned into an EncodedImage by a
// ports.ImageEncoder during compilation.
type PixelBuffer struct {
	Image image.Image
}

func (PixelBuffer) frameSource() {}

// CapturedFrame is one buffered frame with its display duration.
type CapturedFrame struct {
	Source     FrameSource
	DurationMs float64
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains the frames of one compile unit.
type DecodeInput struct {
	Frames  []CapturedFrame
	Quality float64 // Passed to the image encoder for pixel buffers (0.0-1.0)
}

// DecodeResult contains decoded frames in input order.
type DecodeResult struct {
	Frames []DecodedFrame
}

// DecodedFrame is a VP8 keyframe extracted from a WebP image.
type DecodedFrame struct {
	Payload    []byte // Whole WEBP body; see webp.VP8Bitstream
	Width      uint16
	Height     uint16
	DurationMs float64
}

// ValidDurationMs reports whether d is a usable frame duration: finite and
// greater than zero.
func ValidDurationMs(d float64) bool {
	return d > 0 && !math.IsInf(d, 0)
}

// TotalDurationMs sums the durations of frames.
func TotalDurationMs(frames []DecodedFrame) float64 {
	var total float64
	for _, f := range frames {
		total += f.DurationMs
	}
	return total
}
