// Package ffmpegwebp encodes raw frames to lossy WebP with an external
// ffmpeg process (libwebp).
package ffmpegwebp

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"os/exec"
	"strconv"
	"sync"

	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/webp"
)

// Encoder implements ports.ImageEncoder. One ffmpeg process runs per frame,
// so EncodeWebP is safe for concurrent use.
type Encoder struct {
	customPath string
	logger     ports.Logger

	once       sync.Once
	ffmpegPath string
	findErr    error
}

// New creates an encoder. ffmpegPath may be empty to search for ffmpeg.
func New(ffmpegPath string, logger ports.Logger) *Encoder {
	return &Encoder{
		customPath: ffmpegPath,
		logger:     logger.WithComponent("ffmpegwebp"),
	}
}

// EncodeWebP encodes img as a single lossy WebP frame.
func (e *Encoder) EncodeWebP(img image.Image, quality float64) (string, error) {
	e.once.Do(func() {
		e.ffmpegPath, e.findErr = FindFFmpeg(e.customPath)
	})
	if e.findErr != nil {
		return "", e.findErr
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("ffmpegwebp: empty image %dx%d", width, height)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	q := Quality(quality)
	e.logger.Debug("Encoding %dx%d image with quality %d", width, height, q)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(e.ffmpegPath, buildArgs(width, height, q)...)
	cmd.Stdin = bytes.NewReader(rgba.Pix)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg webp encoding failed: %w\nstderr: %s", err, stderr.String())
	}
	if stdout.Len() == 0 {
		return "", fmt.Errorf("ffmpeg produced no output\nstderr: %s", stderr.String())
	}

	return webp.DataURI(stdout.Bytes()), nil
}

// Quality maps a 0.0-1.0 quality onto libwebp's 0-100 scale.
func Quality(quality float64) int {
	q := int(math.Round(quality * 100))
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}

func buildArgs(width, height, quality int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo", // Input format
		"-pix_fmt", "rgba", // Input pixel format
		"-s", fmt.Sprintf("%dx%d", width, height), // Input size
		"-i", "pipe:0", // Read from stdin
		"-frames:v", "1",
		"-c:v", "libwebp",
		"-lossless", "0",
		"-quality", strconv.Itoa(quality),
		"-pix_fmt", "yuv420p", // No alpha: keeps the simple VP8 layout
		"-f", "webp",
		"pipe:1",
	}
}

var _ ports.ImageEncoder = (*Encoder)(nil)
