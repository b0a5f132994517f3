// Package framefile loads still images from a directory as frame sources.
//
// Lossy WebP files are passed through untouched. Lossless or alpha WebP,
// PNG and JPEG files are decoded to pixels and re-encoded by the session's
// image encoder during compile.
package framefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"

	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/webp"
)

// ErrNoImages is returned when a directory holds no supported images.
var ErrNoImages = errors.New("framefile: no images found")

// Frame is one loaded file.
type Frame struct {
	Name   string
	Source pipeline.FrameSource
}

// Loader reads frames through a ports.FileSystem.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger

	// Fit scales decoded images to this size when non-zero. Lossy WebP
	// pass-through frames are never scaled.
	FitWidth  int
	FitHeight int
}

// New creates a new Loader.
func New(fs ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger.WithComponent("framefile"),
	}
}

// LoadDir loads every supported image in dir, in file name order. Files
// with other extensions are skipped.
func (l *Loader) LoadDir(dir string) ([]Frame, error) {
	names, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var frames []Frame
	for _, name := range names {
		if !Supported(name) {
			l.logger.Debug("Skipping %s: %s", name, "unsupported extension")
			continue
		}
		frame, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	l.logger.Info("Reading %d images from %s", len(frames), dir)
	return frames, nil
}

// LoadFile loads a single image file.
func (l *Loader) LoadFile(path string) (Frame, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return Frame{}, err
	}

	src, err := l.source(path, data)
	if err != nil {
		return Frame{}, fmt.Errorf("%s: %w", path, err)
	}
	return Frame{Name: filepath.Base(path), Source: src}, nil
}

func (l *Loader) source(path string, data []byte) (pipeline.FrameSource, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".webp" {
		if _, err := webp.DecodeBytes(data); err == nil {
			return pipeline.EncodedImage(webp.DataURI(data)), nil
		}
		l.logger.Debug("Converting %s to lossy WebP", filepath.Base(path))
	}

	img, err := decodeImage(ext, data)
	if err != nil {
		return nil, err
	}
	return pipeline.PixelBuffer{Image: l.fit(img)}, nil
}

func decodeImage(ext string, data []byte) (image.Image, error) {
	r := bytes.NewReader(data)
	switch ext {
	case ".webp":
		return xwebp.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}
}

func (l *Loader) fit(img image.Image) image.Image {
	if l.FitWidth <= 0 || l.FitHeight <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == l.FitWidth && b.Dy() == l.FitHeight {
		return img
	}
	return Resize(img, l.FitWidth, l.FitHeight)
}

// Resize scales an image to the given size.
func Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Supported reports whether the file extension is a loadable image.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".webp", ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}
