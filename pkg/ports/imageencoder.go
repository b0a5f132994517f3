package ports

import (
	"image"
)

// ImageEncoder turns raw pixels into a lossy single-frame WebP image.
type ImageEncoder interface {
	// EncodeWebP encodes img at the given quality (0.0-1.0) and returns a
	// "data:image/webp;base64," URI.
	EncodeWebP(img image.Image, quality float64) (string, error)
}
