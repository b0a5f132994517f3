package mocks

import (
	"image"
	"sync"

	"github.com/user/webmrec/pkg/ports"
)

// ImageEncoder is a mock implementation of ports.ImageEncoder.
type ImageEncoder struct {
	mu sync.Mutex

	EncodeWebPFunc func(img image.Image, quality float64) (string, error)

	// Recorded calls for verification
	Qualities []float64
}

func (m *ImageEncoder) EncodeWebP(img image.Image, quality float64) (string, error) {
	m.mu.Lock()
	m.Qualities = append(m.Qualities, quality)
	m.mu.Unlock()

	if m.EncodeWebPFunc != nil {
		return m.EncodeWebPFunc(img, quality)
	}
	return "", nil
}

// Calls returns the number of EncodeWebP calls.
func (m *ImageEncoder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Qualities)
}

var _ ports.ImageEncoder = (*ImageEncoder)(nil)
