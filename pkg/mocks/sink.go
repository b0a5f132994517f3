package mocks

import (
	"sync"

	"github.com/user/webmrec/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Frames      map[int][]byte
	IVF         []byte
	ClusterJSON []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveFrame(index int, bitstream []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[index] = bitstream
	return nil
}

func (m *DebugSink) SaveIVF(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IVF = data
	return nil
}

func (m *DebugSink) SaveClusterJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClusterJSON = data
	return nil
}

// FrameCount returns the number of saved frames.
func (m *DebugSink) FrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Frames)
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                              { return false }
func (m *NullSink) SaveFrame(index int, bitstream []byte) error { return nil }
func (m *NullSink) SaveIVF(data []byte) error                   { return nil }
func (m *NullSink) SaveClusterJSON(data []byte) error           { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
