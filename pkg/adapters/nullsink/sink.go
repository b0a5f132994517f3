// Package nullsink provides a no-op debug sink implementation.
package nullsink

import "github.com/user/webmrec/pkg/ports"

// Sink discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

func (s *Sink) SaveFrame(index int, bitstream []byte) error {
	return nil
}

func (s *Sink) SaveIVF(data []byte) error {
	return nil
}

func (s *Sink) SaveClusterJSON(data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
