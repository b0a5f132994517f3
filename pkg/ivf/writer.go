// Package ivf writes VP8 frames into an IVF ("DKIF") stream.
//
// IVF is little-endian throughout: a 32-byte file header followed by a
// 12-byte header (size, timestamp) per frame.
package ivf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	fileHeaderLen  = 32
	frameHeaderLen = 12
)

// ErrClosed is returned when writing after Close.
var ErrClosed = errors.New("ivf: writer closed")

// Header describes the stream. Timestamps are in TimebaseNum/TimebaseDen
// seconds; the zero value means milliseconds.
type Header struct {
	Width       uint16
	Height      uint16
	TimebaseDen uint32
	TimebaseNum uint32
	FrameCount  uint32
}

// Writer writes frames to an io.Writer.
type Writer struct {
	out    io.Writer
	count  uint32
	closed bool
}

// NewWriter writes the file header and returns a Writer.
func NewWriter(out io.Writer, h Header) (*Writer, error) {
	if out == nil {
		return nil, fmt.Errorf("ivf: nil output")
	}
	if h.TimebaseDen == 0 {
		h.TimebaseDen = 1000
	}
	if h.TimebaseNum == 0 {
		h.TimebaseNum = 1
	}

	b := make([]byte, fileHeaderLen)
	copy(b[0:4], "DKIF")
	binary.LittleEndian.PutUint16(b[4:6], 0) // version
	binary.LittleEndian.PutUint16(b[6:8], fileHeaderLen)
	copy(b[8:12], "VP80")
	binary.LittleEndian.PutUint16(b[12:14], h.Width)
	binary.LittleEndian.PutUint16(b[14:16], h.Height)
	binary.LittleEndian.PutUint32(b[16:20], h.TimebaseDen)
	binary.LittleEndian.PutUint32(b[20:24], h.TimebaseNum)
	binary.LittleEndian.PutUint32(b[24:28], h.FrameCount)

	if _, err := out.Write(b); err != nil {
		return nil, fmt.Errorf("ivf: write header: %w", err)
	}
	return &Writer{out: out}, nil
}

// WriteFrame appends one frame with the given timestamp.
func (w *Writer) WriteFrame(frame []byte, timestamp uint64) error {
	if w.closed {
		return ErrClosed
	}

	h := make([]byte, frameHeaderLen)
	binary.LittleEndian.PutUint32(h[0:4], uint32(len(frame)))
	binary.LittleEndian.PutUint64(h[4:12], timestamp)

	if _, err := w.out.Write(h); err != nil {
		return fmt.Errorf("ivf: write frame header: %w", err)
	}
	if _, err := w.out.Write(frame); err != nil {
		return fmt.Errorf("ivf: write frame: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of frames written.
func (w *Writer) Count() uint32 {
	return w.count
}

// Close marks the writer closed. It does not close the underlying writer.
// Close is idempotent.
func (w *Writer) Close() error {
	w.closed = true
	return nil
}
