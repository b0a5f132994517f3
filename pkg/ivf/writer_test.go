package ivf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, Header{Width: 320, Height: 240, FrameCount: 2})
	require.NoError(t, err)
	require.NoError(t, w.WriteFrame([]byte{1, 2, 3}, 0))
	require.NoError(t, w.WriteFrame([]byte{4, 5}, 33))
	require.NoError(t, w.Close())
	require.Equal(t, uint32(2), w.Count())

	b := buf.Bytes()
	require.Len(t, b, 32+12+3+12+2)
	require.Equal(t, "DKIF", string(b[0:4]))
	require.Equal(t, uint16(32), binary.LittleEndian.Uint16(b[6:8]))
	require.Equal(t, "VP80", string(b[8:12]))
	require.Equal(t, uint16(320), binary.LittleEndian.Uint16(b[12:14]))
	require.Equal(t, uint16(240), binary.LittleEndian.Uint16(b[14:16]))
	require.Equal(t, uint32(1000), binary.LittleEndian.Uint32(b[16:20]))
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(b[20:24]))
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[24:28]))

	second := b[32+12+3:]
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(second[0:4]))
	require.Equal(t, uint64(33), binary.LittleEndian.Uint64(second[4:12]))
	require.Equal(t, []byte{4, 5}, second[12:])
}

func TestWriter_Closed(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, Header{})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.WriteFrame([]byte{1}, 0), ErrClosed)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_Errors(t *testing.T) {
	_, err := NewWriter(nil, Header{})
	require.Error(t, err)

	_, err = NewWriter(failingWriter{}, Header{})
	require.Error(t, err)
}
