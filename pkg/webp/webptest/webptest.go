// Package webptest builds synthetic lossy WebP images for tests.
//
// The images carry a valid RIFF/WEBP/"VP8 " structure and a VP8 keyframe
// header, followed by filler bytes instead of real macroblock data. That is
// enough for container-level code and for VP8 frame-header parsing.
package webptest

import (
	"encoding/base64"
	"encoding/binary"
)

// Bitstream returns a VP8 keyframe: 3-byte frame tag, start code,
// dimensions, then filler bytes.
func Bitstream(width, height uint16, filler int) []byte {
	b := make([]byte, 10+filler)

	// frame tag: keyframe (bit 0 clear), version 0, show_frame set,
	// first partition size in the upper 19 bits
	part := uint32(filler)
	tag := part<<5 | 1<<4
	b[0] = byte(tag)
	b[1] = byte(tag >> 8)
	b[2] = byte(tag >> 16)

	b[3], b[4], b[5] = 0x9d, 0x01, 0x2a
	binary.LittleEndian.PutUint16(b[6:8], width&0x3FFF)
	binary.LittleEndian.PutUint16(b[8:10], height&0x3FFF)

	for i := 0; i < filler; i++ {
		b[10+i] = byte(i%200 + 10)
	}
	return b
}

// File returns a complete simple-format lossy WebP file.
func File(width, height uint16, filler int) []byte {
	return wrap(Bitstream(width, height, filler))
}

// DataURI returns File as a base64 data URI.
func DataURI(width, height uint16, filler int) string {
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(File(width, height, filler))
}

// Chunk encodes one RIFF chunk, padded to even length.
func Chunk(id string, payload []byte) []byte {
	b := make([]byte, 8, 8+len(payload)+1)
	copy(b[0:4], id)
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(payload)))
	b = append(b, payload...)
	if len(payload)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

// Riff wraps chunks in a RIFF container with the WEBP form type.
func Riff(chunks ...[]byte) []byte {
	body := []byte("WEBP")
	for _, c := range chunks {
		body = append(body, c...)
	}
	return Chunk("RIFF", body)
}

func wrap(bitstream []byte) []byte {
	return Riff(Chunk("VP8 ", bitstream))
}
