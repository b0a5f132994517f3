// Package webp extracts VP8 keyframes from lossy single-frame WebP images.
package webp

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
)

// DataURIPrefix is the prefix every encoded frame carries.
const DataURIPrefix = "data:image/webp;base64,"

// vp8StartCode marks the start of a VP8 keyframe header.
var vp8StartCode = []byte{0x9d, 0x01, 0x2a}

// Frame is a decoded WebP frame.
type Frame struct {
	// Payload is the whole WEBP form body, chunk headers included.
	// Use VP8Bitstream to get the bytes a SimpleBlock carries.
	Payload []byte
	Width   uint16
	Height  uint16
}

// DataURI wraps raw WebP file bytes as a base64 data URI.
func DataURI(webpFile []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(webpFile)
}

// Decode parses a WebP data URI and returns its WEBP payload with the
// keyframe dimensions.
func Decode(dataURI string) (Frame, error) {
	if !strings.HasPrefix(dataURI, DataURIPrefix) {
		return Frame{}, fmt.Errorf("%w: missing %q prefix", ErrMalformedContainer, DataURIPrefix)
	}

	raw, err := base64.StdEncoding.DecodeString(dataURI[len(DataURIPrefix):])
	if err != nil {
		return Frame{}, fmt.Errorf("%w: base64: %v", ErrMalformedContainer, err)
	}

	return DecodeBytes(raw)
}

// DecodeBytes is Decode for raw WebP file bytes.
func DecodeBytes(raw []byte) (Frame, error) {
	chunks, err := ParseRIFF(raw)
	if err != nil {
		return Frame{}, err
	}

	payload, ok := chunks.First("WEBP")
	if !ok {
		return Frame{}, fmt.Errorf("%w: no WEBP chunk", ErrMalformedContainer)
	}

	width, height, err := keyframeDimensions(payload)
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		Payload: payload,
		Width:   width,
		Height:  height,
	}, nil
}

// keyframeDimensions reads the two little-endian 14-bit fields after the
// VP8 start code. The upper two bits of each are scaling and are dropped.
func keyframeDimensions(payload []byte) (uint16, uint16, error) {
	idx := bytes.Index(payload, vp8StartCode)
	if idx < 0 {
		return 0, 0, ErrKeyframeNotFound
	}

	dims := payload[idx+len(vp8StartCode):]
	if len(dims) < 4 {
		return 0, 0, fmt.Errorf("%w: truncated keyframe header", ErrKeyframeNotFound)
	}

	width := binary.LittleEndian.Uint16(dims[0:2]) & 0x3FFF
	height := binary.LittleEndian.Uint16(dims[2:4]) & 0x3FFF
	return width, height, nil
}

// VP8Bitstream strips the WebP chunk framing from a WEBP payload and
// returns the VP8 chunk data. Both the simple layout ("VP8 " only) and the
// extended layout (VP8X, ALPH, ...) are accepted.
func VP8Bitstream(payload []byte) ([]byte, error) {
	chunks, err := ParseRIFF(payload)
	if err != nil {
		return nil, err
	}
	bitstream, ok := chunks.First("VP8 ")
	if !ok {
		return nil, fmt.Errorf("%w: no VP8 chunk", ErrMalformedContainer)
	}
	return bitstream, nil
}
