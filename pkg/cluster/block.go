package cluster

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTrackNumber is returned for track numbers that do not fit a 1-byte vint.
var ErrTrackNumber = errors.New("cluster: track number must be 1-127")

// BlockFlags is the SimpleBlock flags byte.
type BlockFlags uint8

const (
	// FlagKeyframe marks a block decodable on its own.
	FlagKeyframe BlockFlags = 0x80
	// FlagInvisible marks a block that must be decoded but not shown.
	FlagInvisible BlockFlags = 0x08
	// FlagDiscardable marks a block a player may drop.
	FlagDiscardable BlockFlags = 0x01
)

// Lacing is the lacing mode stored in bits 1-2 of the flags byte.
type Lacing uint8

const (
	LacingNone Lacing = iota
	LacingXiph
	LacingFixedSize
	LacingEBML
)

// WithLacing returns f with its lacing bits set to l.
func (f BlockFlags) WithLacing(l Lacing) BlockFlags {
	return f&^0x06 | BlockFlags(l&0x03)<<1
}

// Lacing returns the lacing mode encoded in f.
func (f BlockFlags) Lacing() Lacing {
	return Lacing(f>>1) & 0x03
}

// Keyframe reports whether the keyframe bit is set.
func (f BlockFlags) Keyframe() bool {
	return f&FlagKeyframe != 0
}

// SimpleBlock is one frame inside a cluster.
type SimpleBlock struct {
	TrackNumber        uint8
	RelativeTimecodeMs int16
	Flags              BlockFlags
	Frame              []byte
}

// EncodeBlock returns the SimpleBlock element body: track number vint,
// big-endian signed timecode, flags, frame bytes.
func EncodeBlock(b SimpleBlock) ([]byte, error) {
	if b.TrackNumber == 0 || b.TrackNumber > 127 {
		return nil, fmt.Errorf("%w: %d", ErrTrackNumber, b.TrackNumber)
	}

	out := make([]byte, 4, 4+len(b.Frame))
	out[0] = 0x80 | b.TrackNumber
	binary.BigEndian.PutUint16(out[1:3], uint16(b.RelativeTimecodeMs))
	out[3] = byte(b.Flags)
	return append(out, b.Frame...), nil
}
