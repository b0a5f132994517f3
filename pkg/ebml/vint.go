package ebml

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// MaxVintSize is the largest number of bytes a size vint may occupy.
const MaxVintSize = 8

// VintSize returns the number of bytes needed to encode v as a size vint,
// or 0 if v cannot be encoded. The all-ones pattern of each width is
// reserved for "unknown size", so a width n holds values up to 2^(7n)-2.
func VintSize(v uint64) int {
	for n := 1; n <= MaxVintSize; n++ {
		if v < (uint64(1)<<(7*uint(n)))-1 {
			return n
		}
	}
	return 0
}

// EncodeVint encodes v as an EBML variable-size integer: n-1 zero bits,
// a marker bit, then v right-justified in 7n bits.
func EncodeVint(v uint64) ([]byte, error) {
	n := VintSize(v)
	if n == 0 {
		return nil, fmt.Errorf("%w: size %d", ErrValueTooLarge, v)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if n > 1 {
		if err := w.WriteBits(0, uint8(n-1)); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBool(true); err != nil {
		return nil, err
	}
	if err := w.WriteBits(v, uint8(7*n)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeVint decodes a size vint from the start of b and returns its value
// and encoded length.
func DecodeVint(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty input", ErrInvalidVint)
	}

	r := bitio.NewReader(bytes.NewReader(b))
	n := 1
	for {
		marker, err := r.ReadBool()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidVint, err)
		}
		if marker {
			break
		}
		n++
		if n > MaxVintSize {
			return 0, 0, fmt.Errorf("%w: no marker in first byte", ErrInvalidVint)
		}
	}
	if len(b) < n {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrInvalidVint, n, len(b))
	}

	v, err := r.ReadBits(uint8(7 * n))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidVint, err)
	}
	return v, n, nil
}
