package ebml

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Serialize encodes a node and all of its descendants.
func Serialize(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeAll encodes a sequence of top-level nodes back to back.
func SerializeAll(nodes ...Node) ([]byte, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := write(&buf, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func write(buf *bytes.Buffer, n Node) error {
	if n.Kind == KindRaw {
		buf.Write(n.rawValue)
		return nil
	}

	payload, err := encodeValue(n)
	if err != nil {
		return fmt.Errorf("element 0x%X: %w", n.ID, err)
	}

	size, err := EncodeVint(uint64(len(payload)))
	if err != nil {
		return fmt.Errorf("element 0x%X: %w", n.ID, err)
	}

	buf.Write(encodeID(n.ID))
	buf.Write(size)
	buf.Write(payload)
	return nil
}

func encodeValue(n Node) ([]byte, error) {
	switch n.Kind {
	case KindUint:
		if n.width > 0 {
			return encodeFixedUint(n.uintValue, n.width)
		}
		return encodeUint(n.uintValue), nil
	case KindFloat:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, math.Float64bits(n.floatValue))
		return b, nil
	case KindString:
		return []byte(n.strValue), nil
	case KindBytes:
		return n.rawValue, nil
	case KindMaster:
		var children bytes.Buffer
		for _, c := range n.children {
			if err := write(&children, c); err != nil {
				return nil, err
			}
		}
		return children.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", n.Kind)
	}
}

// encodeUint writes v big-endian without leading zero bytes; zero takes one byte.
func encodeUint(v uint64) []byte {
	n := 1
	for x := v >> 8; x > 0; x >>= 8 {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func encodeFixedUint(v uint64, width int) ([]byte, error) {
	if width > 8 || (width < 8 && v>>(8*uint(width)) != 0) {
		return nil, fmt.Errorf("%w: %d in %d bytes", ErrInvalidWidth, v, width)
	}
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b, nil
}

// encodeID writes an element ID in its minimal byte form.
func encodeID(id uint32) []byte {
	return encodeUint(uint64(id))
}
