package ebml

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeVint_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x80}},
		{"one", 1, []byte{0x81}},
		{"largest one byte", 126, []byte{0xFE}},
		{"reserved one byte pattern", 127, []byte{0x40, 0x7F}},
		{"largest two bytes", 1<<14 - 2, []byte{0x7F, 0xFE}},
		{"three bytes", 1<<14 - 1, []byte{0x20, 0x3F, 0xFF}},
		{"largest eight bytes", 1<<56 - 2, []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeVint(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeVint_TooLarge(t *testing.T) {
	for _, v := range []uint64{1<<56 - 1, 1 << 56, 1<<64 - 1} {
		_, err := EncodeVint(v)
		require.ErrorIs(t, err, ErrValueTooLarge)
	}
}

func TestVint_RoundTripAndMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	values := []uint64{0, 1, 126, 127, 128, 255, 16382, 16383, 1 << 21, 1<<28 - 2, 1<<56 - 2}
	for width := 1; width <= 56; width++ {
		for i := 0; i < 20; i++ {
			values = append(values, rng.Uint64()>>(64-uint(width)))
		}
	}

	for _, v := range values {
		if v >= 1<<56-1 {
			continue
		}
		encoded, err := EncodeVint(v)
		require.NoError(t, err, "value %d", v)

		decoded, n, err := DecodeVint(encoded)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), n)

		// one byte fewer must not be able to hold v
		if n > 1 {
			require.GreaterOrEqual(t, v, uint64(1)<<(7*uint(n-1))-1, "value %d not minimal in %d bytes", v, n)
		}
	}
}

func TestDecodeVint_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"no marker", []byte{0x00, 0xFF}},
		{"truncated", []byte{0x40}},
		{"truncated eight bytes", []byte{0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeVint(tt.input)
			require.ErrorIs(t, err, ErrInvalidVint)
		})
	}
}

func TestDecodeVint_IgnoresTrailingBytes(t *testing.T) {
	v, n, err := DecodeVint([]byte{0x40, 0x7F, 0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, uint64(127), v)
	require.Equal(t, 2, n)
}
