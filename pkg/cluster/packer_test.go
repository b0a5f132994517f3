package cluster

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/webmrec/pkg/ebml"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/webp/webptest"
)

// frame returns a decoded frame whose filler length tags it with id.
func frame(id int, durationMs float64) pipeline.DecodedFrame {
	return pipeline.DecodedFrame{
		Payload:    webptest.File(320, 240, id)[12:],
		Width:      320,
		Height:     240,
		DurationMs: durationMs,
	}
}

func frames(durations ...float64) []pipeline.DecodedFrame {
	out := make([]pipeline.DecodedFrame, len(durations))
	for i, d := range durations {
		out[i] = frame(i, d)
	}
	return out
}

func relativeTimecodes(c Cluster) []int16 {
	out := make([]int16, len(c.Blocks))
	for i, b := range c.Blocks {
		out[i] = b.RelativeTimecodeMs
	}
	return out
}

func TestPack_SingleCluster(t *testing.T) {
	clusters, err := Pack(frames(33, 33, 34), DefaultMaxDurationMs)
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	c := clusters[0]
	require.Equal(t, uint64(0), c.TimecodeMs)
	require.Equal(t, []int16{0, 33, 66}, relativeTimecodes(c))
	require.Equal(t, 100.0, c.DurationMs)

	for _, b := range c.Blocks {
		require.Equal(t, uint8(TrackNumber), b.TrackNumber)
		require.Equal(t, FlagKeyframe, b.Flags)
	}
}

func TestPack_SplitsAtCeiling(t *testing.T) {
	clusters, err := Pack(frames(40, 40, 40, 40, 40), 100)
	require.NoError(t, err)
	require.Len(t, clusters, 3)

	require.Equal(t, uint64(0), clusters[0].TimecodeMs)
	require.Equal(t, []int16{0, 40}, relativeTimecodes(clusters[0]))
	require.Equal(t, uint64(80), clusters[1].TimecodeMs)
	require.Equal(t, []int16{0, 40}, relativeTimecodes(clusters[1]))
	require.Equal(t, uint64(160), clusters[2].TimecodeMs)
	require.Equal(t, []int16{0}, relativeTimecodes(clusters[2]))
}

func TestPack_ExactFitStaysInCluster(t *testing.T) {
	clusters, err := Pack(frames(50, 50, 50), 100)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	require.Len(t, clusters[0].Blocks, 2)
	require.Equal(t, 100.0, clusters[0].DurationMs)
}

func TestPack_OversizedFrameGetsOwnCluster(t *testing.T) {
	clusters, err := Pack(frames(10, 500, 10), 100)
	require.NoError(t, err)
	require.Len(t, clusters, 3)
	require.Len(t, clusters[1].Blocks, 1)
	require.Equal(t, uint64(10), clusters[1].TimecodeMs)
	require.Equal(t, uint64(510), clusters[2].TimecodeMs)
}

func TestPack_RoundsFractionalDurations(t *testing.T) {
	d := 1000.0 / 30
	clusters, err := Pack(frames(d, d, d, d), 70)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	require.Equal(t, []int16{0, 33}, relativeTimecodes(clusters[0]))
	require.Equal(t, uint64(67), clusters[1].TimecodeMs)
}

func TestPack_DefaultCeiling(t *testing.T) {
	clusters, err := Pack(frames(20000, 20000), 0)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
}

func TestPack_RelativeTimecodeOverflow(t *testing.T) {
	_, err := Pack(frames(20000, 20000, 1), 60000)
	require.ErrorIs(t, err, ebml.ErrValueTooLarge)
}

func TestPack_Empty(t *testing.T) {
	clusters, err := Pack(nil, DefaultMaxDurationMs)
	require.NoError(t, err)
	require.Empty(t, clusters)
}

func TestPack_BlockCarriesVP8Bitstream(t *testing.T) {
	clusters, err := Pack(frames(33), DefaultMaxDurationMs)
	require.NoError(t, err)
	require.Equal(t, webptest.Bitstream(320, 240, 0), clusters[0].Blocks[0].Frame)
}

func TestPack_InvalidPayload(t *testing.T) {
	_, err := Pack([]pipeline.DecodedFrame{{Payload: []byte("junk"), DurationMs: 10}}, 100)
	require.Error(t, err)
}

func TestPack_InvalidDuration(t *testing.T) {
	tests := []struct {
		name      string
		durations []float64
		index     int
	}{
		{"zero", []float64{100, 0, 0}, 1},
		{"negative", []float64{-50, 10, 10}, 0},
		{"NaN", []float64{33, math.NaN()}, 1},
		{"+Inf", []float64{33, 33, math.Inf(1)}, 2},
		{"-Inf", []float64{math.Inf(-1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters, err := Pack(frames(tt.durations...), 100)
			require.ErrorIs(t, err, ErrInvalidDuration)
			require.Nil(t, clusters)

			var frameErr *pipeline.FrameError
			require.ErrorAs(t, err, &frameErr)
			require.Equal(t, tt.index, frameErr.Index)
		})
	}
}

func TestPack_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		ceiling := float64(rng.Intn(500) + 1)
		n := rng.Intn(60) + 1
		durations := make([]float64, n)
		for i := range durations {
			durations[i] = float64(rng.Intn(200)+1) + rng.Float64()
		}

		clusters, err := Pack(frames(durations...), ceiling)
		require.NoError(t, err)

		next := 0
		for _, c := range clusters {
			require.NotEmpty(t, c.Blocks, "no cluster may be empty")

			var sum float64
			for i, b := range c.Blocks {
				// frame order is preserved across cluster boundaries
				require.Equal(t, webptest.Bitstream(320, 240, next), b.Frame)
				if i < len(c.Blocks)-1 {
					sum += durations[next]
				}
				next++
			}
			require.Less(t, sum, ceiling)
		}
		require.Equal(t, n, next)
	}
}

func TestEncodeBlock(t *testing.T) {
	body, err := EncodeBlock(SimpleBlock{
		TrackNumber:        1,
		RelativeTimecodeMs: 300,
		Flags:              FlagKeyframe,
		Frame:              []byte{0xAA, 0xBB},
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x01, 0x2C, 0x80, 0xAA, 0xBB}, body)
}

func TestEncodeBlock_NegativeTimecode(t *testing.T) {
	body, err := EncodeBlock(SimpleBlock{TrackNumber: 2, RelativeTimecodeMs: -1})
	require.NoError(t, err)
	require.Equal(t, []byte{0x82, 0xFF, 0xFF, 0x00}, body)
}

func TestEncodeBlock_TrackNumber(t *testing.T) {
	for _, n := range []uint8{0, 128, 255} {
		_, err := EncodeBlock(SimpleBlock{TrackNumber: n})
		require.ErrorIs(t, err, ErrTrackNumber)
	}
}

func TestBlockFlags(t *testing.T) {
	f := FlagKeyframe | FlagInvisible | FlagDiscardable
	f = f.WithLacing(LacingEBML)
	require.Equal(t, BlockFlags(0x8F), f)
	require.Equal(t, LacingEBML, f.Lacing())
	require.True(t, f.Keyframe())

	f = f.WithLacing(LacingNone)
	require.Equal(t, BlockFlags(0x89), f)
	require.Equal(t, LacingNone, f.Lacing())
}

func TestEncode(t *testing.T) {
	c := Cluster{
		TimecodeMs: 1000,
		Blocks: []SimpleBlock{
			{TrackNumber: 1, RelativeTimecodeMs: 0, Flags: FlagKeyframe, Frame: []byte{0x01}},
		},
	}

	got, err := Encode(c)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x1F, 0x43, 0xB6, 0x75, 0x8B,
		0xE7, 0x82, 0x03, 0xE8,
		0xA3, 0x85, 0x81, 0x00, 0x00, 0x80, 0x01,
	}, got)
}

func TestDescribe(t *testing.T) {
	clusters, err := Pack(frames(40, 40, 40), 80)
	require.NoError(t, err)

	layout := Describe(clusters)
	require.Len(t, layout.Clusters, 2)
	require.Len(t, layout.Clusters[0].Blocks, 2)
	require.Equal(t, int16(40), layout.Clusters[0].Blocks[1].RelativeTimecodeMs)
	require.Equal(t, len(webptest.Bitstream(320, 240, 1)), layout.Clusters[0].Blocks[1].Size)
	require.True(t, layout.Clusters[1].Blocks[0].Keyframe)
}
