package ffmpegwebp

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/webmrec/pkg/adapters/logger"
	"github.com/user/webmrec/pkg/webp"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.8, 80},
		{0.756, 76},
		{1, 100},
		{-1, 0},
		{2, 100},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Quality(tt.in), "quality %v", tt.in)
	}
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(320, 240, 75)

	require.Contains(t, args, "320x240")
	require.Contains(t, args, "libwebp")
	require.Equal(t, "pipe:0", args[indexOf(args, "-i")+1])
	require.Equal(t, "75", args[indexOf(args, "-quality")+1])
	require.Equal(t, "pipe:1", args[len(args)-1])
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

func TestFindFFmpeg_CustomPathMissing(t *testing.T) {
	_, err := FindFFmpeg(filepath.Join(t.TempDir(), "ffmpeg"))
	require.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestFindFFmpeg_EnvPathMissing(t *testing.T) {
	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "ffmpeg"))

	_, err := FindFFmpeg("")
	require.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestEncoder_MissingFFmpeg(t *testing.T) {
	enc := New(filepath.Join(t.TempDir(), "ffmpeg"), logger.NewNoop())

	_, err := enc.EncodeWebP(image.NewRGBA(image.Rect(0, 0, 8, 8)), 0.8)
	require.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestEncoder_EncodeWebP(t *testing.T) {
	if !IsFFmpegAvailable() {
		t.Skip("ffmpeg not available")
	}

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}

	uri, err := New("", logger.NewNoop()).EncodeWebP(img, 0.8)
	if err != nil {
		// ffmpeg builds without libwebp are common
		t.Skipf("ffmpeg could not encode webp: %v", err)
	}

	frame, err := webp.Decode(uri)
	require.NoError(t, err)
	require.Equal(t, uint16(64), frame.Width)
	require.Equal(t, uint16(48), frame.Height)
}
