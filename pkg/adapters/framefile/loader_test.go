package framefile

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/webmrec/pkg/adapters/logger"
	"github.com/user/webmrec/pkg/mocks"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/webp"
	"github.com/user/webmrec/pkg/webp/webptest"
)

var testDir = filepath.Join("frames")

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoader_LoadDir(t *testing.T) {
	fs := mocks.NewFileSystem()
	require.NoError(t, fs.WriteFile(filepath.Join(testDir, "0002.png"), pngBytes(t, 16, 8)))
	require.NoError(t, fs.WriteFile(filepath.Join(testDir, "0001.webp"), webptest.File(16, 8, 4)))
	require.NoError(t, fs.WriteFile(filepath.Join(testDir, "notes.txt"), []byte("skip me")))

	frames, err := New(fs, logger.NewNoop()).LoadDir(testDir)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	require.Equal(t, "0001.webp", frames[0].Name)
	uri, ok := frames[0].Source.(pipeline.EncodedImage)
	require.True(t, ok)
	f, err := webp.Decode(string(uri))
	require.NoError(t, err)
	require.Equal(t, uint16(16), f.Width)

	require.Equal(t, "0002.png", frames[1].Name)
	pb, ok := frames[1].Source.(pipeline.PixelBuffer)
	require.True(t, ok)
	require.Equal(t, image.Rect(0, 0, 16, 8), pb.Image.Bounds())
}

func TestLoader_LoadDir_Empty(t *testing.T) {
	fs := mocks.NewFileSystem()
	require.NoError(t, fs.WriteFile(filepath.Join(testDir, "readme.md"), []byte("#")))

	_, err := New(fs, logger.NewNoop()).LoadDir(testDir)
	require.ErrorIs(t, err, ErrNoImages)
}

func TestLoader_LoadDir_Missing(t *testing.T) {
	_, err := New(mocks.NewFileSystem(), logger.NewNoop()).LoadDir("nope")
	require.Error(t, err)
}

func TestLoader_LoadFile_Corrupt(t *testing.T) {
	fs := mocks.NewFileSystem()
	path := filepath.Join(testDir, "bad.png")
	require.NoError(t, fs.WriteFile(path, []byte("not a png")))

	_, err := New(fs, logger.NewNoop()).LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.png")
}

func TestLoader_Fit(t *testing.T) {
	fs := mocks.NewFileSystem()
	path := filepath.Join(testDir, "big.png")
	require.NoError(t, fs.WriteFile(path, pngBytes(t, 64, 32)))

	l := New(fs, logger.NewNoop())
	l.FitWidth, l.FitHeight = 32, 16

	frame, err := l.LoadFile(path)
	require.NoError(t, err)
	pb := frame.Source.(pipeline.PixelBuffer)
	require.Equal(t, image.Rect(0, 0, 32, 16), pb.Image.Bounds())
}

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	dst := Resize(src, 5, 4)
	require.Equal(t, image.Rect(0, 0, 5, 4), dst.Bounds())
	r, _, _, a := dst.At(2, 2).RGBA()
	require.Equal(t, uint32(0xffff), a)
	require.InDelta(t, 200*0x101, r, 0x200)
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("a.WEBP"))
	require.True(t, Supported("a.jpeg"))
	require.True(t, Supported("a.png"))
	require.False(t, Supported("a.gif"))
	require.False(t, Supported("webp"))
}
