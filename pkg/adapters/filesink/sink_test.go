package filesink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/webmrec/pkg/mocks"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem())
	require.True(t, sink.Enabled())
}

func TestSink_SaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	require.NoError(t, sink.SaveFrame(0, []byte{0x10, 0x02, 0x00}))
	require.NoError(t, sink.SaveFrame(12, []byte{0x30}))

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "frames", "frame-0000.vp8"))
	require.True(t, ok)
	require.Equal(t, []byte{0x10, 0x02, 0x00}, saved)

	names, err := fs.ReadDir(filepath.Join(testBaseDir, "frames"))
	require.NoError(t, err)
	require.Equal(t, []string{"frame-0000.vp8", "frame-0012.vp8"}, names)
}

func TestSink_SaveIVF(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	require.NoError(t, sink.SaveIVF([]byte("DKIF")))

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "frames.ivf"))
	require.True(t, ok)
	require.Equal(t, "DKIF", string(saved))
}

func TestSink_SaveClusterJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"clusters":[]}`)
	require.NoError(t, sink.SaveClusterJSON(data))

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "clusters.json"))
	require.True(t, ok)
	require.Equal(t, data, saved)
}
