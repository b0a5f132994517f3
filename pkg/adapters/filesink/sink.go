// Package filesink writes compile debug output to a directory.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/webmrec/pkg/ports"
)

// Sink saves debug output to files under baseDir:
//
//	frames/frame-0000.vp8   raw VP8 bitstream per frame
//	frames.ivf              all frames of the last compile
//	clusters.json           cluster layout of the last compile
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

func (s *Sink) SaveFrame(index int, bitstream []byte) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.vp8", index))
	return s.fs.WriteFile(path, bitstream)
}

func (s *Sink) SaveIVF(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "frames.ivf"), data)
}

func (s *Sink) SaveClusterJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "clusters.json"), data)
}

var _ ports.DebugSink = (*Sink)(nil)
