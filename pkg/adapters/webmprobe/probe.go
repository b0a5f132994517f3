// Package webmprobe demuxes WebM files with a third-party EBML parser and
// reports their structure. It is used by the inspect command and to check
// muxer output against an independent reader.
package webmprobe

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/at-wat/ebml-go"
	"golang.org/x/image/vp8"
)

var (
	// ErrNotWebM is returned when the DocType is not "webm".
	ErrNotWebM = errors.New("webmprobe: not a webm file")

	// ErrNoVideoTrack is returned when no TrackEntry describes a video track.
	ErrNoVideoTrack = errors.New("webmprobe: no video track")
)

const trackTypeVideo = 1

// Report describes a demuxed file.
type Report struct {
	EBMLVersion    uint64    `json:"ebml_version"`
	DocType        string    `json:"doc_type"`
	DocTypeVersion uint64    `json:"doc_type_version"`
	MuxingApp      string    `json:"muxing_app"`
	WritingApp     string    `json:"writing_app"`
	TimecodeScale  uint64    `json:"timecode_scale"`
	DurationMs     float64   `json:"duration_ms"`
	Track          Track     `json:"track"`
	Clusters       []Cluster `json:"clusters"`
}

// Track is the video TrackEntry.
type Track struct {
	Number    uint64 `json:"number"`
	UID       uint64 `json:"uid"`
	Language  string `json:"language"`
	CodecID   string `json:"codec_id"`
	CodecName string `json:"codec_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Cluster is one demuxed cluster.
type Cluster struct {
	TimecodeMs uint64  `json:"timecode_ms"`
	Blocks     []Block `json:"blocks"`
}

// Block is one SimpleBlock. Width and Height come from the VP8 frame
// header in the block data.
type Block struct {
	TrackNumber        uint64 `json:"track_number"`
	RelativeTimecodeMs int16  `json:"relative_timecode_ms"`
	Size               int    `json:"size"`
	Keyframe           bool   `json:"keyframe"`
	Width              int    `json:"width"`
	Height             int    `json:"height"`
}

// FrameCount returns the number of blocks in all clusters.
func (r Report) FrameCount() int {
	n := 0
	for _, c := range r.Clusters {
		n += len(c.Blocks)
	}
	return n
}

// Timecodes returns the absolute timecode of every block in order.
func (r Report) Timecodes() []int64 {
	var out []int64
	for _, c := range r.Clusters {
		for _, b := range c.Blocks {
			out = append(out, int64(c.TimecodeMs)+int64(b.RelativeTimecodeMs))
		}
	}
	return out
}

// ProbeBytes is Probe for an in-memory file.
func ProbeBytes(data []byte) (Report, error) {
	return Probe(bytes.NewReader(data))
}

// Probe demuxes a WebM stream.
func Probe(r io.Reader) (Report, error) {
	var c container
	if err := ebml.Unmarshal(r, &c); err != nil {
		return Report{}, fmt.Errorf("webmprobe: unmarshal: %w", err)
	}

	if c.Header.EBMLDocType != "webm" {
		return Report{}, fmt.Errorf("%w: doc type %q", ErrNotWebM, c.Header.EBMLDocType)
	}

	report := Report{
		EBMLVersion:    c.Header.EBMLVersion,
		DocType:        c.Header.EBMLDocType,
		DocTypeVersion: c.Header.EBMLDocTypeVersion,
		MuxingApp:      c.Segment.Info.MuxingApp,
		WritingApp:     c.Segment.Info.WritingApp,
		TimecodeScale:  c.Segment.Info.TimecodeScale,
		DurationMs:     c.Segment.Info.Duration,
	}

	found := false
	for _, t := range c.Segment.Tracks.TrackEntry {
		if t.TrackType != trackTypeVideo {
			continue
		}
		report.Track = Track{
			Number:    t.TrackNumber,
			UID:       t.TrackUID,
			Language:  t.Language,
			CodecID:   t.CodecID,
			CodecName: t.CodecName,
			Width:     int(t.Video.PixelWidth),
			Height:    int(t.Video.PixelHeight),
		}
		found = true
		break
	}
	if !found {
		return Report{}, ErrNoVideoTrack
	}

	for i, cl := range c.Segment.Cluster {
		pc := Cluster{TimecodeMs: cl.Timecode}
		for j, b := range cl.SimpleBlock {
			block, err := describeBlock(b)
			if err != nil {
				return Report{}, fmt.Errorf("webmprobe: cluster %d block %d: %w", i, j, err)
			}
			pc.Blocks = append(pc.Blocks, block)
		}
		report.Clusters = append(report.Clusters, pc)
	}

	return report, nil
}

func describeBlock(b ebml.Block) (Block, error) {
	var data []byte
	for _, d := range b.Data {
		data = append(data, d...)
	}

	block := Block{
		TrackNumber:        b.TrackNumber,
		RelativeTimecodeMs: b.Timecode,
		Size:               len(data),
		Keyframe:           b.Keyframe,
	}
	if !b.Keyframe {
		return block, nil
	}

	fh, err := frameHeader(data)
	if err != nil {
		return Block{}, err
	}
	block.Width = fh.Width
	block.Height = fh.Height
	return block, nil
}

// frameHeader parses the VP8 frame header without decoding macroblocks.
func frameHeader(data []byte) (vp8.FrameHeader, error) {
	d := vp8.NewDecoder()
	d.Init(bytes.NewReader(data), len(data))
	return d.DecodeFrameHeader()
}
