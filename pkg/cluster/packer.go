// Package cluster groups VP8 frames into time-bounded WebM clusters.
package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/user/webmrec/pkg/ebml"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/webp"
)

const (
	// DefaultMaxDurationMs is the default cluster duration ceiling.
	DefaultMaxDurationMs = 30000

	// TrackNumber is the only track this encoder writes.
	TrackNumber = 1
)

// ErrInvalidDuration is returned for a frame whose duration is not finite
// and positive.
var ErrInvalidDuration = errors.New("cluster: frame duration must be finite and positive")

// Cluster is a run of blocks sharing a base timecode.
type Cluster struct {
	TimecodeMs uint64
	DurationMs float64 // Sum of source frame durations
	Blocks     []SimpleBlock
}

// Pack splits frames into clusters in a single greedy pass. A frame joins
// the current cluster unless that would push the cluster's summed duration
// past maxDurationMs; a cluster always takes at least one frame. Each
// block's timecode is its offset within its cluster, rounded to the
// nearest millisecond.
func Pack(frames []pipeline.DecodedFrame, maxDurationMs float64) ([]Cluster, error) {
	if maxDurationMs <= 0 {
		maxDurationMs = DefaultMaxDurationMs
	}

	var (
		clusters []Cluster
		current  *Cluster
		globalMs float64
	)

	for i, f := range frames {
		if !pipeline.ValidDurationMs(f.DurationMs) {
			return nil, &pipeline.FrameError{Index: i, Err: fmt.Errorf("%w: %v ms", ErrInvalidDuration, f.DurationMs)}
		}
		if current == nil || current.DurationMs+f.DurationMs > maxDurationMs {
			clusters = append(clusters, Cluster{TimecodeMs: uint64(math.Round(globalMs))})
			current = &clusters[len(clusters)-1]
		}

		relative := math.Round(current.DurationMs)
		if relative > math.MaxInt16 {
			return nil, fmt.Errorf("frame %d: relative timecode %.0f ms: %w", i, relative, ebml.ErrValueTooLarge)
		}

		bitstream, err := webp.VP8Bitstream(f.Payload)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		current.Blocks = append(current.Blocks, SimpleBlock{
			TrackNumber:        TrackNumber,
			RelativeTimecodeMs: int16(relative),
			Flags:              FlagKeyframe,
			Frame:              bitstream,
		})
		current.DurationMs += f.DurationMs
		globalMs += f.DurationMs
	}

	return clusters, nil
}

// Node builds the EBML element for a cluster.
func Node(c Cluster) (ebml.Node, error) {
	node := ebml.Master(ebml.IDCluster, ebml.Uint(ebml.IDTimecode, c.TimecodeMs))
	for i, b := range c.Blocks {
		body, err := EncodeBlock(b)
		if err != nil {
			return ebml.Node{}, fmt.Errorf("block %d: %w", i, err)
		}
		node = node.Append(ebml.Bytes(ebml.IDSimpleBlock, body))
	}
	return node, nil
}

// Encode serializes a cluster to EBML.
func Encode(c Cluster) ([]byte, error) {
	node, err := Node(c)
	if err != nil {
		return nil, err
	}
	return ebml.Serialize(node)
}
