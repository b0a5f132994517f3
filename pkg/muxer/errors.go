package muxer

import (
	"errors"

	"github.com/user/webmrec/pkg/cluster"
	"github.com/user/webmrec/pkg/ebml"
)

var (
	// ErrNoFrames is returned when compiling an empty frame set.
	ErrNoFrames = errors.New("muxer: no frames")

	// ErrInconsistentDimensions is returned when a frame's size differs
	// from the first frame's.
	ErrInconsistentDimensions = errors.New("muxer: inconsistent frame dimensions")

	// ErrValueTooLarge is returned when a size or timecode does not fit
	// its EBML field.
	ErrValueTooLarge = ebml.ErrValueTooLarge

	// ErrInvalidDuration is returned for a frame whose duration is not
	// finite and positive.
	ErrInvalidDuration = cluster.ErrInvalidDuration
)
