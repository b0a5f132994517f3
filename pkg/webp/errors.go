package webp

import "errors"

var (
	// ErrMalformedContainer is returned when the data URI or RIFF structure is invalid.
	ErrMalformedContainer = errors.New("webp: malformed container")

	// ErrKeyframeNotFound is returned when the WEBP payload holds no VP8 keyframe start code.
	ErrKeyframeNotFound = errors.New("webp: VP8 keyframe not found")
)
