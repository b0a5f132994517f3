package ebml

import "errors"

var (
	// ErrValueTooLarge is returned when a size needs more than 8 vint bytes.
	ErrValueTooLarge = errors.New("ebml: value too large")

	// ErrInvalidVint is returned when a vint cannot be decoded.
	ErrInvalidVint = errors.New("ebml: invalid vint")

	// ErrInvalidWidth is returned when a fixed-width unsigned value does not fit its width.
	ErrInvalidWidth = errors.New("ebml: value does not fit fixed width")
)
