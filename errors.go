package glide

import "errors"

var (
	// ErrEmptySequence is returned when an effect or image sequence has no
	// elements and therefore cannot be indexed.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrInvalidResolution is returned when a width or height is not positive.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrInvalidConfig is returned when a configuration fails validation for
	// any reason other than an empty sequence or a bad resolution.
	ErrInvalidConfig = errors.New("invalid config")
)
