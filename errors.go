package rgbproc

import "errors"

// Stream errors.
var (
	// ErrEndOfStream is returned by WindowStream once every pixel of the
	// frame (or of a truncated source) has been produced. It is the normal
	// way a stream finishes and is not a failure.
	ErrEndOfStream = errors.New("rgbproc: end of stream")

	// ErrResetUnsupported is returned when a stream is reset over a source
	// that cannot rewind.
	ErrResetUnsupported = errors.New("rgbproc: source does not support rewind")

	// ErrInvalidResolution is returned when width or height is non-positive.
	ErrInvalidResolution = errors.New("rgbproc: invalid resolution")
)
