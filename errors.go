package glitz

import "errors"

// Errors returned by the context API.
var (
	// ErrInvalidOption is returned for malformed context options.
	ErrInvalidOption = errors.New("glitz: invalid context option")

	// ErrClosed is returned when a closed context is used.
	ErrClosed = errors.New("glitz: context closed")

	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("glitz: object has been released")

	// ErrUnsupportedFormat is returned for texture formats WebGL2 cannot
	// store or sample.
	ErrUnsupportedFormat = errors.New("glitz: unsupported texture format")

	// ErrInvalidSize is returned for zero or mismatched dimensions and data
	// lengths.
	ErrInvalidSize = errors.New("glitz: invalid size")
)
