package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMarkerMismatch indicates a block position had an unexpected sentinel.
	ErrMarkerMismatch = errors.New("format: block marker mismatch")
)
