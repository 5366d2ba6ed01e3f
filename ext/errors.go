package ext

import "errors"

var (
	// ErrLengthMismatch indicates a payload's length disagrees with the
	// registry's fixed length for its tag.
	ErrLengthMismatch = errors.New("ext: payload length mismatch")

	// ErrExtensionExists indicates an Add for a tag already present.
	ErrExtensionExists = errors.New("ext: extension already exists")

	// ErrExtensionNotFound indicates the requested tag has no block.
	ErrExtensionNotFound = errors.New("ext: extension not found")

	// ErrMaxExtensions indicates the buffer already carries MaxExtensions blocks.
	ErrMaxExtensions = errors.New("ext: max extensions reached")

	// ErrCapacityExceeded indicates the provider refused to grow the buffer.
	// Nothing has been written when this is returned.
	ErrCapacityExceeded = errors.New("ext: capacity exceeded")

	// ErrCorrupted indicates the buffer is not well formed: a position that
	// must hold the block sentinel does not, or a declared length runs past
	// the end of the buffer, or a known tag declares the wrong length. Never
	// auto-repaired; the buffer should not be trusted.
	ErrCorrupted = errors.New("ext: corrupted extension region")

	// ErrUnknownTag indicates a tag byte outside the registry.
	ErrUnknownTag = errors.New("ext: unknown extension tag")
)
