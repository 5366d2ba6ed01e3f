package format

import (
	"bytes"
	"fmt"
)

// BlockHeader is the decoded fixed-size header preceding every payload.
type BlockHeader struct {
	Tag    byte
	Length uint16
}

// IsMarker is a fast, zero-alloc check that b starts with the block sentinel.
func IsMarker(b []byte) bool {
	// caller must have ensured len(b) >= MarkerSize, but be defensive
	if len(b) < MarkerSize {
		return false
	}
	return bytes.Equal(b[:MarkerSize], BlockMarker)
}

// ReadBlockHeader decodes the block header at absolute offset off. It
// validates the sentinel and that the declared payload fits within the
// buffer; it does not consult any tag registry.
func ReadBlockHeader(b []byte, off int) (BlockHeader, error) {
	if off < 0 || off+BlockHeaderLen > len(b) {
		return BlockHeader{}, fmt.Errorf("%w: block header at 0x%X", ErrTruncated, off)
	}
	if !IsMarker(b[off:]) {
		return BlockHeader{}, fmt.Errorf("%w: at 0x%X", ErrMarkerMismatch, off)
	}
	h := BlockHeader{
		Tag:    b[off+TagOffset],
		Length: ReadU16(b, off+LengthOffset),
	}
	if off+BlockHeaderLen+int(h.Length) > len(b) {
		return BlockHeader{}, fmt.Errorf("%w: payload of %d at 0x%X exceeds buffer (%d)",
			ErrTruncated, h.Length, off, len(b))
	}
	return h, nil
}

// PutBlockHeader writes the sentinel, tag, and length at absolute offset off.
// The caller must have ensured BlockHeaderLen bytes of room.
func PutBlockHeader(b []byte, off int, tag byte, length uint16) {
	copy(b[off:], BlockMarker)
	b[off+TagOffset] = tag
	PutU16(b, off+LengthOffset, length)
}
