package ext

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/tlvkit/internal/format"
)

// Block describes one extension block's position within a buffer.
type Block struct {
	Tag    byte   // raw tag byte; may be outside the registry
	Offset int    // absolute offset of the block's marker
	Length uint16 // payload length (excludes the header)
}

// PayloadOffset returns the absolute offset of the block's payload.
func (b Block) PayloadOffset() int { return b.Offset + format.PayloadOffset }

// End returns the absolute offset just past the block's payload.
func (b Block) End() int { return b.PayloadOffset() + int(b.Length) }

// Layout is the structural view of a buffer's extension region.
type Layout struct {
	Blocks      []Block // insertion order
	RegionBytes int     // total bytes consumed by the region
}

// Count returns the number of blocks present.
func (l Layout) Count() int { return len(l.Blocks) }

// Iterator walks the extension region one block at a time. Restartable:
// construct a new one to rescan. Next returns io.EOF at the clean end of the
// region (determined by the buffer length) and an error wrapping ErrCorrupted
// when a position that must hold a block does not.
type Iterator struct {
	data []byte
	next int
	done bool
}

// NewIterator returns an iterator positioned at the first block (immediately
// after the base record).
func NewIterator(data []byte) *Iterator {
	return &Iterator{data: data, next: format.BaseLen}
}

// Next returns the next block or io.EOF.
func (it *Iterator) Next() (Block, error) {
	if it.done {
		return Block{}, io.EOF
	}
	data := it.data
	if len(data) < format.BaseLen {
		it.done = true
		return Block{}, fmt.Errorf("%w: buffer of %d bytes shorter than base record (%d)",
			ErrCorrupted, len(data), format.BaseLen)
	}

	// Clean end of region: exactly at the buffer's end. Anything between
	// "at the end" and "holds a full valid block" is corruption, not padding.
	if it.next == len(data) {
		it.done = true
		return Block{}, io.EOF
	}

	hdr, err := format.ReadBlockHeader(data, it.next)
	if err != nil {
		it.done = true
		return Block{}, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	// Known tags must declare exactly their registered length. Unregistered
	// tags are surfaced raw; Add/Get reject them at the API boundary.
	if want, ok := LengthFor(Tag(hdr.Tag)); ok && hdr.Length != want {
		it.done = true
		return Block{}, fmt.Errorf("%w: tag %s declares length %d, registry says %d",
			ErrCorrupted, Tag(hdr.Tag), hdr.Length, want)
	}

	blk := Block{Tag: hdr.Tag, Offset: it.next, Length: hdr.Length}
	it.next = blk.End()
	return blk, nil
}

// Scan walks the whole extension region and returns its layout. Fails with
// an error wrapping ErrCorrupted on any malformed block.
func Scan(data []byte) (Layout, error) {
	it := NewIterator(data)
	var l Layout
	for {
		blk, err := it.Next()
		if errors.Is(err, io.EOF) {
			l.RegionBytes = len(data) - format.BaseLen
			return l, nil
		}
		if err != nil {
			return Layout{}, err
		}
		l.Blocks = append(l.Blocks, blk)
	}
}

// Find returns the block for tag, scanning from the start of the region.
// The uniqueness invariant makes the first match the only one. The bool is
// false when the tag has no block; the error is non-nil only on corruption.
func Find(data []byte, tag Tag) (Block, bool, error) {
	it := NewIterator(data)
	for {
		blk, err := it.Next()
		if errors.Is(err, io.EOF) {
			return Block{}, false, nil
		}
		if err != nil {
			return Block{}, false, err
		}
		if blk.Tag == byte(tag) {
			return blk, true, nil
		}
	}
}
