package ext

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/tlvkit/internal/buf"
	"github.com/joshuapare/tlvkit/internal/format"
)

// Engine mutates one buffer's extension region through a Provider. It is the
// only writer; everything else in the package is read-only.
//
// Every operation validates fully against a fresh scan before the first byte
// is written, so any validation error implies the buffer is byte-for-byte
// unchanged.
type Engine struct {
	p   Provider
	log *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger attaches a logger; operations log at debug level. Nil (the
// default) is silent.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an engine over p.
func NewEngine(p Provider, opts ...EngineOption) *Engine {
	e := &Engine{p: p}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) logOp(op string, tag Tag, args ...any) {
	if e.log == nil {
		return
	}
	e.log.Debug(op, append([]any{"tag", tag.String()}, args...)...)
}

// checkTagAndLength rejects unregistered tags and payloads whose length
// disagrees with the registry.
func checkTagAndLength(tag Tag, payload []byte) error {
	want, ok := LengthFor(tag)
	if !ok {
		return fmt.Errorf("%w: 0x%02X", ErrUnknownTag, byte(tag))
	}
	if len(payload) != int(want) {
		return fmt.Errorf("%w: tag %s wants %d bytes, got %d", ErrLengthMismatch, tag, want, len(payload))
	}
	return nil
}

// Add appends a new block for tag at the end of the extension region. Fails
// with ErrLengthMismatch, ErrUnknownTag, ErrCorrupted, ErrExtensionExists,
// ErrMaxExtensions, or ErrCapacityExceeded; on any failure the buffer is
// unchanged.
func (e *Engine) Add(tag Tag, payload []byte) error {
	if err := checkTagAndLength(tag, payload); err != nil {
		return err
	}

	layout, err := Scan(e.p.Bytes())
	if err != nil {
		return err
	}
	for _, blk := range layout.Blocks {
		if blk.Tag == byte(tag) {
			return fmt.Errorf("%w: tag %s", ErrExtensionExists, tag)
		}
	}
	if layout.Count() >= MaxExtensions {
		return fmt.Errorf("%w: %d blocks", ErrMaxExtensions, layout.Count())
	}

	// Validation done; nothing below may fail after the first written byte.
	oldEnd := len(e.p.Bytes())
	needed := format.BlockHeaderLen + len(payload)
	if err := e.p.Grow(needed); err != nil {
		return fmt.Errorf("%w: grow %d bytes: %v", ErrCapacityExceeded, needed, err)
	}

	data := e.p.Bytes()
	format.PutBlockHeader(data, oldEnd, byte(tag), uint16(len(payload)))
	copy(data[oldEnd+format.PayloadOffset:], payload)

	e.logOp("add extension", tag, "offset", oldEnd, "length", len(payload))
	return nil
}

// Update overwrites the payload of an existing block in place. The header is
// untouched and no other block moves. Fails with ErrLengthMismatch,
// ErrUnknownTag, ErrCorrupted, or ErrExtensionNotFound.
func (e *Engine) Update(tag Tag, payload []byte) error {
	if err := checkTagAndLength(tag, payload); err != nil {
		return err
	}
	blk, ok, err := Find(e.p.Bytes(), tag)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tag %s", ErrExtensionNotFound, tag)
	}

	copy(e.p.Bytes()[blk.PayloadOffset():blk.End()], payload)
	e.logOp("update extension", tag, "offset", blk.Offset)
	return nil
}

// Remove deletes a block and compacts the region: every later block shifts
// left by the removed block's size, preserving relative order, then the
// provider shrinks the buffer. Fails with ErrUnknownTag, ErrCorrupted, or
// ErrExtensionNotFound.
func (e *Engine) Remove(tag Tag) error {
	if _, ok := LengthFor(tag); !ok {
		return fmt.Errorf("%w: 0x%02X", ErrUnknownTag, byte(tag))
	}
	blk, ok, err := Find(e.p.Bytes(), tag)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tag %s", ErrExtensionNotFound, tag)
	}

	data := e.p.Bytes()
	removed := blk.End() - blk.Offset
	copy(data[blk.Offset:], data[blk.End():])
	if err := e.p.Shrink(removed); err != nil {
		return fmt.Errorf("ext: shrink after remove: %w", err)
	}

	e.logOp("remove extension", tag, "offset", blk.Offset, "bytes", removed)
	return nil
}

// ZeroOutData overwrites a block's payload with zero bytes, leaving its
// header, position, and accounting intact. Distinct from Remove: the slot
// stays listed. Fails with ErrUnknownTag, ErrCorrupted, or
// ErrExtensionNotFound.
func (e *Engine) ZeroOutData(tag Tag) error {
	if _, ok := LengthFor(tag); !ok {
		return fmt.Errorf("%w: 0x%02X", ErrUnknownTag, byte(tag))
	}
	blk, ok, err := Find(e.p.Bytes(), tag)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tag %s", ErrExtensionNotFound, tag)
	}

	payload := e.p.Bytes()[blk.PayloadOffset():blk.End()]
	for i := range payload {
		payload[i] = 0
	}
	e.logOp("zero extension data", tag, "offset", blk.Offset)
	return nil
}

// Get returns a copy of the payload bytes for tag. Bounds are re-verified
// against the current buffer rather than trusted from the scan; the provider
// may have been resized by the host between calls. Fails with ErrUnknownTag,
// ErrCorrupted, or ErrExtensionNotFound.
func (e *Engine) Get(tag Tag) ([]byte, error) {
	if _, ok := LengthFor(tag); !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownTag, byte(tag))
	}
	data := e.p.Bytes()
	blk, ok, err := Find(data, tag)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: tag %s", ErrExtensionNotFound, tag)
	}

	src, ok := buf.Slice(data, blk.PayloadOffset(), int(blk.Length))
	if !ok {
		return nil, fmt.Errorf("%w: payload of tag %s out of bounds", ErrCorrupted, tag)
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

// List returns the current layout's blocks in insertion order. Payloads are
// not decoded. Fails only with ErrCorrupted.
func (e *Engine) List() ([]Block, error) {
	layout, err := Scan(e.p.Bytes())
	if err != nil {
		return nil, err
	}
	return layout.Blocks, nil
}
