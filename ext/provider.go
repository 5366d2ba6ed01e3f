package ext

import (
	"errors"
	"fmt"

	"github.com/joshuapare/tlvkit/internal/format"
)

// Provider owns the raw storage behind a buffer. The engine borrows the
// buffer through it and requests resizes; it never owns the allocation.
//
// Contract: no concurrent call may observe or mutate the same buffer while an
// engine call is in progress, and Bytes must return the same backing slice
// until the next Grow or Shrink. Grow appends n zero bytes at the end; Shrink
// truncates n bytes off the end. A Grow failure must leave the buffer
// untouched.
type Provider interface {
	Bytes() []byte
	Grow(n int) error
	Shrink(n int) error
}

// ErrMemCapacity is returned by a MemProvider whose capacity hint is
// exhausted. The engine surfaces it wrapped in ErrCapacityExceeded.
var ErrMemCapacity = errors.New("ext: mem provider capacity exhausted")

// MemProvider is a heap-backed Provider, the moral equivalent of an account
// whose rent is always funded. A capacity hint makes funding failures
// testable.
type MemProvider struct {
	data []byte
	cap  int // 0 = unlimited
}

// MemOption configures a MemProvider.
type MemOption func(*MemProvider)

// WithCapHint caps the provider's total byte capacity; Grow calls that would
// exceed it fail without resizing.
func WithCapHint(n int) MemOption {
	return func(m *MemProvider) { m.cap = n }
}

// NewMemProvider allocates a fresh buffer holding an initialized base record
// and an empty extension region.
func NewMemProvider(owner [32]byte, stateTag byte, aux []byte, bump byte, opts ...MemOption) (*MemProvider, error) {
	m := &MemProvider{data: make([]byte, format.BaseLen)}
	if err := InitBase(m.data, owner, stateTag, aux, bump); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewMemProviderFrom wraps an existing buffer without validating it. Useful
// for replaying persisted state; a malformed buffer surfaces as ErrCorrupted
// on the first engine call.
func NewMemProviderFrom(data []byte, opts ...MemOption) *MemProvider {
	m := &MemProvider{data: data}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bytes returns the backing buffer.
func (m *MemProvider) Bytes() []byte { return m.data }

// Grow appends n zero bytes.
func (m *MemProvider) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("ext: grow by negative %d", n)
	}
	if m.cap > 0 && len(m.data)+n > m.cap {
		return fmt.Errorf("%w: %d + %d exceeds cap %d", ErrMemCapacity, len(m.data), n, m.cap)
	}
	m.data = append(m.data, make([]byte, n)...)
	return nil
}

// Shrink truncates n bytes off the end. The base record is never shrinkable.
func (m *MemProvider) Shrink(n int) error {
	if n < 0 || len(m.data)-n < format.BaseLen {
		return fmt.Errorf("ext: shrink %d of %d-byte buffer", n, len(m.data))
	}
	m.data = m.data[:len(m.data)-n]
	return nil
}
