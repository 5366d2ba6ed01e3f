// Package ext implements a TLV extension engine for fixed-base account
// buffers.
//
// # Overview
//
// A buffer is a single contiguous byte sequence: a fixed 64-byte base record
// followed by an extension region holding zero or more extension blocks. Each
// block is framed as
//
//	[marker(8)] [tag(1)] [length(2, LE)] [payload(length)]
//
// where the marker is a fixed sentinel, the tag names one of a closed set of
// registered variants, and the length always equals the registry's fixed
// length for that tag. Blocks are contiguous, insertion-ordered, unique per
// tag, and capped at MaxExtensions per buffer.
//
// # Key Types
//
//   - Engine: the only writer; Add/Update/Remove/ZeroOutData/Get/List
//   - Provider: the external owner of the buffer storage (grow/shrink)
//   - Iterator, Layout, Block: read-only structural views of the region
//   - BaseRecord: zero-copy accessors over the fixed base record
//   - Tag plus the payload variants (DataDigest, Delegation, Label, Timestamps)
//
// # Access discipline
//
// The engine borrows the provider's buffer for the duration of one call and
// leaves it well formed, or untouched on failure. Callers must guarantee
// exclusive access to the buffer while a call is in progress; the engine does
// no locking of its own. Every mutation validates fully before the first byte
// is written, so any returned validation error implies the buffer is
// byte-for-byte unchanged.
//
// Scanning is O(blocks present) and bounded by MaxExtensions, so every
// operation rescans rather than caching layout state.
package ext
