// Package format houses the low-level layout of an extension-carrying account
// buffer. The goal is to keep the byte-level framing focused and independent
// from the public API so higher-level packages can orchestrate the data in a
// more ergonomic form.
package format

var (
	// BlockMarker is the eight-byte sentinel at the start of every extension
	// block. A scan position that should hold a block but does not start with
	// this sequence indicates corruption, not end-of-region.
	// Layout:
	//   0x00  0x1F 'x' 't' 'b' 'l' 'k' 0xAA 0x55
	BlockMarker = []byte{0x1F, 'x', 't', 'b', 'l', 'k', 0xAA, 0x55}
)

const (
	// BaseLen is the size of the fixed base record at the start of every
	// buffer. The extension region begins immediately after it.
	BaseLen = 64

	// Base record field offsets. No implicit padding anywhere.
	BaseInitOffset        = 0x00 // 1 byte: 0 = uninitialized, 1 = initialized
	BaseOwnerOffset       = 0x01 // 32 bytes: owning identity
	BaseOwnerSize         = 32
	BaseStateTagOffset    = 0x21 // 1 byte
	BaseAuxOffset         = 0x22 // 21 bytes: auxiliary seed data
	BaseAuxSize           = 21
	BaseUpdateCountOffset = 0x37 // 8 bytes, little-endian
	BaseBumpOffset        = 0x3F // 1 byte

	// MarkerSize is the size of BlockMarker.
	MarkerSize = 8

	// Block header field offsets, relative to the block start.
	MarkerOffset  = 0x00 // 8 bytes
	TagOffset     = 0x08 // 1 byte
	LengthOffset  = 0x09 // 2 bytes, little-endian
	PayloadOffset = 0x0B

	// BlockHeaderLen is the number of bytes preceding every payload
	// (marker + tag + length).
	BlockHeaderLen = MarkerSize + 1 + 2

	// MaxExtensions is the maximum number of blocks a single buffer may
	// carry. A cardinality cap, not a byte cap.
	MaxExtensions = 5
)
