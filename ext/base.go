package ext

import (
	"fmt"

	"github.com/joshuapare/tlvkit/internal/format"
)

// BaseLen is the size of the fixed base record at the front of every buffer.
const BaseLen = format.BaseLen

// BaseRecord is a zero-copy view over the fixed base record. The engine never
// reads these fields; they belong to the host (the program that owns the
// account). Accessors read and write directly into the backing buffer.
type BaseRecord struct {
	raw []byte // len >= BaseLen
}

// ParseBaseRecord validates the buffer length and returns a view over its
// first BaseLen bytes.
func ParseBaseRecord(b []byte) (*BaseRecord, error) {
	if len(b) < BaseLen {
		return nil, fmt.Errorf("%w: buffer of %d bytes shorter than base record (%d)",
			ErrCorrupted, len(b), BaseLen)
	}
	return &BaseRecord{raw: b[:BaseLen]}, nil
}

// InitBase stamps a fresh, initialized base record into the first BaseLen
// bytes of b. aux is right-padded with zeros and must fit the aux field.
func InitBase(b []byte, owner [32]byte, stateTag byte, aux []byte, bump byte) error {
	if len(b) < BaseLen {
		return fmt.Errorf("ext: buffer of %d bytes too small for base record (%d)", len(b), BaseLen)
	}
	if len(aux) > format.BaseAuxSize {
		return fmt.Errorf("ext: aux data %d bytes, max %d", len(aux), format.BaseAuxSize)
	}
	b[format.BaseInitOffset] = 1
	copy(b[format.BaseOwnerOffset:], owner[:])
	b[format.BaseStateTagOffset] = stateTag
	auxField := b[format.BaseAuxOffset : format.BaseAuxOffset+format.BaseAuxSize]
	for i := range auxField {
		auxField[i] = 0
	}
	copy(auxField, aux)
	format.PutU64(b, format.BaseUpdateCountOffset, 0)
	b[format.BaseBumpOffset] = bump
	return nil
}

// Raw returns the raw bytes of the base record.
func (br *BaseRecord) Raw() []byte { return br.raw }

// Initialized reports whether the init flag is set.
func (br *BaseRecord) Initialized() bool { return br.raw[format.BaseInitOffset] == 1 }

// Owner returns the 32-byte owning identity (zero-copy).
func (br *BaseRecord) Owner() []byte {
	return br.raw[format.BaseOwnerOffset : format.BaseOwnerOffset+format.BaseOwnerSize]
}

// StateTag returns the small state tag byte.
func (br *BaseRecord) StateTag() byte { return br.raw[format.BaseStateTagOffset] }

// Aux returns the fixed auxiliary data field (zero-copy).
func (br *BaseRecord) Aux() []byte {
	return br.raw[format.BaseAuxOffset : format.BaseAuxOffset+format.BaseAuxSize]
}

// UpdateCount returns the monotonically increasing update counter.
func (br *BaseRecord) UpdateCount() uint64 {
	return format.ReadU64(br.raw, format.BaseUpdateCountOffset)
}

// SetUpdateCount overwrites the update counter. Hosts typically bump this
// once per enclosing transaction, not per engine call.
func (br *BaseRecord) SetUpdateCount(v uint64) {
	format.PutU64(br.raw, format.BaseUpdateCountOffset, v)
}

// BumpUpdateCount increments the update counter by one.
func (br *BaseRecord) BumpUpdateCount() { br.SetUpdateCount(br.UpdateCount() + 1) }

// Bump returns the derivation bump byte.
func (br *BaseRecord) Bump() byte { return br.raw[format.BaseBumpOffset] }
