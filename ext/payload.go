package ext

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/tlvkit/internal/format"
)

// Payload codecs. Every variant encodes to exactly its registered length and
// decodes only from a slice of exactly that length; bytes are never
// reinterpreted in place.

// Fixed payload lengths, one per registry entry.
const (
	DataDigestLen = 1 + 32          // version + digest
	DelegationLen = 1 + 1 + 32 + 32 // enabled + revocable + authority + seed
	LabelLen      = 2 + LabelNameSize
	TimestampsLen = 8 + 8 // createdAt + updatedAt
	CounterLen    = 8
	FlagsLen      = 1

	// LabelNameSize is the fixed on-wire size of the label name field.
	LabelNameSize = 32
)

// DataDigest is a versioned 32-byte content digest.
type DataDigest struct {
	Version uint8
	Digest  [32]byte
}

// Encode serializes the digest to its fixed wire form.
func (d DataDigest) Encode() ([]byte, error) {
	b := make([]byte, DataDigestLen)
	b[0] = d.Version
	copy(b[1:], d.Digest[:])
	return b, nil
}

// DecodeDataDigest decodes a DataDigest payload.
func DecodeDataDigest(b []byte) (DataDigest, error) {
	if len(b) != DataDigestLen {
		return DataDigest{}, fmt.Errorf("%w: data-digest wants %d bytes, got %d",
			ErrLengthMismatch, DataDigestLen, len(b))
	}
	d := DataDigest{Version: b[0]}
	copy(d.Digest[:], b[1:])
	return d, nil
}

// Delegation grants a secondary authority over the account.
type Delegation struct {
	Enabled   bool
	Revocable bool
	Authority [32]byte
	Seed      [32]byte
}

// Encode serializes the delegation to its fixed wire form. Booleans encode
// as 0 or 1, one byte each.
func (d Delegation) Encode() ([]byte, error) {
	b := make([]byte, DelegationLen)
	if d.Enabled {
		b[0] = 1
	}
	if d.Revocable {
		b[1] = 1
	}
	copy(b[2:], d.Authority[:])
	copy(b[34:], d.Seed[:])
	return b, nil
}

// DecodeDelegation decodes a Delegation payload. Flag bytes other than 0 or 1
// are rejected; they cannot have been produced by Encode.
func DecodeDelegation(b []byte) (Delegation, error) {
	if len(b) != DelegationLen {
		return Delegation{}, fmt.Errorf("%w: delegation wants %d bytes, got %d",
			ErrLengthMismatch, DelegationLen, len(b))
	}
	if b[0] > 1 || b[1] > 1 {
		return Delegation{}, fmt.Errorf("%w: delegation flag bytes %d/%d", ErrCorrupted, b[0], b[1])
	}
	d := Delegation{Enabled: b[0] == 1, Revocable: b[1] == 1}
	copy(d.Authority[:], b[2:34])
	copy(d.Seed[:], b[34:])
	return d, nil
}

// Label is a short human-readable account name. On the wire the name is
// Latin-1 (ISO 8859-1), length-prefixed, right-padded with zero bytes to
// LabelNameSize.
type Label struct {
	Name string
}

// Encode serializes the label. Names that are not representable in Latin-1,
// or longer than LabelNameSize once encoded, fail with ErrLengthMismatch.
func (l Label) Encode() ([]byte, error) {
	enc, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(l.Name))
	if err != nil {
		return nil, fmt.Errorf("ext: label %q not Latin-1 encodable: %w", l.Name, err)
	}
	if len(enc) > LabelNameSize {
		return nil, fmt.Errorf("%w: label name %d bytes, max %d",
			ErrLengthMismatch, len(enc), LabelNameSize)
	}
	b := make([]byte, LabelLen)
	format.PutU16(b, 0, uint16(len(enc)))
	copy(b[2:], enc)
	return b, nil
}

// DecodeLabel decodes a Label payload.
func DecodeLabel(b []byte) (Label, error) {
	if len(b) != LabelLen {
		return Label{}, fmt.Errorf("%w: label wants %d bytes, got %d",
			ErrLengthMismatch, LabelLen, len(b))
	}
	n := int(format.ReadU16(b, 0))
	if n > LabelNameSize {
		return Label{}, fmt.Errorf("%w: label name length %d exceeds field", ErrCorrupted, n)
	}
	name, err := charmap.ISO8859_1.NewDecoder().Bytes(b[2 : 2+n])
	if err != nil {
		return Label{}, fmt.Errorf("ext: decode label name: %w", err)
	}
	return Label{Name: string(name)}, nil
}

// Timestamps records creation and last-update times as raw uint64s; the unit
// is the host's concern (the engine never interprets them).
type Timestamps struct {
	CreatedAt uint64
	UpdatedAt uint64
}

// Encode serializes the timestamps to their fixed wire form.
func (ts Timestamps) Encode() ([]byte, error) {
	b := make([]byte, TimestampsLen)
	format.PutU64(b, 0, ts.CreatedAt)
	format.PutU64(b, 8, ts.UpdatedAt)
	return b, nil
}

// DecodeTimestamps decodes a Timestamps payload.
func DecodeTimestamps(b []byte) (Timestamps, error) {
	if len(b) != TimestampsLen {
		return Timestamps{}, fmt.Errorf("%w: timestamps wants %d bytes, got %d",
			ErrLengthMismatch, TimestampsLen, len(b))
	}
	return Timestamps{
		CreatedAt: format.ReadU64(b, 0),
		UpdatedAt: format.ReadU64(b, 8),
	}, nil
}

// Counter is a general-purpose monotonic counter.
type Counter struct {
	Value uint64
}

// Encode serializes the counter to its fixed wire form.
func (c Counter) Encode() ([]byte, error) {
	b := make([]byte, CounterLen)
	format.PutU64(b, 0, c.Value)
	return b, nil
}

// DecodeCounter decodes a Counter payload.
func DecodeCounter(b []byte) (Counter, error) {
	if len(b) != CounterLen {
		return Counter{}, fmt.Errorf("%w: counter wants %d bytes, got %d",
			ErrLengthMismatch, CounterLen, len(b))
	}
	return Counter{Value: format.ReadU64(b, 0)}, nil
}

// Flags is a one-byte feature bitset; bit meanings are the host's concern.
type Flags struct {
	Bits uint8
}

// Encode serializes the flags to their fixed wire form.
func (f Flags) Encode() ([]byte, error) {
	return []byte{f.Bits}, nil
}

// DecodeFlags decodes a Flags payload.
func DecodeFlags(b []byte) (Flags, error) {
	if len(b) != FlagsLen {
		return Flags{}, fmt.Errorf("%w: flags wants %d byte, got %d",
			ErrLengthMismatch, FlagsLen, len(b))
	}
	return Flags{Bits: b[0]}, nil
}

// IsZero reports whether every payload byte is zero, the state ZeroOutData
// leaves behind.
func IsZero(payload []byte) bool {
	for _, b := range payload {
		if b != 0 {
			return false
		}
	}
	return true
}
