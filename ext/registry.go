package ext

import (
	"fmt"

	"github.com/joshuapare/tlvkit/internal/format"
)

// Tag identifies an extension variant. The set is closed and known at build
// time; tag zero is reserved so a zero-filled buffer can never alias a valid
// block header.
type Tag uint8

const (
	// TagDataDigest is a versioned 32-byte content digest.
	TagDataDigest Tag = 1
	// TagDelegation grants a secondary authority over the account.
	TagDelegation Tag = 2
	// TagLabel is a short human-readable name for the account.
	TagLabel Tag = 3
	// TagTimestamps records creation and last-update times.
	TagTimestamps Tag = 4
	// TagCounter is a general-purpose monotonic counter.
	TagCounter Tag = 5
	// TagFlags is a one-byte feature bitset.
	TagFlags Tag = 6
)

// MaxExtensions is the maximum number of blocks one buffer may carry.
const MaxExtensions = format.MaxExtensions

// registryEntry pins a variant's fixed payload length. Extending the system
// is one new entry here plus its codec; the engine needs no changes.
type registryEntry struct {
	name   string
	length uint16
}

var registry = map[Tag]registryEntry{
	TagDataDigest: {"data-digest", DataDigestLen},
	TagDelegation: {"delegation", DelegationLen},
	TagLabel:      {"label", LabelLen},
	TagTimestamps: {"timestamps", TimestampsLen},
	TagCounter:    {"counter", CounterLen},
	TagFlags:      {"flags", FlagsLen},
}

// TagFromByte maps a raw tag byte to its registered variant. Unknown bytes
// fail with ErrUnknownTag, never a default variant.
func TagFromByte(b byte) (Tag, error) {
	t := Tag(b)
	if _, ok := registry[t]; !ok {
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknownTag, b)
	}
	return t, nil
}

// LengthFor returns the registry's fixed payload length for t.
func LengthFor(t Tag) (uint16, bool) {
	e, ok := registry[t]
	return e.length, ok
}

// AllTags returns the supported tags in ascending order.
func AllTags() []Tag {
	// the tag space is one byte; a full walk keeps the order deterministic
	tags := make([]Tag, 0, len(registry))
	for i := 0; i < 256; i++ {
		if _, ok := registry[Tag(i)]; ok {
			tags = append(tags, Tag(i))
		}
	}
	return tags
}

// String returns the variant name, or a hex form for unregistered tags.
func (t Tag) String() string {
	if e, ok := registry[t]; ok {
		return e.name
	}
	return fmt.Sprintf("tag(0x%02X)", uint8(t))
}
