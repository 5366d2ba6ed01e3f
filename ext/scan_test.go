package ext

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tlvkit/internal/format"
)

// appendBlock appends a raw block to buf without going through the engine.
func appendBlock(buf []byte, tag byte, payload []byte) []byte {
	off := len(buf)
	buf = append(buf, make([]byte, format.BlockHeaderLen+len(payload))...)
	format.PutBlockHeader(buf, off, tag, uint16(len(payload)))
	copy(buf[off+format.PayloadOffset:], payload)
	return buf
}

func emptyBuffer(t *testing.T) []byte {
	t.Helper()
	b := make([]byte, BaseLen)
	require.NoError(t, InitBase(b, [32]byte{1}, 0, nil, 0xFE))
	return b
}

func TestScanEmptyRegion(t *testing.T) {
	l, err := Scan(emptyBuffer(t))
	require.NoError(t, err)
	require.Equal(t, 0, l.Count())
	require.Equal(t, 0, l.RegionBytes)
}

func TestIteratorWalksBlocksInOrder(t *testing.T) {
	buf := emptyBuffer(t)
	buf = appendBlock(buf, byte(TagFlags), []byte{0xAA})
	buf = appendBlock(buf, byte(TagCounter), make([]byte, CounterLen))

	it := NewIterator(buf)

	blk, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, byte(TagFlags), blk.Tag)
	require.Equal(t, BaseLen, blk.Offset)
	require.Equal(t, uint16(FlagsLen), blk.Length)

	blk, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, byte(TagCounter), blk.Tag)
	require.Equal(t, BaseLen+format.BlockHeaderLen+FlagsLen, blk.Offset)

	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
	// iterator stays terminated
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestIteratorRestartable(t *testing.T) {
	buf := appendBlock(emptyBuffer(t), byte(TagFlags), []byte{1})

	for i := 0; i < 3; i++ {
		l, err := Scan(buf)
		require.NoError(t, err)
		require.Equal(t, 1, l.Count())
	}
}

func TestScanShortBufferCorrupted(t *testing.T) {
	_, err := Scan(make([]byte, BaseLen-1))
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestScanBadMarkerCorrupted(t *testing.T) {
	buf := appendBlock(emptyBuffer(t), byte(TagFlags), []byte{1})
	buf[BaseLen] ^= 0xFF

	_, err := Scan(buf)
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestScanTruncatedTailCorrupted(t *testing.T) {
	buf := appendBlock(emptyBuffer(t), byte(TagCounter), make([]byte, CounterLen))

	// a partial trailing block is corruption, not padding
	_, err := Scan(buf[:len(buf)-3])
	require.ErrorIs(t, err, ErrCorrupted)

	// garbage shorter than a header after a valid block is corruption too
	_, err = Scan(append(buf, 0, 0, 0))
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestScanRegisteredTagWrongLengthCorrupted(t *testing.T) {
	// a flags block declaring 2 payload bytes contradicts the registry
	buf := appendBlock(emptyBuffer(t), byte(TagFlags), []byte{1, 2})

	_, err := Scan(buf)
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestScanUnregisteredTagSurfacedRaw(t *testing.T) {
	// tag 0x7F is outside the registry; the scanner reports it as-is
	buf := appendBlock(emptyBuffer(t), 0x7F, []byte{1, 2, 3})

	l, err := Scan(buf)
	require.NoError(t, err)
	require.Equal(t, 1, l.Count())
	require.Equal(t, byte(0x7F), l.Blocks[0].Tag)
	require.Equal(t, uint16(3), l.Blocks[0].Length)
}

func TestFind(t *testing.T) {
	buf := emptyBuffer(t)
	buf = appendBlock(buf, byte(TagFlags), []byte{1})
	buf = appendBlock(buf, byte(TagCounter), make([]byte, CounterLen))

	blk, ok, err := Find(buf, TagCounter)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte(TagCounter), blk.Tag)

	_, ok, err = Find(buf, TagLabel)
	require.NoError(t, err)
	require.False(t, ok)
}
