package format

import (
	"bytes"
	"errors"
	"testing"
)

func buildBlock(tag byte, payload []byte) []byte {
	b := make([]byte, BlockHeaderLen+len(payload))
	PutBlockHeader(b, 0, tag, uint16(len(payload)))
	copy(b[PayloadOffset:], payload)
	return b
}

func TestReadBlockHeader(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	b := buildBlock(0x07, payload)

	h, err := ReadBlockHeader(b, 0)
	if err != nil {
		t.Fatalf("ReadBlockHeader: %v", err)
	}
	if h.Tag != 0x07 || h.Length != 4 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if !bytes.Equal(b[:MarkerSize], BlockMarker) {
		t.Fatalf("marker not written")
	}
}

func TestReadBlockHeaderMarkerMismatch(t *testing.T) {
	b := buildBlock(0x07, []byte{1, 2, 3, 4})
	b[0] ^= 0xFF

	if _, err := ReadBlockHeader(b, 0); !errors.Is(err, ErrMarkerMismatch) {
		t.Fatalf("expected ErrMarkerMismatch, got %v", err)
	}
}

func TestReadBlockHeaderTruncatedHeader(t *testing.T) {
	b := buildBlock(0x07, []byte{1, 2, 3, 4})

	if _, err := ReadBlockHeader(b[:BlockHeaderLen-1], 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := ReadBlockHeader(b, -1); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for negative offset, got %v", err)
	}
}

func TestReadBlockHeaderPayloadOverrun(t *testing.T) {
	b := buildBlock(0x07, []byte{1, 2, 3, 4})
	// declare more payload than the buffer holds
	PutU16(b, LengthOffset, 50)

	if _, err := ReadBlockHeader(b, 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestIsMarkerShortBuffer(t *testing.T) {
	if IsMarker(BlockMarker[:MarkerSize-1]) {
		t.Fatalf("short buffer must not match")
	}
	if !IsMarker(BlockMarker) {
		t.Fatalf("marker must match itself")
	}
}
