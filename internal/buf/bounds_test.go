package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow")
	}
	if v, ok := AddOverflowSafe(40, 2); !ok || v != 42 {
		t.Fatalf("got %d, %v", v, ok)
	}
}

func TestSlice(t *testing.T) {
	b := []byte{0, 1, 2, 3}

	s, ok := Slice(b, 1, 2)
	if !ok || len(s) != 2 || s[0] != 1 {
		t.Fatalf("got %v, %v", s, ok)
	}
	if _, ok := Slice(b, 3, 2); ok {
		t.Fatalf("expected out of bounds")
	}
	if _, ok := Slice(b, -1, 1); ok {
		t.Fatalf("expected rejection of negative offset")
	}
	if _, ok := Slice(b, 1, -1); ok {
		t.Fatalf("expected rejection of negative length")
	}
	if _, ok := Slice(b, math.MaxInt, 2); ok {
		t.Fatalf("expected overflow rejection")
	}
	if !Has(b, 0, 4) || Has(b, 0, 5) {
		t.Fatalf("Has mismatch")
	}
}
