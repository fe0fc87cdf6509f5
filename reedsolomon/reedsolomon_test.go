package reedsolomon

import (
	"bytes"
	"testing"

	"github.com/xtaci/gofec/erasure"
)

func newTestCodec(t *testing.T, numRoots uint16) *Codec {
	t.Helper()
	c, err := New(8, 0x11D, 1, 1, numRoots)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func sampleData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	return data
}

func TestEncodeDecodeCleanCodeword(t *testing.T) {
	c := newTestCodec(t, 6)
	data := sampleData(32)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parity) != 6 {
		t.Fatalf("len(parity) = %d, want 6", len(parity))
	}

	res, err := c.Decode(append([]byte(nil), data...), append([]byte(nil), parity...))
	if err != nil {
		t.Fatalf("Decode on clean codeword: %v", err)
	}
	if res.ErrorsCorrected != 0 {
		t.Fatalf("ErrorsCorrected = %d, want 0", res.ErrorsCorrected)
	}
}

func TestDecodeCorrectsErrors(t *testing.T) {
	c := newTestCodec(t, 6) // corrects up to 3 errors
	data := sampleData(40)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	corrupted[2] ^= 0xFF
	corrupted[15] ^= 0x01
	corrupted[30] ^= 0x7E

	res, err := c.Decode(corrupted, append([]byte(nil), parity...))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.ErrorsCorrected != 3 {
		t.Fatalf("ErrorsCorrected = %d, want 3", res.ErrorsCorrected)
	}
	if !bytes.Equal(corrupted, data) {
		t.Fatalf("decoded data mismatch:\n got  %x\n want %x", corrupted, data)
	}
}

func TestDecodeTooManyErrorsFails(t *testing.T) {
	c := newTestCodec(t, 4) // corrects up to 2 errors
	data := sampleData(20)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0xFF
	corrupted[5] ^= 0xFF
	corrupted[10] ^= 0xFF

	if _, err := c.Decode(corrupted, append([]byte(nil), parity...)); err == nil {
		t.Fatalf("expected decode failure with 3 errors against a 2-error code")
	}
}

func TestDecodeWithErasuresCorrectsMoreSymbols(t *testing.T) {
	c := newTestCodec(t, 6) // up to 6 erasures, or 3 errors
	data := sampleData(30)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	positions := []uint32{1, 5, 9, 20}
	for _, p := range positions {
		corrupted[p] = 0
	}

	res, err := c.DecodeWithErasures(corrupted, append([]byte(nil), parity...), positions)
	if err != nil {
		t.Fatalf("DecodeWithErasures: %v", err)
	}
	if res.ErrorsCorrected != len(positions) {
		t.Fatalf("ErrorsCorrected = %d, want %d", res.ErrorsCorrected, len(positions))
	}
	if !bytes.Equal(corrupted, data) {
		t.Fatalf("decoded data mismatch after erasure correction:\n got  %x\n want %x", corrupted, data)
	}
}

func TestDecodeWithErasureSetMatchesDecodeWithErasures(t *testing.T) {
	c := newTestCodec(t, 6)
	data := sampleData(30)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	positions := []uint32{1, 5, 9, 20}
	for _, p := range positions {
		corrupted[p] = 0
	}

	set := erasure.FromPositions(6, positions)
	res, err := c.DecodeWithErasureSet(corrupted, append([]byte(nil), parity...), set)
	if err != nil {
		t.Fatalf("DecodeWithErasureSet: %v", err)
	}
	if res.ErrorsCorrected != len(positions) {
		t.Fatalf("ErrorsCorrected = %d, want %d", res.ErrorsCorrected, len(positions))
	}
	if !bytes.Equal(corrupted, data) {
		t.Fatalf("decoded data mismatch after erasure-set correction:\n got  %x\n want %x", corrupted, data)
	}
}

func TestDecodeWithSyndromeMatchesDecode(t *testing.T) {
	c := newTestCodec(t, 6)
	data := sampleData(25)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	corrupted[3] ^= 0x22

	corruptedParity := append([]byte(nil), parity...)
	clean := c.calculateSyndrome(corrupted, corruptedParity)
	if clean {
		t.Fatalf("expected a non-clean syndrome for a corrupted codeword")
	}
	syn := append([]uint16(nil), c.buf.syndrome[:c.NumRoots]...)

	res, err := c.DecodeWithSyndrome(corrupted, corruptedParity, syn)
	if err != nil {
		t.Fatalf("DecodeWithSyndrome: %v", err)
	}
	if res.ErrorsCorrected != 1 {
		t.Fatalf("ErrorsCorrected = %d, want 1", res.ErrorsCorrected)
	}
	if !bytes.Equal(corrupted, data) {
		t.Fatalf("decoded data mismatch:\n got  %x\n want %x", corrupted, data)
	}
}

func TestNewRejectsZeroPrimitiveElement(t *testing.T) {
	if _, err := New(8, 0x11D, 1, 0, 4); err == nil {
		t.Fatalf("expected error for zero primitive element")
	}
}

func TestNewRejectsTooManyRoots(t *testing.T) {
	if _, err := New(4, 0x13, 1, 1, 15); err == nil {
		t.Fatalf("expected error when num roots >= field size")
	}
}
