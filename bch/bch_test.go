package bch

import "testing"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(4, 0x13, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewBuildsExpectedShape(t *testing.T) {
	c := newTestCodec(t)
	if c.CodewordLength() != 15 {
		t.Fatalf("CodewordLength() = %d, want 15", c.CodewordLength())
	}
	if c.DataLength() == 0 || c.DataLength() >= c.CodewordLength() {
		t.Fatalf("DataLength() = %d out of expected range", c.DataLength())
	}
	if c.CorrectionCapability() != 2 {
		t.Fatalf("CorrectionCapability() = %d, want 2", c.CorrectionCapability())
	}
}

func TestEncodeExtractRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	maxData := uint32(1) << c.DataLength()

	for data := uint32(0); data < maxData; data++ {
		codeword, err := c.Encode(data)
		if err != nil {
			t.Fatalf("Encode(%d): %v", data, err)
		}
		if got := c.ExtractData(codeword); got != data {
			t.Fatalf("ExtractData(Encode(%d)) = %d, want %d", data, got, data)
		}
	}
}

func TestEncodeRejectsOversizedData(t *testing.T) {
	c := newTestCodec(t)
	if _, err := c.Encode(1 << c.DataLength()); err == nil {
		t.Fatalf("expected error for data that does not fit DataLength bits")
	}
}

func TestDecodeCleanCodeword(t *testing.T) {
	c := newTestCodec(t)
	codeword, err := c.Encode(42 % (1 << c.DataLength()))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrected, res, err := c.Decode(codeword)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if corrected != codeword {
		t.Fatalf("Decode of clean codeword changed it: %x != %x", corrected, codeword)
	}
	if res.ErrorsCorrected != 0 {
		t.Fatalf("ErrorsCorrected = %d, want 0", res.ErrorsCorrected)
	}
}

func TestDecodeCorrectsSingleBitError(t *testing.T) {
	c := newTestCodec(t)
	data := uint32(19) % (1 << c.DataLength())
	codeword, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := codeword ^ (1 << 3)
	corrected, res, err := c.Decode(corrupted)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if corrected != codeword {
		t.Fatalf("Decode() = %x, want %x", corrected, codeword)
	}
	if res.ErrorsCorrected != 1 {
		t.Fatalf("ErrorsCorrected = %d, want 1", res.ErrorsCorrected)
	}
	if c.ExtractData(corrected) != data {
		t.Fatalf("ExtractData after correction = %d, want %d", c.ExtractData(corrected), data)
	}
}

func TestDecodeCorrectsTwoBitErrors(t *testing.T) {
	c := newTestCodec(t)
	data := uint32(5) % (1 << c.DataLength())
	codeword, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := codeword ^ (1 << 1) ^ (1 << 9)
	corrected, res, err := c.Decode(corrupted)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if corrected != codeword {
		t.Fatalf("Decode() = %x, want %x", corrected, codeword)
	}
	if res.ErrorsCorrected != 2 {
		t.Fatalf("ErrorsCorrected = %d, want 2", res.ErrorsCorrected)
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	if _, err := New(2, 0x7, 1); err == nil {
		t.Fatalf("expected error for symbol size below 3")
	}
	if _, err := New(4, 0x13, 0); err == nil {
		t.Fatalf("expected error for correction capability 0")
	}
	if _, err := New(4, 0x13, 200); err == nil {
		t.Fatalf("expected error for correction capability above max")
	}
}
