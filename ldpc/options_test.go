package ldpc

import "testing"

func TestNewWithOptionsDecodesCleanCodeword(t *testing.T) {
	c, err := NewWithOptions(32, Rate1_2, WithColumnWeight(4), WithSeed(999), WithOuterInterleave())
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}

	info := sampleInfo(c.InfoSize())
	codeword, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	iterations, ok, err := c.DecodeHard(codeword, 50)
	if err != nil {
		t.Fatalf("DecodeHard: %v", err)
	}
	if !ok || iterations != 0 {
		t.Fatalf("DecodeHard = (%d,%v), want (0,true) for a clean codeword", iterations, ok)
	}
}

func TestWithMatrixTypeQC(t *testing.T) {
	c, err := NewWithOptions(64, Rate1_2, WithMatrixType(QC), WithLiftingFactor(8), WithSeed(42))
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}

	info := sampleInfo(c.InfoSize())
	codeword, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	ok, err := c.Check(codeword)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Fatalf("Check = false, want true for a freshly encoded codeword")
	}
}
