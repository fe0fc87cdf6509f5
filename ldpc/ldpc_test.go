package ldpc

import "testing"

func flipBit(data []byte, bit int) {
	data[bit/8] ^= 1 << uint(7-bit%8)
}

func sampleInfo(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	return data
}

func TestEncodeProducesSatisfiedCodeword(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345
	c, err := New(32, Rate1_2, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	info := sampleInfo(c.InfoSize())
	codeword, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(codeword) != c.CodewordSize() {
		t.Fatalf("codeword length = %d, want %d", len(codeword), c.CodewordSize())
	}

	ok, err := c.Check(codeword)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Fatalf("freshly encoded codeword failed parity check")
	}
}

func TestDecodeHardCorrectsBitErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 54321
	c, err := New(64, Rate1_2, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	info := sampleInfo(c.InfoSize())
	codeword, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := make([]byte, len(codeword))
	copy(corrupted, codeword)
	flipBit(corrupted, 3)
	flipBit(corrupted, 17)

	_, ok, err := c.DecodeHard(corrupted, 0)
	if err != nil {
		t.Fatalf("DecodeHard: %v", err)
	}
	if !ok {
		t.Fatalf("DecodeHard did not converge to a satisfied codeword")
	}
}

func TestDecodeSoftRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 999
	c, err := New(32, Rate1_2, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	info := sampleInfo(c.InfoSize())
	codeword, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	llr := make([]int16, c.CodewordSize()*8)
	for bit := range llr {
		if getBit(codeword, bit) != 0 {
			llr[bit] = -llrScaleFactor
		} else {
			llr[bit] = llrScaleFactor
		}
	}
	llr[5] = -llr[5]

	out := make([]byte, c.CodewordSize())
	_, ok, err := c.DecodeSoft(llr, out, 0)
	if err != nil {
		t.Fatalf("DecodeSoft: %v", err)
	}
	if !ok {
		t.Fatalf("DecodeSoft did not converge")
	}
}

func TestQCMatrixEncodeDecode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatrixType = QC
	cfg.Seed = 777
	c, err := New(64, Rate2_3, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
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
		t.Fatalf("QC codeword failed parity check")
	}

	corrupted := make([]byte, len(codeword))
	copy(corrupted, codeword)
	flipBit(corrupted, 2)

	_, ok, err = c.DecodeHard(corrupted, 0)
	if err != nil {
		t.Fatalf("DecodeHard: %v", err)
	}
	if !ok {
		t.Fatalf("QC DecodeHard did not converge")
	}
}

func TestInterleaversRoundTrip(t *testing.T) {
	cfg := BurstResistantConfig()
	cfg.Seed = 42
	c, err := New(32, Rate1_2, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.HasInterleaver() {
		t.Fatalf("expected inner interleaver to be built")
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
		t.Fatalf("interleaved codeword failed parity check after deinterleaving")
	}

	outerRoundTrip := make([]byte, c.InfoSize())
	interleaved := make([]byte, c.InfoSize())
	c.Interleave(interleaved, info)
	c.Deinterleave(outerRoundTrip, interleaved)
	for i := range info {
		if outerRoundTrip[i] != info[i] {
			t.Fatalf("outer interleaver round trip mismatch at byte %d", i)
		}
	}
}

func TestRateVariationsBuildConsistentSizes(t *testing.T) {
	rates := []Rate{Rate1_3, Rate1_2, Rate2_3, Rate3_4, Rate4_5, Rate5_6}
	for _, r := range rates {
		cfg := DefaultConfig()
		cfg.Seed = 1
		c, err := New(32, r, cfg)
		if err != nil {
			t.Fatalf("New(rate=%d): %v", r, err)
		}
		if c.CodewordSize() <= c.InfoSize() {
			t.Fatalf("rate %d: codeword size %d not larger than info size %d", r, c.CodewordSize(), c.InfoSize())
		}
	}
}

func TestNewRejectsBadBlockSize(t *testing.T) {
	if _, err := New(10, Rate1_2, DefaultConfig()); err == nil {
		t.Fatalf("expected error for block size not a multiple of 4")
	}
	if _, err := New(16, Rate1_2, DefaultConfig()); err == nil {
		t.Fatalf("expected error for block size below minimum")
	}
}
