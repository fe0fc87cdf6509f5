package fec

import (
	"bytes"
	"testing"
)

func TestRSRoundTrip(t *testing.T) {
	cfg := Config{Family: RS, RS: DefaultRSConfig()}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parity) != int(cfg.RS.NumRoots) {
		t.Fatalf("parity length = %d, want %d", len(parity), cfg.RS.NumRoots)
	}

	res, err := c.Decode(data, parity, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !res.Success || res.CorrectionsApplied != 0 {
		t.Fatalf("Decode result = %+v, want success with 0 corrections", res)
	}
}

func TestRSCorrectsErrors(t *testing.T) {
	cfg := Config{Family: RS, RS: DefaultRSConfig()}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	original := append([]byte(nil), data...)

	parity, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data[3] ^= 0xFF
	data[17] ^= 0xFF
	data[29] ^= 0xFF

	res, err := c.Decode(data, parity, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !res.Success || res.CorrectionsApplied != 3 {
		t.Fatalf("Decode result = %+v, want success with 3 corrections", res)
	}
	if !bytes.Equal(data, original) {
		t.Fatalf("data not restored: %x != %x", data, original)
	}
}

func TestBCHRoundTrip(t *testing.T) {
	cfg := Config{Family: BCH, BCH: BCHConfig{SymbolSize: 4, PrimitivePolynomial: 0x13, CorrectionCapability: 2}}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	data := []byte{5, 0, 0, 0}
	codeword, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), codeword...)
	corrupted[0] ^= 0x01

	res, err := c.Decode(corrupted, nil, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !res.Success || res.CorrectionsApplied != 1 {
		t.Fatalf("Decode result = %+v, want success with 1 correction", res)
	}
	if !bytes.Equal(corrupted, codeword) {
		t.Fatalf("codeword not restored: %x != %x", corrupted, codeword)
	}
}

func TestLDPCRoundTrip(t *testing.T) {
	lcfg := DefaultLDPCConfig()
	lcfg.BlockSize = 32
	lcfg.Seed = 123
	cfg := Config{Family: LDPC, LDPC: lcfg}

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	info := make([]byte, lcfg.BlockSize)
	for i := range info {
		info[i] = byte(17*i + 23)
	}

	parity, err := c.Encode(info)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data := append([]byte(nil), info...)
	res, err := c.Decode(data, parity, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !res.Success {
		t.Fatalf("Decode did not succeed: %+v", res)
	}
	if c.IterationsUsed() != 0 {
		t.Fatalf("IterationsUsed() = %d, want 0 for a clean codeword", c.IterationsUsed())
	}
	if !bytes.Equal(data, info) {
		t.Fatalf("info mismatch after decode: %x != %x", data, info)
	}
}

func TestFECTypeAndAccessors(t *testing.T) {
	c, err := New(Config{Family: LDPC, LDPC: DefaultLDPCConfig()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if c.FECType() != LDPC {
		t.Fatalf("FECType() = %v, want LDPC", c.FECType())
	}
	if c.ParitySize() <= 0 {
		t.Fatalf("ParitySize() = %d, want > 0", c.ParitySize())
	}
}

func TestVersionSurface(t *testing.T) {
	if VersionID() == 0 {
		t.Fatalf("VersionID() = 0")
	}
}
