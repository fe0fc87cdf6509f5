// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"fmt"

	"github.com/xtaci/gofec/bch"
	"github.com/xtaci/gofec/fec"
	"github.com/xtaci/gofec/ldpc"
)

func scenarioRSNoOp() error {
	c, err := fec.New(fec.Config{Family: fec.RS, RS: fec.DefaultRSConfig()})
	if err != nil {
		return err
	}
	defer c.Close()

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 31)
	}
	original := append([]byte(nil), data...)

	parity, err := c.Encode(data)
	if err != nil {
		return err
	}

	res, err := c.Decode(data, parity, nil)
	if err != nil {
		return err
	}
	if !res.Success || res.CorrectionsApplied != 0 {
		return fmt.Errorf("want success with 0 corrections, got %+v", res)
	}
	if !bytes.Equal(data, original) {
		return fmt.Errorf("data changed on a clean round trip")
	}
	return nil
}

func scenarioRSCorrect() error {
	c, err := fec.New(fec.Config{Family: fec.RS, RS: fec.DefaultRSConfig()})
	if err != nil {
		return err
	}
	defer c.Close()

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 31)
	}
	original := append([]byte(nil), data...)

	parity, err := c.Encode(data)
	if err != nil {
		return err
	}

	data[3] ^= 0xFF
	data[17] ^= 0xFF
	data[29] ^= 0xFF

	res, err := c.Decode(data, parity, nil)
	if err != nil {
		return err
	}
	if !res.Success || res.CorrectionsApplied != 3 {
		return fmt.Errorf("want success with 3 corrections, got %+v", res)
	}
	if !bytes.Equal(data, original) {
		return fmt.Errorf("data not restored")
	}
	return nil
}

func scenarioRSErasure() error {
	c, err := fec.New(fec.Config{Family: fec.RS, RS: fec.DefaultRSConfig()})
	if err != nil {
		return err
	}
	defer c.Close()

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 31)
	}
	original := append([]byte(nil), data...)

	parity, err := c.Encode(data)
	if err != nil {
		return err
	}

	erasures := []uint32{5, 10, 15, 20, 25, 30, 35, 40}
	for _, pos := range erasures {
		data[pos] = 0
	}

	res, err := c.Decode(data, parity, erasures)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("want success, got %+v", res)
	}
	if !bytes.Equal(data, original) {
		return fmt.Errorf("data not restored")
	}
	return nil
}

func scenarioBCHSingleBit() error {
	c, err := bch.New(4, 0x13, 3)
	if err != nil {
		return err
	}

	codeword, err := c.Encode(21)
	if err != nil {
		return err
	}

	for i := 0; i < int(c.CodewordLength()); i++ {
		corrupted := codeword ^ (1 << uint(i))
		corrected, res, err := c.Decode(corrupted)
		if err != nil {
			return fmt.Errorf("bit %d: %w", i, err)
		}
		if corrected != codeword || res.ErrorsCorrected != 1 {
			return fmt.Errorf("bit %d: got corrected=%x errors=%d", i, corrected, res.ErrorsCorrected)
		}
	}
	return nil
}

func scenarioBCHDoubleBit() error {
	c, err := bch.New(4, 0x13, 3)
	if err != nil {
		return err
	}

	codeword, err := c.Encode(7)
	if err != nil {
		return err
	}

	n := int(c.CodewordLength())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			corrupted := codeword ^ (1 << uint(i)) ^ (1 << uint(j))
			corrected, res, err := c.Decode(corrupted)
			if err != nil {
				return fmt.Errorf("bits %d,%d: %w", i, j, err)
			}
			if corrected != codeword || res.ErrorsCorrected != 2 {
				return fmt.Errorf("bits %d,%d: got corrected=%x errors=%d", i, j, corrected, res.ErrorsCorrected)
			}
		}
	}
	return nil
}

func scenarioLDPCRoundTrip() error {
	cfg := ldpc.DefaultConfig()
	codec, err := ldpc.New(64, ldpc.Rate1_2, cfg)
	if err != nil {
		return err
	}

	info := make([]byte, codec.InfoSize())
	for i := range info {
		info[i] = byte(17*i + 23)
	}

	codeword, err := codec.Encode(info)
	if err != nil {
		return err
	}

	iterations, ok, err := codec.DecodeHard(codeword, 50)
	if err != nil {
		return err
	}
	if !ok || iterations != 0 {
		return fmt.Errorf("want success with 0 iterations, got ok=%v iterations=%d", ok, iterations)
	}
	if !bytes.Equal(codeword[:codec.InfoSize()], info) {
		return fmt.Errorf("info not preserved")
	}
	return nil
}

func scenarioLDPCCorrection() error {
	cfg := ldpc.DefaultConfig()
	codec, err := ldpc.New(64, ldpc.Rate1_2, cfg)
	if err != nil {
		return err
	}

	info := make([]byte, codec.InfoSize())
	for i := range info {
		info[i] = byte(17*i + 23)
	}

	codeword, err := codec.Encode(info)
	if err != nil {
		return err
	}
	original := append([]byte(nil), codeword...)

	codeword[0] ^= 0x01
	codeword[10] ^= 0x80
	codeword[20] ^= 0x40

	iterations, ok, err := codec.DecodeHard(codeword, 50)
	if err != nil {
		return err
	}
	if !ok || iterations == 0 {
		return fmt.Errorf("want success with iterations > 0, got ok=%v iterations=%d", ok, iterations)
	}
	if !bytes.Equal(codeword, original) {
		return fmt.Errorf("codeword not restored")
	}
	return nil
}

func scenarioLDPCBurst() error {
	cfg := ldpc.BurstResistantConfig()
	codec, err := ldpc.New(128, ldpc.Rate1_2, cfg)
	if err != nil {
		return err
	}

	info := make([]byte, codec.InfoSize())
	for i := range info {
		info[i] = byte(17*i + 23)
	}

	codeword, err := codec.Encode(info)
	if err != nil {
		return err
	}
	original := append([]byte(nil), codeword...)

	codeword[40] = 0xFF
	codeword[41] = 0xFF
	codeword[42] = 0xFF
	codeword[43] = 0xFF

	iterations, ok, err := codec.DecodeHard(codeword, 100)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("want success, got ok=%v iterations=%d", ok, iterations)
	}
	// Both interleavers are on, so the decoded codeword is in wire order
	// and its first InfoSize() bytes are not the plain info block;
	// matching the freshly encoded codeword means the info is restored.
	if !bytes.Equal(codeword, original) {
		return fmt.Errorf("info not restored")
	}
	return nil
}
