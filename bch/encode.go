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

package bch

import "github.com/pkg/errors"

// Encode packs data (which must fit in DataLength bits) into a systematic
// codeword: data shifted up by ParityBits, XORed with the polynomial-
// division remainder of that shift against the generator polynomial. A
// codeword never exceeds 32 bits, which in practice bounds symbolSize to
// the range where CodewordLength fits a uint32 (symbolSize <= 5 gives a
// 31-bit codeword; larger fields overflow exactly as they would in a
// straight port of the reference shift-register encoder).
func (c *Codec) Encode(data uint32) (uint32, error) {
	if data >= (1 << c.dataLength) {
		return 0, errors.Errorf("bch: data %d does not fit in %d bits", data, c.dataLength)
	}

	shifted := data << c.parityBits

	remainder := uint64(shifted)
	gen := c.genPoly
	genDeg := c.genPolyDeg

	for i := int(c.codewordLength) - 1; i >= genDeg; i-- {
		if remainder&(1<<uint(i)) != 0 {
			remainder ^= gen << uint(i-genDeg)
		}
	}

	return shifted ^ uint32(remainder), nil
}

// ExtractData recovers the payload bits from a codeword assumed already
// correct (or already corrected via Decode).
func (c *Codec) ExtractData(codeword uint32) uint32 {
	return (codeword >> c.parityBits) & ((1 << c.dataLength) - 1)
}
