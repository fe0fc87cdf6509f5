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

package ldpc

import "github.com/pkg/errors"

// Encode produces a systematic codeword from an InfoSize()-byte block:
// the information bits copied unchanged, followed by ParitySize() parity
// bits computed via the lower-bidiagonal running-XOR chain (each parity
// bit is the XOR of its matrix row's information-column bits plus the
// previous parity bit), following poporon_ldpc_encode. If the outer byte
// interleaver is enabled, info is permuted before its bits are copied in;
// if the inner bit interleaver is enabled, the assembled codeword is
// permuted before being returned.
func (c *Codec) Encode(info []byte) ([]byte, error) {
	if len(info) != c.infoBytes {
		return nil, errors.Errorf("ldpc: info length %d, want %d", len(info), c.infoBytes)
	}

	systematic := info
	if c.config.UseOuterInterleave {
		c.Interleave(c.tempOuter, info)
		systematic = c.tempOuter
	}

	codeword := c.tempCodeword
	for i := range codeword {
		codeword[i] = 0
	}
	copy(codeword, systematic)

	var prevParity uint8
	for row := 0; row < c.parityBits; row++ {
		var parity uint8
		start, end := c.matrix.rowPtr[row], c.matrix.rowPtr[row+1]
		for _, col := range c.matrix.colIdx[start:end] {
			if int(col) < c.infoBits {
				parity ^= getBit(codeword, int(col))
			}
		}
		if row > 0 {
			parity ^= prevParity
		}
		setBit(codeword, c.infoBits+row, parity)
		prevParity = parity
	}

	out := make([]byte, c.codewordBytes)
	if c.config.UseInnerInterleave {
		c.interleaveBits(out, codeword)
	} else {
		copy(out, codeword)
	}

	return out, nil
}
