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

package reedsolomon

import "github.com/pkg/errors"

// Encode computes NumRoots parity symbols for data via an LFSR-style
// feedback over the generator polynomial, the same shift-and-feedback loop
// poporon_encode_u8 runs one data symbol at a time.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("reedsolomon: empty data")
	}
	fieldSize := uint16(c.GF.FieldSize)
	parity := make([]uint16, c.NumRoots)

	for _, d := range data {
		feedback := c.GF.LogOf[(uint16(d)&fieldSize)^parity[0]]

		if feedback != fieldSize {
			for j := 1; j < int(c.NumRoots); j++ {
				parity[j] ^= c.GF.ExpOf[c.GF.Mod(int(feedback)+int(c.generatorPolynomial[int(c.NumRoots)-j]))]
			}
		}

		copy(parity[0:], parity[1:])

		if feedback != fieldSize {
			parity[c.NumRoots-1] = c.GF.ExpOf[c.GF.Mod(int(feedback)+int(c.generatorPolynomial[0]))]
		} else {
			parity[c.NumRoots-1] = 0
		}
	}

	out := make([]byte, c.NumRoots)
	for i, v := range parity {
		out[i] = byte(v)
	}
	return out, nil
}
