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

package fec

import "github.com/pkg/errors"

// Encode dispatches to the constructed family's encoder. data is the
// information payload; the returned parity bytes (RS/LDPC) or packed
// codeword (BCH, returned as a single big.Int-free uint32 wrapped in a
// 4-byte little-endian slice) depend on the family.
//
// For BCH, data must hold exactly one little-endian-packed uint32 value
// in its low DataLength() bits; BCH codewords don't generalize to
// arbitrary byte slices the way RS/LDPC do, so callers working with BCH
// are expected to use bch.Codec directly when they need to stream many
// codewords efficiently. This method exists so every family is reachable
// through one dispatch surface, not because it is the fastest way to
// drive BCH.
func (c *Codec) Encode(data []byte) (parity []byte, err error) {
	switch c.family {
	case RS:
		return c.rs.Encode(data)

	case LDPC:
		codeword, err := c.ldpc.Encode(data)
		if err != nil {
			return nil, err
		}
		return codeword[c.ldpc.InfoSize():], nil

	case BCH:
		if len(data) != 4 {
			return nil, errors.Errorf("fec: bch Encode wants a 4-byte little-endian value, got %d bytes", len(data))
		}
		value := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		codeword, err := c.bch.Encode(value)
		if err != nil {
			return nil, err
		}
		return []byte{byte(codeword), byte(codeword >> 8), byte(codeword >> 16), byte(codeword >> 24)}, nil

	default:
		return nil, errors.Errorf("fec: unknown family %d", c.family)
	}
}
