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

// Result reports what a Decode call actually did.
type Result struct {
	Success           bool
	CorrectionsApplied int
}

// Decode dispatches to the constructed family's decoder, correcting data
// and parity in place where the family supports it. erasurePositions is
// only consulted for RS; it may be nil.
func (c *Codec) Decode(data, parity []byte, erasurePositions []uint32) (Result, error) {
	switch c.family {
	case RS:
		if len(data) == 0 || len(parity) != int(c.rs.NumRoots) {
			return Result{}, errors.Errorf("fec: rs Decode wants non-empty data and %d parity bytes, got %d and %d bytes", c.rs.NumRoots, len(data), len(parity))
		}
		if _, err := c.rs.PaddingLength(len(data)); err != nil {
			return Result{}, err
		}
		if len(erasurePositions) > 0 {
			r, err := c.rs.DecodeWithErasures(data, parity, erasurePositions)
			if err != nil {
				return Result{}, nil
			}
			return Result{Success: true, CorrectionsApplied: r.ErrorsCorrected}, nil
		}

		r, err := c.rs.Decode(data, parity)
		if err != nil {
			return Result{}, nil
		}
		return Result{Success: true, CorrectionsApplied: r.ErrorsCorrected}, nil

	case BCH:
		if len(data) != 4 {
			return Result{}, errors.Errorf("fec: bch Decode wants a 4-byte little-endian codeword, got %d bytes", len(data))
		}
		received := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		corrected, res, err := c.bch.Decode(received)
		if err != nil {
			return Result{}, nil
		}
		data[0] = byte(corrected)
		data[1] = byte(corrected >> 8)
		data[2] = byte(corrected >> 16)
		data[3] = byte(corrected >> 24)
		return Result{Success: true, CorrectionsApplied: res.ErrorsCorrected}, nil

	case LDPC:
		codeword := make([]byte, c.ldpc.CodewordSize())
		copy(codeword, data)
		copy(codeword[len(data):], parity)

		iterations, ok, err := c.ldpc.DecodeHard(codeword, c.cfg.LDPC.MaxIterations)
		if err != nil {
			return Result{}, err
		}
		c.iterationsUsed = iterations

		copy(data, codeword[:c.ldpc.InfoSize()])
		copy(parity, codeword[c.ldpc.InfoSize():])

		return Result{Success: ok}, nil

	default:
		return Result{}, errors.Errorf("fec: unknown family %d", c.family)
	}
}
