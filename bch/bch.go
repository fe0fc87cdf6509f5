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

// Package bch implements binary BCH coding over GF(2^m): generator
// construction from cyclotomic cosets of minimal polynomials, systematic
// shift-register encode, and Berlekamp-Massey/Chien decode for a single
// codeword packed into a uint32.
package bch

import "github.com/pkg/errors"

// maxPolyDegree bounds every scratch polynomial buffer; the underlying
// field never exceeds GF(2^16), so no BCH generator or error locator
// polynomial used here needs more than this many coefficients.
const maxPolyDegree = 64

// maxCorrectionCapability bounds t, the number of bit errors a Codec can
// correct per codeword.
const maxCorrectionCapability = 16

// Codec is a binary BCH code over GF(2^symbolSize): CodewordLength() =
// 2^symbolSize - 1 bits, of which DataLength() carry payload and the rest
// are generator-polynomial parity. A Codec is not safe for concurrent use.
type Codec struct {
	gf *field

	correctionCapability uint8
	codewordLength       uint16
	dataLength           uint16
	parityBits           uint16

	genPoly    uint64
	genPolyDeg int
}

// field is BCH's own minimal GF(2^m) table, built identically to
// package gf's tables but kept private here: BCH's Berlekamp-Massey and
// minimal-polynomial construction index log/exp tables by raw int
// expressions in ways that read more directly against a small local
// type than against gf.Field's exported API.
type field struct {
	symbolSize int
	fieldSize  int
	expOf      []uint16
	logOf      []uint16
}

func newField(symbolSize int, poly uint16) (*field, error) {
	if symbolSize < 1 || symbolSize > 16 {
		return nil, errors.Errorf("bch: symbol size %d out of range", symbolSize)
	}
	fieldSize := (1 << uint(symbolSize)) - 1

	f := &field{
		symbolSize: symbolSize,
		fieldSize:  fieldSize,
		expOf:      make([]uint16, fieldSize+1),
		logOf:      make([]uint16, fieldSize+1),
	}
	f.logOf[0] = uint16(fieldSize)
	f.expOf[fieldSize] = 0

	element := 1
	for i := 0; i < fieldSize; i++ {
		f.logOf[element] = uint16(i)
		f.expOf[i] = uint16(element)

		element <<= 1
		if element&(1<<uint(symbolSize)) != 0 {
			element ^= int(poly)
		}
		element &= fieldSize
	}

	if element != int(f.expOf[0]) {
		return nil, errors.Errorf("bch: polynomial 0x%x is not primitive for symbol size %d", poly, symbolSize)
	}
	return f, nil
}

// New builds a BCH(2^symbolSize-1, *, correctionCapability) code: a
// generator polynomial from the minimal polynomials of alpha^1 through
// alpha^(2*correctionCapability), their binary LCM taken via coset
// deduplication so repeated conjugate roots only contribute once.
func New(symbolSize int, poly uint16, correctionCapability uint8) (*Codec, error) {
	if symbolSize < 3 || symbolSize > 16 {
		return nil, errors.Errorf("bch: symbol size %d out of range [3,16]", symbolSize)
	}
	if correctionCapability < 1 || correctionCapability > maxCorrectionCapability {
		return nil, errors.Errorf("bch: correction capability %d out of range [1,%d]", correctionCapability, maxCorrectionCapability)
	}

	gf, err := newField(symbolSize, poly)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		gf:                   gf,
		correctionCapability: correctionCapability,
		codewordLength:       uint16(gf.fieldSize),
	}

	if err := c.buildGenerator(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildGenerator follows bch_build_generator: walk exponents 1 through
// 2t, skip any already covered by an earlier root's cyclotomic coset,
// and multiply that root's minimal polynomial into the running
// generator (as binary polynomials over GF(2), via XOR-shift
// convolution).
func (c *Codec) buildGenerator() error {
	fieldSize := c.gf.fieldSize
	used := make([]bool, fieldSize+1)

	var gen uint64 = 1
	genDeg := 0

	for i := 1; i <= 2*int(c.correctionCapability); i++ {
		rootExp := i % fieldSize
		if used[rootExp] {
			continue
		}

		conj := rootExp
		for {
			used[conj] = true
			conj = (conj * 2) % fieldSize
			if conj == rootExp {
				break
			}
		}

		minPoly := c.minimalPolynomial(rootExp)
		gen = multiplyBinary(gen, genDeg, minPoly)
		genDeg = degreeBinary(gen)
	}

	if genDeg <= 0 || genDeg >= int(c.codewordLength) {
		return errors.Errorf("bch: degenerate generator polynomial (degree %d) for symbol size %d, t=%d", genDeg, c.gf.symbolSize, c.correctionCapability)
	}

	c.genPoly = gen
	c.genPolyDeg = genDeg
	c.parityBits = uint16(genDeg)
	c.dataLength = c.codewordLength - c.parityBits
	return nil
}

// minimalPolynomial computes the minimal polynomial of alpha^exp over
// GF(2) as product_{conjugates}(x - alpha^conjugate), accumulated in
// value form then packed into a binary polynomial (bit i set iff the
// degree-i coefficient equals 1, the only coefficient a GF(2) minimal
// polynomial can have), following bch_get_minimal_polynomial exactly.
func (c *Codec) minimalPolynomial(exp int) uint64 {
	gf := c.gf
	fieldSize := gf.fieldSize

	poly := make([]uint16, maxPolyDegree)
	poly[0] = 1
	polyDeg := 0

	conjugate := exp
	for {
		root := gf.expOf[conjugate]

		for j := polyDeg; j >= 0; j-- {
			if j+1 < maxPolyDegree {
				poly[j+1] ^= poly[j]
			}
			if poly[j] != 0 && root != 0 {
				logProd := (int(gf.logOf[poly[j]]) + int(gf.logOf[root])) % fieldSize
				poly[j] = gf.expOf[logProd]
			} else {
				poly[j] = 0
			}
		}
		polyDeg++

		conjugate = (conjugate * 2) % fieldSize
		if conjugate == exp {
			break
		}
	}

	var binaryPoly uint64
	for i := 0; i <= polyDeg; i++ {
		if poly[i] == 1 {
			binaryPoly |= 1 << uint(i)
		}
	}
	return binaryPoly
}

// multiplyBinary multiplies two GF(2) polynomials (bit i = coefficient of
// x^i) via XOR-shift convolution: a has known degree degA.
func multiplyBinary(a uint64, degA int, b uint64) uint64 {
	var result uint64
	for i := 0; i <= degA; i++ {
		if a&(1<<uint(i)) != 0 {
			result ^= b << uint(i)
		}
	}
	return result
}

// degreeBinary returns the index of poly's highest set bit, or -1 for the
// zero polynomial.
func degreeBinary(poly uint64) int {
	if poly == 0 {
		return -1
	}
	deg := 0
	for i := 63; i >= 0; i-- {
		if poly&(1<<uint(i)) != 0 {
			deg = i
			break
		}
	}
	return deg
}

// CodewordLength returns the bit length of one codeword (2^symbolSize - 1).
func (c *Codec) CodewordLength() uint16 { return c.codewordLength }

// DataLength returns how many of CodewordLength's bits carry payload.
func (c *Codec) DataLength() uint16 { return c.dataLength }

// CorrectionCapability returns t, the maximum number of bit errors per
// codeword this code can correct.
func (c *Codec) CorrectionCapability() uint8 { return c.correctionCapability }
