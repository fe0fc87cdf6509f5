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

// Package reedsolomon implements classical systematic Reed-Solomon coding
// over GF(2^m): generator-polynomial encode, and Berlekamp-Massey/Chien
// search/Forney decode with optional erasure hints or a caller-supplied
// syndrome. A Codec is not safe for concurrent use: it reuses one scratch
// buffer across calls the way the C library it is grounded on reuses one
// decoder_buffer_t per handle.
package reedsolomon

import (
	"github.com/pkg/errors"
	"github.com/xtaci/gofec/gf"
)

// Codec is a configured RS code: a Galois field plus the root parameters
// that determine its generator polynomial. NumRoots parity symbols are
// appended to each codeword, correcting up to NumRoots/2 errors or
// NumRoots erasures (or a mix, under the usual 2*errors+erasures<=NumRoots
// bound).
type Codec struct {
	GF *gf.Field

	FirstConsecutiveRoot uint16
	PrimitiveElement     uint16
	NumRoots             uint16

	// generatorPolynomial holds the generator in log form, degree
	// NumRoots, constant term at index 0.
	generatorPolynomial []uint16

	// primitiveInverse is the multiplicative inverse of PrimitiveElement
	// in the field's additive exponent group, used by Chien search to
	// walk error-locator roots in data order.
	primitiveInverse uint16

	buf decodeBuffer
}

// decodeBuffer mirrors decoder_buffer_t: scratch arrays sized to
// NumRoots+1, reused across decode calls so a long-lived Codec does not
// allocate per call.
type decodeBuffer struct {
	errorLocator         []uint16
	syndrome             []uint16
	coefficients         []uint16
	polynomial           []uint16
	errorEvaluator       []uint16
	errorRoots           []uint16
	registerCoefficients []uint16
	errorLocations       []uint16
}

// New constructs an RS codec over GF(2^symbolSize) reduced by poly, with
// generator roots starting at alpha^(firstConsecutiveRoot*primitiveElement)
// and stepping by primitiveElement, numRoots of them.
func New(symbolSize int, poly uint16, firstConsecutiveRoot, primitiveElement uint16, numRoots uint16) (*Codec, error) {
	field, err := gf.New(symbolSize, poly)
	if err != nil {
		return nil, errors.Wrap(err, "reedsolomon: build field")
	}
	if primitiveElement == 0 {
		return nil, errors.New("reedsolomon: primitive element must be nonzero")
	}
	if int(numRoots) >= field.FieldSize {
		return nil, errors.Errorf("reedsolomon: num roots %d must be less than field size %d", numRoots, field.FieldSize)
	}

	c := &Codec{
		GF:                   field,
		FirstConsecutiveRoot: firstConsecutiveRoot,
		PrimitiveElement:     primitiveElement,
		NumRoots:             numRoots,
	}

	c.generatorPolynomial = buildGenerator(field, firstConsecutiveRoot, primitiveElement, numRoots)

	inverse, err := solvePrimitiveInverse(field, primitiveElement)
	if err != nil {
		return nil, err
	}
	c.primitiveInverse = inverse

	c.buf = decodeBuffer{
		errorLocator:         make([]uint16, numRoots+1),
		syndrome:             make([]uint16, numRoots+1),
		coefficients:         make([]uint16, numRoots+1),
		polynomial:           make([]uint16, numRoots+1),
		errorEvaluator:       make([]uint16, numRoots+1),
		errorRoots:           make([]uint16, numRoots+1),
		registerCoefficients: make([]uint16, numRoots+1),
		errorLocations:       make([]uint16, numRoots+1),
	}

	return c, nil
}

// buildGenerator computes the generator polynomial in log form by
// repeatedly multiplying in (x - alpha^root) factors, exactly following
// poporon_rs_create's value-form accumulation before a final pass converts
// every coefficient to log form.
func buildGenerator(f *gf.Field, firstConsecutiveRoot, primitiveElement, numRoots uint16) []uint16 {
	gen := make([]uint16, numRoots+1)
	gen[0] = 1

	root := int(firstConsecutiveRoot) * int(primitiveElement)
	for i := 0; i < int(numRoots); i++ {
		gen[i+1] = 1
		for j := i; j > 0; j-- {
			if gen[j] != 0 {
				gen[j] = gen[j-1] ^ f.ExpOf[f.Mod(int(f.LogOf[gen[j]])+root)]
			} else {
				gen[j] = gen[j-1]
			}
		}
		gen[0] = f.ExpOf[f.Mod(int(f.LogOf[gen[0]])+root)]
		root += int(primitiveElement)
	}

	for i := range gen {
		gen[i] = f.LogOf[gen[i]]
	}
	return gen
}

// solvePrimitiveInverse finds the smallest k such that k*primitiveElement
// is congruent to 1 modulo the field's multiplicative order, following
// poporon_create's bounded search loop (capped at twice the field size so
// a malformed primitiveElement fails fast instead of spinning).
func solvePrimitiveInverse(f *gf.Field, primitiveElement uint16) (uint16, error) {
	iterations := 0
	value := uint16(1)
	for value%primitiveElement != 0 {
		value += uint16(f.FieldSize)
		iterations++
		if iterations > f.FieldSize*2 {
			return 0, errors.Errorf("reedsolomon: primitive element %d has no inverse in field of size %d", primitiveElement, f.FieldSize)
		}
	}
	return value / primitiveElement, nil
}

// PaddingLength returns the number of virtual leading zero symbols a
// codeword of the given data size is treated as having, so short payloads
// still decode against a full-length code. It reports an error if size is
// too large for the code to cover.
func (c *Codec) PaddingLength(size int) (int, error) {
	padding := c.GF.FieldSize - int(c.NumRoots) - size
	if padding < 0 || padding >= c.GF.FieldSize-int(c.NumRoots) {
		return 0, errors.Errorf("reedsolomon: data size %d does not fit the code (field size %d, num roots %d)", size, c.GF.FieldSize, c.NumRoots)
	}
	return padding, nil
}
