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

// Package gf implements GF(2^m) table construction and the modular
// reduction used by the RS codec. The BCH codec keeps its own private
// copy of the same table construction.
package gf

import "github.com/pkg/errors"

// Field holds the log/exp tables for GF(2^m), built from a primitive
// polynomial. The zero value is not a valid Field; use New.
type Field struct {
	SymbolSize int    // m
	FieldSize  int    // 2^m - 1
	Poly       uint16 // primitive polynomial

	// ExpOf[i] = alpha^i for i in [0, FieldSize-1]; ExpOf[FieldSize] = 0
	// (the "exp of -inf" sentinel result).
	ExpOf []uint16
	// LogOf[x] = i such that alpha^i = x; LogOf[0] = FieldSize, the
	// "-inf" sentinel used to mean "this operand is zero".
	LogOf []uint16
}

// MinSymbolSize and MaxSymbolSize bound m for generic GF(2^m) use (RS).
// BCH additionally requires m >= 3 (bch.New enforces that itself).
const (
	MinSymbolSize = 1
	MaxSymbolSize = 16
)

// New builds the log/exp tables for GF(2^symbolSize) reduced by poly.
// It fails if poly is not primitive for the given symbol size: the
// multiplicative generator must visit every nonzero field element
// exactly once before returning to 1.
func New(symbolSize int, poly uint16) (*Field, error) {
	if symbolSize < MinSymbolSize || symbolSize > MaxSymbolSize {
		return nil, errors.Errorf("gf: symbol size %d out of range [%d,%d]", symbolSize, MinSymbolSize, MaxSymbolSize)
	}

	fieldSize := (1 << uint(symbolSize)) - 1

	f := &Field{
		SymbolSize: symbolSize,
		FieldSize:  fieldSize,
		Poly:       poly,
		ExpOf:      make([]uint16, fieldSize+1),
		LogOf:      make([]uint16, fieldSize+1),
	}

	f.LogOf[0] = uint16(fieldSize)
	f.ExpOf[fieldSize] = 0

	element := 1
	for i := 0; i < fieldSize; i++ {
		f.LogOf[element] = uint16(i)
		f.ExpOf[i] = uint16(element)

		element <<= 1
		if element&(1<<uint(symbolSize)) != 0 {
			element ^= int(poly)
		}
		element &= fieldSize
	}

	if element != int(f.ExpOf[0]) {
		return nil, errors.Errorf("gf: polynomial 0x%x is not primitive for symbol size %d", poly, symbolSize)
	}

	return f, nil
}

// Mod reduces value modulo FieldSize using the field's own "subtract and
// fold" reduction rather than Go's % operator, matching the arithmetic
// every RS/BCH inner loop depends on bit-for-bit.
func (f *Field) Mod(value int) int {
	for value >= f.FieldSize {
		value -= f.FieldSize
		value = (value >> uint(f.SymbolSize)) + (value & f.FieldSize)
	}
	return value
}

// Mul multiplies two field elements given in value form (not log form).
// A zero operand short-circuits to zero without touching the log tables.
func (f *Field) Mul(a, b uint16) uint16 {
	if a == 0 || b == 0 {
		return 0
	}
	return f.ExpOf[f.Mod(int(f.LogOf[a])+int(f.LogOf[b]))]
}

// MulLog multiplies two operands already in log form, where the sentinel
// FieldSize means "zero". Returns the log of the product, or the sentinel
// if either operand is the sentinel.
func (f *Field) MulLog(la, lb uint16) uint16 {
	sentinel := uint16(f.FieldSize)
	if la == sentinel || lb == sentinel {
		return sentinel
	}
	return uint16(f.Mod(int(la) + int(lb)))
}

// Inv returns the multiplicative inverse of a nonzero field element, in
// value form.
func (f *Field) Inv(a uint16) uint16 {
	if a == 0 {
		return 0
	}
	return f.ExpOf[f.Mod(f.FieldSize-int(f.LogOf[a]))]
}

