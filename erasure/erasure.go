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

// Package erasure holds the caller-declared erasure positions fed into an
// RS decode as known-bad symbol indices, plus a per-position correction
// workspace. The RS decoder reads only the positions; it does not write
// correction values back into a Set.
package erasure

// Set is a growable list of erasure positions paired with a correction
// value slot for each, set through SetCorrection. Positions are appended
// in caller order; Set does not sort or deduplicate them.
type Set struct {
	positions   []uint32
	corrections []uint16
}

// New allocates a Set sized for numRoots erasures up front, or
// initialCapacity if it is larger. numRoots is normally the code's root
// count (its maximum correctable erasures), so the common case of
// declaring all-or-most-roots-worth of erasures never reallocates.
func New(numRoots uint16, initialCapacity uint32) *Set {
	capacity := initialCapacity
	if capacity < uint32(numRoots) {
		capacity = uint32(numRoots)
	}
	return &Set{
		positions:   make([]uint32, 0, capacity),
		corrections: make([]uint16, 0, capacity),
	}
}

// FromPositions builds a Set pre-populated from positions, with every
// correction slot zero, sized to hold at least numRoots entries so that
// later Add calls up to that count do not need to reallocate.
func FromPositions(numRoots uint16, positions []uint32) *Set {
	capacity := uint32(len(positions))
	if uint32(numRoots) > capacity {
		capacity = uint32(numRoots)
	}
	s := New(numRoots, capacity)
	s.positions = append(s.positions, positions...)
	s.corrections = s.corrections[:0]
	for range positions {
		s.corrections = append(s.corrections, 0)
	}
	return s
}

// growTo mirrors poporon_erasure_add_position's realloc policy: double the
// capacity, or grow by 32 if doubling would not be enough, whichever is
// larger. Go's append already amortizes growth, but callers that care
// about capacity planning (pre-sizing a Set for a known worst case) can
// rely on this matching the original's curve exactly.
func growTo(current []uint32, need int) []uint32 {
	if cap(current) >= need {
		return current
	}
	newCapacity := cap(current) * 2
	if newCapacity < cap(current)+32 {
		newCapacity = cap(current) + 32
	}
	if newCapacity < need {
		newCapacity = need
	}
	grown := make([]uint32, len(current), newCapacity)
	copy(grown, current)
	return grown
}

// Add appends a new erasure position, growing capacity by doubling (or by
// 32, whichever is larger) when the backing array is full, and reports the
// resulting count.
func (s *Set) Add(position uint32) int {
	s.positions = growTo(s.positions, len(s.positions)+1)
	s.positions = append(s.positions, position)
	s.corrections = append(s.corrections, 0)
	return len(s.positions)
}

// Reset empties the set without releasing its backing arrays, mirroring
// poporon_erasure_reset so a caller can recycle one Set across repeated
// decodes of same-shaped codewords.
func (s *Set) Reset() {
	s.positions = s.positions[:0]
	s.corrections = s.corrections[:0]
}

// Len reports the number of declared erasure positions.
func (s *Set) Len() int {
	return len(s.positions)
}

// Positions returns the erasure positions in the order they were added.
// The returned slice aliases Set's internal storage and must not be
// retained across a subsequent Add or Reset.
func (s *Set) Positions() []uint32 {
	return s.positions
}

// SetCorrection records the correction value a decoder computed for the
// i'th declared position.
func (s *Set) SetCorrection(i int, value uint16) {
	s.corrections[i] = value
}

// Corrections returns the correction values parallel to Positions(). A
// position whose correction has not yet been set reads as zero.
func (s *Set) Corrections() []uint16 {
	return s.corrections
}
