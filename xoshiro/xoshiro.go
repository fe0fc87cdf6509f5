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

// Package xoshiro implements a deterministic, process-local 32-bit PRNG:
// Xoshiro128++ seeded by SplitMix32. It backs the LDPC matrix and
// interleaver construction, where the exact same seed must reproduce the
// exact same draw sequence on every platform.
package xoshiro

const (
	splitmix32Const0 = 0x6C078965
	splitmix32Const1 = 0x9D2C5680
	splitmix32Const2 = 0xEFC60000
	splitmix32Const3 = 0x12345678
)

// Source is a Xoshiro128++ generator, seeded via SplitMix32 expansion of a
// single 32-bit seed. The zero value is not ready for use; call New.
type Source struct {
	s [4]uint32
}

func rotl(x uint32, k uint) uint32 {
	return (x << k) | (x >> (32 - k))
}

func splitmix32(z uint32) uint32 {
	z = (z ^ (z >> 16)) * 0x85EBCA6B
	z = (z ^ (z >> 13)) * 0xC2B2AE35
	return z ^ (z >> 16)
}

// New expands seed into the four-word Xoshiro128++ state using four
// successive SplitMix32 steps, each seeded by the previous state word plus
// a distinct additive constant.
func New(seed uint32) *Source {
	s := &Source{}

	z := seed + splitmix32Const0
	s.s[0] = splitmix32(z)

	z = s.s[0] + splitmix32Const1
	s.s[1] = splitmix32(z)

	z = s.s[1] + splitmix32Const2
	s.s[2] = splitmix32(z)

	z = s.s[2] + splitmix32Const3
	s.s[3] = splitmix32(z)

	return s
}

// Next returns the next 32-bit output and advances the generator state.
func (s *Source) Next() uint32 {
	result := rotl(s.s[0]+s.s[3], 7) + s.s[0]
	t := s.s[1] << 9

	s.s[2] ^= s.s[0]
	s.s[3] ^= s.s[1]
	s.s[1] ^= s.s[2]
	s.s[0] ^= s.s[3]
	s.s[2] ^= t
	s.s[3] = rotl(s.s[3], 11)

	return result
}

// Read fills dest with output bytes in 4-byte little-endian chunks,
// emitting a trailing partial chunk verbatim. It always returns
// len(dest), nil, satisfying io.Reader.
func (s *Source) Read(dest []byte) (int, error) {
	i := 0
	for i+4 <= len(dest) {
		v := s.Next()
		dest[i] = byte(v)
		dest[i+1] = byte(v >> 8)
		dest[i+2] = byte(v >> 16)
		dest[i+3] = byte(v >> 24)
		i += 4
	}

	if remaining := len(dest) - i; remaining > 0 {
		v := s.Next()
		var buf [4]byte
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		copy(dest[i:], buf[:remaining])
	}

	return len(dest), nil
}

// Uint32n draws a uniform value in [0, n) by direct modulo reduction of a
// raw 32-bit output, matching the original's `rval % n` draw pattern
// exactly (no rejection sampling) so that reseeded reconstruction passes
// reproduce an identical sequence.
func (s *Source) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return s.Next() % n
}

// ShuffleUint32 performs an in-place Fisher-Yates shuffle of perm, drawing
// swap indices from s in the same order poporon_ldpc's interleaver builders
// do: for i from len(perm)-1 down to 1, swap perm[i] with perm[j] where
// j = draw() % (i+1).
func (s *Source) ShuffleUint32(perm []uint32) {
	for i := len(perm) - 1; i > 0; i-- {
		j := s.Uint32n(uint32(i + 1))
		perm[i], perm[j] = perm[j], perm[i]
	}
}
