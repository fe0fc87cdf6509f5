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

import "github.com/xtaci/gofec/xoshiro"

// interleaverSeedXOR is XORed with Config.Seed before deriving the outer
// byte interleaver's permutation, so the inner and outer interleavers
// never draw from the same xoshiro stream even when both are enabled
// with the same configured seed.
const interleaverSeedXOR = 0xDEADBEEF

// buildInnerInterleaver constructs the bit-level block interleaver: bit
// i sits at row i/width, column i%width, and moves to
// perm[column]*depth + row, with perm a seeded shuffle of the columns.
// Bits adjacent in the original codeword therefore land a multiple of
// depth apart after interleaving.
func (c *Codec) buildInnerInterleaver() error {
	if !c.config.UseInnerInterleave {
		return nil
	}

	depth := c.config.InterleaveDepth
	if depth == 0 {
		depth = uint32(c.codewordBits) / autoInterleaveDepthDivisor
	}
	if depth < 8 {
		depth = 8
	}
	if depth > 256 {
		depth = 256
	}

	width := (uint32(c.codewordBits) + depth - 1) / depth

	perm := make([]uint32, width)
	for i := range perm {
		perm[i] = uint32(i)
	}
	rng := xoshiro.New(c.config.Seed)
	rng.ShuffleUint32(perm)

	forward := make([]uint32, c.codewordBits)
	inverse := make([]uint32, c.codewordBits)

	pos := 0
	for row := uint32(0); row < depth; row++ {
		for col := uint32(0); col < width; col++ {
			src := row*width + col
			if int(src) >= c.codewordBits {
				continue
			}
			dstCol := perm[col]
			dst := dstCol*depth + row
			if int(dst) >= c.codewordBits {
				continue
			}
			forward[src] = dst
			inverse[dst] = src
			pos++
		}
	}

	c.inner = interleaver{forward: forward, inverse: inverse, depth: depth}
	return nil
}

// buildOuterInterleaver constructs the byte-level outer interleaver: a
// full Fisher-Yates permutation of the information bytes, seeded
// independently of the matrix and inner-interleaver streams.
func (c *Codec) buildOuterInterleaver() error {
	if !c.config.UseOuterInterleave {
		return nil
	}

	perm := make([]uint32, c.infoBytes)
	for i := range perm {
		perm[i] = uint32(i)
	}

	seed := c.config.Seed ^ (uint32(c.infoBits) ^ interleaverSeedXOR)
	rng := xoshiro.New(seed)
	rng.ShuffleUint32(perm)

	forward := make([]uint32, c.infoBytes)
	inverse := make([]uint32, c.infoBytes)
	for i, dst := range perm {
		forward[i] = dst
		inverse[dst] = uint32(i)
	}

	c.outer = interleaver{forward: forward, inverse: inverse}
	return nil
}

// Interleave applies the outer byte interleaver (if enabled) to info,
// writing the permuted bytes into out. out and info must both be
// InfoSize() bytes and distinct slices.
func (c *Codec) Interleave(out, info []byte) {
	if c.outer.forward == nil {
		copy(out, info)
		return
	}
	for i, dst := range c.outer.forward {
		out[dst] = info[i]
	}
}

// Deinterleave reverses Interleave.
func (c *Codec) Deinterleave(out, interleaved []byte) {
	if c.outer.inverse == nil {
		copy(out, interleaved)
		return
	}
	for pos, src := range c.outer.inverse {
		out[src] = interleaved[pos]
	}
}

// interleaveBits applies the inner bit interleaver to a codeword.
func (c *Codec) interleaveBits(dst, src []byte) {
	if c.inner.forward == nil {
		copy(dst, src)
		return
	}
	for i := range dst {
		dst[i] = 0
	}
	for bit := 0; bit < c.codewordBits; bit++ {
		setBit(dst, int(c.inner.forward[bit]), getBit(src, bit))
	}
}

// deinterleaveBits reverses interleaveBits.
func (c *Codec) deinterleaveBits(dst, src []byte) {
	if c.inner.inverse == nil {
		copy(dst, src)
		return
	}
	for i := range dst {
		dst[i] = 0
	}
	for bit := 0; bit < c.codewordBits; bit++ {
		setBit(dst, bit, getBit(src, int(c.inner.forward[bit])))
	}
}

// deinterleaveLLR reorders a channel LLR array (one int16 per codeword
// bit, in interleaved order) back to natural bit order.
func (c *Codec) deinterleaveLLR(dst, src []int16) {
	if c.inner.forward == nil {
		copy(dst, src)
		return
	}
	for bit := 0; bit < c.codewordBits; bit++ {
		dst[bit] = src[c.inner.forward[bit]]
	}
}
