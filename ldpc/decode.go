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

// Check reports whether codeword (InfoSize()+ParitySize() bytes, in the
// wire order Encode produces; deinterleaved first when the inner
// interleaver is enabled) satisfies every parity-check row.
func (c *Codec) Check(codeword []byte) (bool, error) {
	if len(codeword) != c.codewordBytes {
		return false, errors.Errorf("ldpc: codeword length %d, want %d", len(codeword), c.codewordBytes)
	}

	work := codeword
	if c.config.UseInnerInterleave {
		c.deinterleaveBits(c.tempCodeword, codeword)
		work = c.tempCodeword
	}

	return c.checkSyndrome(work), nil
}

func (c *Codec) checkSyndrome(codeword []byte) bool {
	for row := 0; row < c.parityBits; row++ {
		var parity uint8
		start, end := c.matrix.rowPtr[row], c.matrix.rowPtr[row+1]
		for _, col := range c.matrix.colIdx[start:end] {
			parity ^= getBit(codeword, int(col))
		}
		if parity != 0 {
			return false
		}
	}
	return true
}

// DecodeHard runs normalized min-sum belief propagation seeded from a
// hard-decision channel observation (codeword, modified in place) for up
// to maxIterations rounds, stopping early once every check is satisfied.
// It reports the iteration count actually used and whether the result
// satisfies every parity check.
func (c *Codec) DecodeHard(codeword []byte, maxIterations uint32) (uint32, bool, error) {
	if len(codeword) != c.codewordBytes {
		return 0, false, errors.Errorf("ldpc: codeword length %d, want %d", len(codeword), c.codewordBytes)
	}
	if maxIterations == 0 {
		maxIterations = defaultMaxIterations
	}

	work := codeword
	if c.config.UseInnerInterleave {
		c.deinterleaveBits(c.tempCodeword, codeword)
		work = c.tempCodeword
	}

	channelLLR := make([]int16, c.codewordBits)
	for bit := 0; bit < c.codewordBits; bit++ {
		if getBit(work, bit) != 0 {
			channelLLR[bit] = -llrScaleFactor
		} else {
			channelLLR[bit] = llrScaleFactor
		}
	}

	iterations, ok := c.runBeliefPropagation(channelLLR, maxIterations)
	c.makeHardDecision(work)

	if c.config.UseInnerInterleave {
		c.interleaveBits(codeword, work)
	}

	return iterations, ok, nil
}

// DecodeSoft runs normalized min-sum belief propagation from soft
// channel LLRs (one int16 per codeword bit, in wire/interleaved order;
// positive favors a 0 bit, negative favors a 1 bit) and writes the
// hard-decided codeword into codeword, which must be
// InfoSize()+ParitySize() bytes.
func (c *Codec) DecodeSoft(llr []int16, codeword []byte, maxIterations uint32) (uint32, bool, error) {
	if len(llr) != c.codewordBits {
		return 0, false, errors.Errorf("ldpc: llr length %d, want %d", len(llr), c.codewordBits)
	}
	if len(codeword) != c.codewordBytes {
		return 0, false, errors.Errorf("ldpc: codeword length %d, want %d", len(codeword), c.codewordBytes)
	}
	if maxIterations == 0 {
		maxIterations = defaultMaxIterations
	}

	channelLLR := make([]int16, c.codewordBits)
	if c.config.UseInnerInterleave {
		c.deinterleaveLLR(channelLLR, llr)
	} else {
		copy(channelLLR, llr)
	}

	work := codeword
	if c.config.UseInnerInterleave {
		work = c.tempCodeword
	}

	iterations, ok := c.runBeliefPropagation(channelLLR, maxIterations)
	c.makeHardDecision(work)

	if c.config.UseInnerInterleave {
		c.interleaveBits(codeword, work)
	}

	return iterations, ok, nil
}

// runBeliefPropagation initializes the message state from channelLLR and
// iterates check-node/variable-node updates until either the codeword
// implied by the running LLR totals satisfies every check or
// maxIterations rounds have run.
func (c *Codec) runBeliefPropagation(channelLLR []int16, maxIterations uint32) (uint32, bool) {
	scratch := make([]byte, c.codewordBytes)
	for bit := 0; bit < c.codewordBits; bit++ {
		if channelLLR[bit] < 0 {
			setBit(scratch, bit, 1)
		}
	}
	if c.checkSyndrome(scratch) {
		copy(c.msg.llrTotal, channelLLR)
		return 0, true
	}

	c.initializeMessages(channelLLR)

	var iter uint32
	for iter = 0; iter < maxIterations; iter++ {
		c.checkNodeUpdate()
		c.variableNodeUpdate(channelLLR)

		c.makeHardDecision(scratch)
		if c.checkSyndrome(scratch) {
			return iter + 1, true
		}
	}

	return maxIterations, c.checkSyndrome(scratch)
}

// initializeMessages seeds the running LLR total and every outgoing
// variable-to-check message from the channel LLR alone, since no
// check-to-variable messages exist yet.
func (c *Codec) initializeMessages(channelLLR []int16) {
	copy(c.msg.llrTotal, channelLLR)
	for i := range c.msg.checkToVar {
		c.msg.checkToVar[i] = 0
	}
	for bit := 0; bit < c.codewordBits; bit++ {
		start, end := c.matrixCols.colPtr[bit], c.matrixCols.colPtr[bit+1]
		for _, e := range c.matrixCols.edgeIdx[start:end] {
			c.msg.varToCheck[e] = channelLLR[bit]
		}
	}
}

// checkNodeUpdate applies the normalized min-sum rule. For each check row
// it tracks the overall sign product and the two smallest incoming
// magnitudes (min1 and which edge holds it, min2 otherwise); the message
// back to the edge holding min1 uses min2 so no edge ever hears its own
// contribution, and every other edge uses min1. Both are scaled by
// minsumAlphaNumerator/minsumAlphaDenominator and signed by the row's
// total sign with that edge's own sign divided back out.
func (c *Codec) checkNodeUpdate() {
	for row := 0; row < c.parityBits; row++ {
		start, end := c.matrix.rowPtr[row], c.matrix.rowPtr[row+1]

		signProduct := 1
		min1, min2 := int32(llrInfinity), int32(llrInfinity)
		min1Edge := uint32(0)

		for e := start; e < end; e++ {
			v := c.msg.varToCheck[e]
			if v < 0 {
				signProduct = -signProduct
			}
			abs := int32(v)
			if abs < 0 {
				abs = -abs
			}
			if abs < min1 {
				min2 = min1
				min1 = abs
				min1Edge = e
			} else if abs < min2 {
				min2 = abs
			}
		}

		for e := start; e < end; e++ {
			magnitude := min1
			if e == min1Edge {
				magnitude = min2
			}
			magnitude = magnitude * minsumAlphaNumerator / minsumAlphaDenominator

			ownSign := 1
			if c.msg.varToCheck[e] < 0 {
				ownSign = -1
			}
			edgeSign := signProduct * ownSign

			if edgeSign < 0 {
				c.msg.checkToVar[e] = saturate(-magnitude)
			} else {
				c.msg.checkToVar[e] = saturate(magnitude)
			}
		}
	}
}

// variableNodeUpdate recomputes each bit's running total LLR (channel
// plus every incident check-to-variable message) and each outgoing
// variable-to-check message (the total minus that edge's own
// contribution, the standard extrinsic-information exclusion).
func (c *Codec) variableNodeUpdate(channelLLR []int16) {
	for bit := 0; bit < c.codewordBits; bit++ {
		start, end := c.matrixCols.colPtr[bit], c.matrixCols.colPtr[bit+1]

		sum := int32(channelLLR[bit])
		for _, e := range c.matrixCols.edgeIdx[start:end] {
			sum += int32(c.msg.checkToVar[e])
		}
		c.msg.llrTotal[bit] = saturate(sum)

		for _, e := range c.matrixCols.edgeIdx[start:end] {
			c.msg.varToCheck[e] = saturate(sum - int32(c.msg.checkToVar[e]))
		}
	}
}

// makeHardDecision writes the sign of each bit's running total LLR into
// codeword: negative (favors 1) sets the bit, non-negative clears it.
func (c *Codec) makeHardDecision(codeword []byte) {
	for i := range codeword {
		codeword[i] = 0
	}
	for bit := 0; bit < c.codewordBits; bit++ {
		if c.msg.llrTotal[bit] < 0 {
			setBit(codeword, bit, 1)
		}
	}
}
