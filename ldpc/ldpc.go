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

// Package ldpc implements binary low-density parity-check coding: sparse
// parity-check matrix construction (random or quasi-cyclic), systematic
// lower-bidiagonal encoding, and normalized min-sum belief-propagation
// decoding in both hard- and soft-decision form. An optional bit-level
// inner interleaver and byte-level outer interleaver can be layered on
// top to spread burst errors across the parity-check graph.
package ldpc

import "github.com/pkg/errors"

// Rate selects the ratio of information bits to parity bits a Codec
// builds. Rate1_3 carries one information bit per two parity bits (the
// most burst-resistant, least bandwidth-efficient option this package
// offers); Rate5_6 is the leanest.
type Rate int

const (
	Rate1_3 Rate = iota
	Rate1_2
	Rate2_3
	Rate3_4
	Rate4_5
	Rate5_6
)

func (r Rate) params() (infoNum, parityNum uint32, ok bool) {
	switch r {
	case Rate1_3:
		return 1, 2, true
	case Rate1_2:
		return 1, 1, true
	case Rate2_3:
		return 2, 1, true
	case Rate3_4:
		return 3, 1, true
	case Rate4_5:
		return 4, 1, true
	case Rate5_6:
		return 5, 1, true
	default:
		return 0, 0, false
	}
}

// MatrixType selects how the parity-check matrix's sparse edges are laid
// out between information and parity columns.
type MatrixType int

const (
	// Random scatters each information bit's ColumnWeight edges
	// uniformly across parity-check rows.
	Random MatrixType = iota
	// QC builds a quasi-cyclic matrix from LiftingFactor-sized circulant
	// blocks, which compresses far better in a hardware or SIMD decoder
	// because each block shares one shift pattern.
	QC
)

const (
	minBlockSize = 32
	maxBlockSize = 8192

	defaultColumnWeight        = 3
	burstResistantColumnWeight = 7

	minColumnWeight = 3
	maxColumnWeight = 8

	defaultMaxIterations = 50

	llrScaleFactor = 256

	autoInterleaveDepthDivisor = 4

	autoLiftingFactorDivisor = 8
	minLiftingFactor         = 4
	maxLiftingFactor         = 256

	minsumAlphaNumerator   = 15
	minsumAlphaDenominator = 16

	llrMax      = int16(32000)
	llrMin      = int16(-32000)
	llrInfinity = int16(30000)
)

// Config tunes parity-matrix construction and the optional interleavers.
// The zero value is not meant to be used directly; start from
// DefaultConfig or BurstResistantConfig.
type Config struct {
	MatrixType MatrixType
	// ColumnWeight is how many parity-check rows each information bit
	// participates in; clamped to [3,8].
	ColumnWeight uint32

	UseInnerInterleave bool
	// InterleaveDepth is the inner block interleaver's row count; 0
	// picks codewordBits/4, clamped to [8,256].
	InterleaveDepth uint32

	UseOuterInterleave bool

	// LiftingFactor is the QC circulant block size; 0 derives one from
	// ParityBits, clamped to [4,256] and rounded down to a power of two.
	LiftingFactor uint32

	// Seed drives every xoshiro stream this Codec uses: matrix
	// construction and both interleavers. The same seed on both ends of
	// a link is required to agree on the parity-check graph itself, so
	// Seed is ordinarily fixed per deployment, not randomized per call.
	Seed uint32
}

// DefaultConfig returns a plain, no-interleaver, column-weight-3 random
// matrix configuration, matching poporon_ldpc_params_default.
func DefaultConfig() Config {
	return Config{
		MatrixType:   Random,
		ColumnWeight: defaultColumnWeight,
	}
}

// BurstResistantConfig returns a heavier configuration, column weight 7
// with both interleavers enabled, trading codeword size and decode cost
// for resilience against correlated/bursty bit errors.
func BurstResistantConfig() Config {
	return Config{
		MatrixType:         Random,
		ColumnWeight:       7,
		UseInnerInterleave: true,
		UseOuterInterleave: true,
	}
}

// sparseMatrix is a CSR view of the parity-check matrix: row i's nonzero
// columns are colIdx[rowPtr[i]:rowPtr[i+1]].
type sparseMatrix struct {
	rowPtr    []uint32
	colIdx    []uint32
	numChecks uint32
	numBits   uint32
	numEdges  uint32
}

// columnView is a CSC-style companion to sparseMatrix: column c's entries
// are rowIdx[colPtr[c]:colPtr[c+1]], and edgeIdx holds each entry's index
// back into colIdx/the message arrays, so variable-node updates can walk
// a bit's checks without rescanning every row.
type columnView struct {
	colPtr  []uint32
	rowIdx  []uint32
	edgeIdx []uint32
}

// messages holds the belief-propagation state: one check-to-variable and
// variable-to-check value per matrix edge, plus the running total LLR
// per codeword bit.
type messages struct {
	checkToVar []int16
	varToCheck []int16
	llrTotal   []int16
}

// interleaver is a permutation and its inverse, shared shape for both the
// bit-level inner interleaver and the byte-level outer interleaver.
type interleaver struct {
	forward []uint32
	inverse []uint32
	depth   uint32
}

// Codec is a configured LDPC code over a fixed block size and rate. It is
// not safe for concurrent use: Encode/DecodeHard/DecodeSoft all reuse one
// scratch codeword and message buffer.
type Codec struct {
	rate   Rate
	config Config

	infoBits     int
	parityBits   int
	codewordBits int

	infoBytes     int
	parityBytes   int
	codewordBytes int

	matrix     sparseMatrix
	matrixCols columnView
	msg        messages

	inner interleaver
	outer interleaver

	tempCodeword    []byte
	tempInterleaved []byte
	tempOuter       []byte
}

// New builds an LDPC codec over a blockSize-byte information block (which
// must be a multiple of 4 bytes, between 32 and 8192 bytes) at the given
// rate, using cfg to shape the parity-check matrix and interleavers.
func New(blockSize int, rate Rate, cfg Config) (*Codec, error) {
	if blockSize < minBlockSize || blockSize > maxBlockSize || blockSize%4 != 0 {
		return nil, errors.Errorf("ldpc: block size %d must be a multiple of 4 in [%d,%d]", blockSize, minBlockSize, maxBlockSize)
	}

	infoNum, parityNum, ok := rate.params()
	if !ok {
		return nil, errors.Errorf("ldpc: unknown rate %d", rate)
	}

	c := &Codec{
		rate:   rate,
		config: cfg,
	}

	c.infoBits = blockSize * 8
	c.parityBits = (c.infoBits * int(parityNum)) / int(infoNum)
	c.codewordBits = c.infoBits + c.parityBits
	c.infoBytes = blockSize
	c.parityBytes = (c.parityBits + 7) / 8
	c.codewordBytes = c.infoBytes + c.parityBytes

	if err := c.buildParityCheckMatrix(); err != nil {
		return nil, err
	}
	if err := c.buildInnerInterleaver(); err != nil {
		return nil, err
	}
	if err := c.buildOuterInterleaver(); err != nil {
		return nil, err
	}
	c.allocateMessages()

	return c, nil
}

func (c *Codec) allocateMessages() {
	c.msg.checkToVar = make([]int16, c.matrix.numEdges)
	c.msg.varToCheck = make([]int16, c.matrix.numEdges)
	c.msg.llrTotal = make([]int16, c.matrix.numBits)
	c.tempCodeword = make([]byte, c.codewordBytes)

	if c.config.UseInnerInterleave {
		c.tempInterleaved = make([]byte, c.codewordBytes)
	}
	if c.config.UseOuterInterleave {
		c.tempOuter = make([]byte, c.infoBytes)
	}
}

// InfoSize returns the information block size in bytes.
func (c *Codec) InfoSize() int { return c.infoBytes }

// CodewordSize returns the full codeword size in bytes (info + parity).
func (c *Codec) CodewordSize() int { return c.codewordBytes }

// ParitySize returns the parity block size in bytes.
func (c *Codec) ParitySize() int { return c.parityBytes }

// HasInterleaver reports whether this codec was built with the inner
// (bit-level) interleaver enabled.
func (c *Codec) HasInterleaver() bool {
	return c.config.UseInnerInterleave && c.inner.forward != nil
}

func getBit(data []byte, bitIdx int) uint8 {
	return (data[bitIdx/8] >> uint(7-bitIdx%8)) & 1
}

func setBit(data []byte, bitIdx int, value uint8) {
	byteIdx := bitIdx / 8
	mask := byte(1) << uint(7-bitIdx%8)
	if value != 0 {
		data[byteIdx] |= mask
	} else {
		data[byteIdx] &^= mask
	}
}

func saturate(val int32) int16 {
	if val > int32(llrMax) {
		return llrMax
	}
	if val < int32(llrMin) {
		return llrMin
	}
	return int16(val)
}
