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

// buildParityCheckMatrix clamps ColumnWeight into range and dispatches to
// the random or QC builder, following build_parity_check_matrix.
func (c *Codec) buildParityCheckMatrix() error {
	colWeight := c.config.ColumnWeight
	if colWeight < minColumnWeight {
		colWeight = minColumnWeight
	} else if colWeight > maxColumnWeight {
		colWeight = maxColumnWeight
	}

	switch c.config.MatrixType {
	case QC:
		return c.buildParityCheckMatrixQC(colWeight)
	default:
		return c.buildParityCheckMatrixRandom(colWeight)
	}
}

// buildParityCheckMatrixRandom scatters each information bit's colWeight
// edges uniformly across parity rows, then appends the lower-bidiagonal
// parity structure every row needs (row 0 ties to its own parity column;
// every later row also ties to the previous parity column), following
// build_parity_check_matrix_random's two-pass row_ptr-then-col_idx fill.
func (c *Codec) buildParityCheckMatrixRandom(colWeight uint32) error {
	c.matrix.numBits = uint32(c.codewordBits)
	c.matrix.numChecks = uint32(c.parityBits)

	numInfoEdges := uint32(c.infoBits) * colWeight
	numParityEdges := uint32(c.parityBits)*2 - 1
	c.matrix.numEdges = numInfoEdges + numParityEdges

	c.matrix.rowPtr = make([]uint32, c.matrix.numChecks+1)
	c.matrix.colIdx = make([]uint32, c.matrix.numEdges)

	colCounts := make([]uint32, c.matrix.numChecks)

	rng := xoshiro.New(c.config.Seed)
	for i := 0; i < c.infoBits; i++ {
		for j := uint32(0); j < colWeight; j++ {
			targetRow := rng.Next() % uint32(c.parityBits)
			colCounts[targetRow]++
		}
	}

	for i := range colCounts {
		if i == 0 {
			colCounts[i]++
		} else {
			colCounts[i] += 2
		}
	}

	c.matrix.rowPtr[0] = 0
	for i := uint32(0); i < c.matrix.numChecks; i++ {
		c.matrix.rowPtr[i+1] = c.matrix.rowPtr[i] + colCounts[i]
	}

	for i := range colCounts {
		colCounts[i] = 0
	}

	rng = xoshiro.New(c.config.Seed)
	for i := 0; i < c.infoBits; i++ {
		for j := uint32(0); j < colWeight; j++ {
			targetRow := rng.Next() % uint32(c.parityBits)
			c.matrix.colIdx[c.matrix.rowPtr[targetRow]+colCounts[targetRow]] = uint32(i)
			colCounts[targetRow]++
		}
	}

	for i := 0; i < c.parityBits; i++ {
		parityCol := uint32(c.infoBits + i)

		if i > 0 {
			c.matrix.colIdx[c.matrix.rowPtr[i]+colCounts[i]] = uint32(c.infoBits + i - 1)
			colCounts[i]++
		}

		c.matrix.colIdx[c.matrix.rowPtr[i]+colCounts[i]] = parityCol
		colCounts[i]++
	}

	c.buildColumnView()
	return nil
}

// buildParityCheckMatrixQC is the quasi-cyclic variant: each information
// bit's edges land in blockRow*liftingFactor + ((pos_in_block+shift) mod
// liftingFactor), so within one circulant block every column's nonzero
// row is a fixed cyclic shift of the last, following
// build_parity_check_matrix_qc.
func (c *Codec) buildParityCheckMatrixQC(colWeight uint32) error {
	c.matrix.numBits = uint32(c.codewordBits)
	c.matrix.numChecks = uint32(c.parityBits)

	liftingFactor := c.config.LiftingFactor
	if liftingFactor == 0 {
		liftingFactor = uint32(c.parityBits) / autoLiftingFactorDivisor
		if liftingFactor < minLiftingFactor {
			liftingFactor = minLiftingFactor
		}
		if liftingFactor > maxLiftingFactor {
			liftingFactor = maxLiftingFactor
		}
		for liftingFactor&(liftingFactor-1) != 0 {
			liftingFactor &= liftingFactor - 1
		}
	}

	baseRows := (uint32(c.parityBits) + liftingFactor - 1) / liftingFactor

	numInfoEdges := uint32(c.infoBits) * colWeight
	numParityEdges := uint32(c.parityBits)*2 - 1
	c.matrix.numEdges = numInfoEdges + numParityEdges

	c.matrix.rowPtr = make([]uint32, c.matrix.numChecks+1)
	c.matrix.colIdx = make([]uint32, c.matrix.numEdges)

	colCounts := make([]uint32, c.matrix.numChecks)

	rng := xoshiro.New(c.config.Seed)
	for i := 0; i < c.infoBits; i++ {
		posInBlock := uint32(i) % liftingFactor

		for j := uint32(0); j < colWeight; j++ {
			blockRow := rng.Next() % baseRows
			shift := rng.Next() % liftingFactor

			rowInBlock := (posInBlock + shift) % liftingFactor
			targetRow := blockRow*liftingFactor + rowInBlock

			if targetRow < uint32(c.parityBits) {
				colCounts[targetRow]++
			}
		}
	}

	for i := range colCounts {
		if i == 0 {
			colCounts[i]++
		} else {
			colCounts[i] += 2
		}
	}

	c.matrix.rowPtr[0] = 0
	for i := uint32(0); i < c.matrix.numChecks; i++ {
		c.matrix.rowPtr[i+1] = c.matrix.rowPtr[i] + colCounts[i]
	}

	for i := range colCounts {
		colCounts[i] = 0
	}

	rng = xoshiro.New(c.config.Seed)
	for i := 0; i < c.infoBits; i++ {
		posInBlock := uint32(i) % liftingFactor

		for j := uint32(0); j < colWeight; j++ {
			blockRow := rng.Next() % baseRows
			shift := rng.Next() % liftingFactor

			rowInBlock := (posInBlock + shift) % liftingFactor
			targetRow := blockRow*liftingFactor + rowInBlock

			if targetRow < uint32(c.parityBits) {
				c.matrix.colIdx[c.matrix.rowPtr[targetRow]+colCounts[targetRow]] = uint32(i)
				colCounts[targetRow]++
			}
		}
	}

	for i := 0; i < c.parityBits; i++ {
		parityCol := uint32(c.infoBits + i)

		if i > 0 {
			c.matrix.colIdx[c.matrix.rowPtr[i]+colCounts[i]] = uint32(c.infoBits + i - 1)
			colCounts[i]++
		}

		c.matrix.colIdx[c.matrix.rowPtr[i]+colCounts[i]] = parityCol
		colCounts[i]++
	}

	c.buildColumnView()
	return nil
}

// buildColumnView derives the CSC companion view from the just-built CSR
// matrix: for each row's edges, bump the destination column's running
// count so col_ptr offsets can be assigned, then do a second pass to
// place each edge's (row, original CSR index) pair into its column's
// slot.
func (c *Codec) buildColumnView() {
	colCounts := make([]uint32, c.matrix.numBits)

	for i := uint32(0); i < c.matrix.numChecks; i++ {
		for j := c.matrix.rowPtr[i]; j < c.matrix.rowPtr[i+1]; j++ {
			colCounts[c.matrix.colIdx[j]]++
		}
	}

	c.matrixCols.colPtr = make([]uint32, c.matrix.numBits+1)
	for i := uint32(0); i < c.matrix.numBits; i++ {
		c.matrixCols.colPtr[i+1] = c.matrixCols.colPtr[i] + colCounts[i]
		colCounts[i] = 0
	}

	c.matrixCols.rowIdx = make([]uint32, c.matrix.numEdges)
	c.matrixCols.edgeIdx = make([]uint32, c.matrix.numEdges)

	for i := uint32(0); i < c.matrix.numChecks; i++ {
		for j := c.matrix.rowPtr[i]; j < c.matrix.rowPtr[i+1]; j++ {
			col := c.matrix.colIdx[j]
			idx := c.matrixCols.colPtr[col] + colCounts[col]
			c.matrixCols.rowIdx[idx] = i
			c.matrixCols.edgeIdx[idx] = j
			colCounts[col]++
		}
	}
}
