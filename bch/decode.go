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

package bch

import "github.com/pkg/errors"

// DecodeResult reports how many bit errors Decode actually found and
// corrected.
type DecodeResult struct {
	ErrorsCorrected int
}

// Decode corrects up to CorrectionCapability bit errors in received (the
// low CodewordLength bits of it; any higher bits are masked away) via
// syndrome computation, Berlekamp-Massey, and Chien search. It returns
// the corrected codeword and the number of bits actually flipped; if the
// corrected codeword's syndrome does not re-validate, or Chien search
// finds fewer roots than Berlekamp-Massey predicted, it reports an error
// and returns received unmodified.
func (c *Codec) Decode(received uint32) (uint32, DecodeResult, error) {
	received &= (1 << c.codewordLength) - 1

	syndromes := make([]uint16, 2*int(c.correctionCapability))
	if !c.computeSyndromes(received, syndromes) {
		return received, DecodeResult{}, nil
	}

	errorLocator := make([]uint16, maxPolyDegree)
	errorCount := c.berlekampMassey(syndromes, errorLocator)
	if errorCount > int(c.correctionCapability) {
		return received, DecodeResult{}, errors.New("bch: too many errors for Berlekamp-Massey to resolve")
	}

	errorPositions := make([]uint16, c.correctionCapability)
	found := c.chienSearch(errorLocator, errorCount, errorPositions)
	if found != errorCount {
		return received, DecodeResult{}, errors.New("bch: chien search did not find as many roots as predicted")
	}

	corrected := received
	for i := 0; i < found; i++ {
		corrected ^= 1 << uint(errorPositions[i])
	}

	if c.computeSyndromes(corrected, syndromes) {
		return received, DecodeResult{}, errors.New("bch: corrected codeword failed re-validation")
	}

	return corrected, DecodeResult{ErrorsCorrected: found}, nil
}

// computeSyndromes fills syndromes[0:2t] from the bits set in codeword
// and reports whether any syndrome came out nonzero.
func (c *Codec) computeSyndromes(codeword uint32, syndromes []uint16) bool {
	gf := c.gf
	hasNonzero := false

	for i := range syndromes {
		var s uint16
		for j := 0; j < int(c.codewordLength); j++ {
			if codeword&(1<<uint(j)) != 0 {
				expVal := uint16(((i + 1) * j) % gf.fieldSize)
				s ^= gf.expOf[expVal]
			}
		}
		syndromes[i] = s
		if s != 0 {
			hasNonzero = true
		}
	}
	return hasNonzero
}

// polyEval evaluates poly (degree degree, coefficients in value form) at
// field element x, via log-domain term accumulation.
func (c *Codec) polyEval(poly []uint16, degree int, x uint16) uint16 {
	gf := c.gf
	if x == 0 {
		return poly[0]
	}

	var sum uint16
	logX := int(gf.logOf[x])

	for i := 0; i <= degree; i++ {
		if poly[i] != 0 {
			expVal := (int(gf.logOf[poly[i]]) + (logX*i)%gf.fieldSize) % gf.fieldSize
			sum ^= gf.expOf[expVal]
		}
	}
	return sum
}

// berlekampMassey runs the classical iterative algorithm over syndromes
// and writes the resulting error locator polynomial into errorLocator
// (value form, length maxPolyDegree), returning the locator's degree
// (the number of errors it predicts).
func (c *Codec) berlekampMassey(syndromes, errorLocator []uint16) int {
	gf := c.gf
	fieldSize := gf.fieldSize

	current := make([]uint16, maxPolyDegree)
	prev := make([]uint16, maxPolyDegree)
	temp := make([]uint16, maxPolyDegree)
	current[0] = 1
	prev[0] = 1

	errorCount := 0
	shift := 1
	prevDiscrepancy := uint16(1)

	for iteration := 0; iteration < len(syndromes); iteration++ {
		discrepancy := syndromes[iteration]

		for i := 1; i <= errorCount; i++ {
			if current[i] != 0 && syndromes[iteration-i] != 0 {
				logSum := (int(gf.logOf[current[i]]) + int(gf.logOf[syndromes[iteration-i]])) % fieldSize
				discrepancy ^= gf.expOf[logSum]
			}
		}

		if discrepancy == 0 {
			shift++
			continue
		}

		logMult := (fieldSize - int(gf.logOf[prevDiscrepancy]) + int(gf.logOf[discrepancy])) % fieldSize
		multiplier := gf.expOf[logMult]

		if 2*errorCount <= iteration {
			copy(temp, current)

			for i := 0; i < maxPolyDegree-shift; i++ {
				if prev[i] != 0 {
					logProduct := (int(gf.logOf[prev[i]]) + int(gf.logOf[multiplier])) % fieldSize
					current[i+shift] ^= gf.expOf[logProduct]
				}
			}

			copy(prev, temp)
			errorCount = iteration + 1 - errorCount
			prevDiscrepancy = discrepancy
			shift = 1
		} else {
			for i := 0; i < maxPolyDegree-shift; i++ {
				if prev[i] != 0 {
					logProduct := (int(gf.logOf[prev[i]]) + int(gf.logOf[multiplier])) % fieldSize
					current[i+shift] ^= gf.expOf[logProduct]
				}
			}
			shift++
		}
	}

	copy(errorLocator, current)
	return errorCount
}

// chienSearch finds up to errorCount roots of errorLocator among
// alpha^-0 .. alpha^-(codewordLength-1) and records the corresponding bit
// positions into errorPositions, following bch_chien_search: alpha_inv at
// step i is alpha^(fieldSize-i mod fieldSize), the inverse of alpha^i.
func (c *Codec) chienSearch(errorLocator []uint16, errorCount int, errorPositions []uint16) int {
	gf := c.gf
	found := 0

	for i := 0; i < int(c.codewordLength); i++ {
		alphaInv := gf.expOf[(gf.fieldSize-i)%gf.fieldSize]

		if c.polyEval(errorLocator, errorCount, alphaInv) == 0 {
			errorPositions[found] = uint16(i)
			found++
			if found >= errorCount {
				break
			}
		}
	}
	return found
}
