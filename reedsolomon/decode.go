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

package reedsolomon

import (
	"github.com/pkg/errors"

	"github.com/xtaci/gofec/erasure"
)

// Result reports the outcome of a successful decode: how many symbol
// errors were actually corrected. A codeword that fails re-validation
// against its syndrome is reported through the error return instead.
type Result struct {
	ErrorsCorrected int
}

// Decode corrects data and parity in place using no outside hints,
// computing the syndrome from the received codeword itself. It returns
// the number of symbols corrected (zero if the codeword already validated
// clean), or an error if the codeword carries more errors than the code
// can resolve.
func (c *Codec) Decode(data, parity []byte) (Result, error) {
	return c.decode(data, parity, nil)
}

// DecodeWithErasures behaves like Decode but treats the positions in
// erasurePositions (indices into data) as already known to be wrong,
// letting Berlekamp-Massey seed its error locator with them before
// searching for any further, undeclared errors. This roughly doubles the
// number of correctable symbols relative to Decode for the same parity
// overhead, since a known erasure costs one syndrome degree instead of two.
func (c *Codec) DecodeWithErasures(data, parity []byte, erasurePositions []uint32) (Result, error) {
	return c.decode(data, parity, erasurePositions)
}

// DecodeWithErasureSet behaves like DecodeWithErasures, taking the
// positions from an erasure.Set instead of a raw slice. Callers that
// already track erasures in a Set across repeated decodes (so its
// backing arrays amortize rather than reallocating per call) use this
// entry point instead of copying out Positions() themselves each time.
func (c *Codec) DecodeWithErasureSet(data, parity []byte, set *erasure.Set) (Result, error) {
	return c.decode(data, parity, set.Positions())
}

// DecodeWithSyndrome skips syndrome computation entirely and corrects data
// and parity using a syndrome the caller already has on hand (in log
// form, length NumRoots, using FieldSize as the "no error" sentinel per
// component). It serves callers that already hold the codeword's
// syndrome and do not want to pay for computing it twice; fec.Codec's
// Decode does not use it.
func (c *Codec) DecodeWithSyndrome(data, parity []byte, syndrome []uint16) (Result, error) {
	if len(syndrome) != int(c.NumRoots) {
		return Result{}, errors.Errorf("reedsolomon: syndrome length %d, want %d", len(syndrome), c.NumRoots)
	}
	copy(c.buf.syndrome, syndrome)

	padding, err := c.PaddingLength(len(data))
	if err != nil {
		return Result{}, err
	}

	hasErrors := false
	for i := 0; i < int(c.NumRoots); i++ {
		if c.buf.syndrome[i] != uint16(c.GF.FieldSize) {
			hasErrors = true
			break
		}
	}
	if !hasErrors {
		return Result{}, nil
	}

	corrected, ok := c.errorCorrection(data, parity, nil, padding)
	if !ok {
		return Result{}, errors.New("reedsolomon: uncorrectable codeword")
	}
	return Result{ErrorsCorrected: corrected}, nil
}

func (c *Codec) decode(data, parity []byte, erasurePositions []uint32) (Result, error) {
	if len(data) == 0 {
		return Result{}, errors.New("reedsolomon: empty data")
	}
	if len(parity) != int(c.NumRoots) {
		return Result{}, errors.Errorf("reedsolomon: parity length %d, want %d", len(parity), c.NumRoots)
	}

	padding, err := c.PaddingLength(len(data))
	if err != nil {
		return Result{}, err
	}

	clean := c.calculateSyndrome(data, parity)
	if clean {
		return Result{}, nil
	}

	corrected, ok := c.errorCorrection(data, parity, erasurePositions, padding)
	if !ok {
		return Result{}, errors.New("reedsolomon: uncorrectable codeword")
	}
	return Result{ErrorsCorrected: corrected}, nil
}

// calculateSyndrome fills c.buf.syndrome (in log form) from data and
// parity and reports whether the codeword is already clean (all-zero
// syndrome), following calculate_syndrome_u8 exactly.
func (c *Codec) calculateSyndrome(data, parity []byte) bool {
	fieldSize := uint16(c.GF.FieldSize)
	syn := c.buf.syndrome[:c.NumRoots]

	for i := range syn {
		syn[i] = uint16(data[0]) & fieldSize
	}

	for j := 1; j < len(data); j++ {
		for i := range syn {
			if syn[i] == 0 {
				syn[i] = uint16(data[j]) & fieldSize
			} else {
				step := (int(c.FirstConsecutiveRoot) + i) * int(c.PrimitiveElement)
				syn[i] = (uint16(data[j]) & fieldSize) ^ c.GF.ExpOf[c.GF.Mod(int(c.GF.LogOf[syn[i]])+step)]
			}
		}
	}

	for j := 0; j < int(c.NumRoots); j++ {
		for i := range syn {
			if syn[i] == 0 {
				syn[i] = uint16(parity[j]) & fieldSize
			} else {
				step := (int(c.FirstConsecutiveRoot) + i) * int(c.PrimitiveElement)
				syn[i] = (uint16(parity[j]) & fieldSize) ^ c.GF.ExpOf[c.GF.Mod(int(c.GF.LogOf[syn[i]])+step)]
			}
		}
	}

	var flag uint16
	for i := range syn {
		flag |= syn[i]
		syn[i] = c.GF.LogOf[syn[i]]
	}
	return flag == 0
}

// errorCorrection runs Berlekamp-Massey, Chien search and Forney's
// algorithm against c.buf.syndrome (already populated in log form),
// optionally seeded with declared erasure positions, and writes any
// corrections back into data/parity. It reports the number of symbols
// corrected and whether the corrected codeword validates.
//
// Unlike the library this is grounded on, the final write-back always
// derives the symbol position from the Chien-search root (errorLocations)
// rather than replaying the caller's declared erasure list: a codeword
// can carry more total errors than were declared as erasures, and the
// declared-erasure list has no slot for the extra ones.
func (c *Codec) errorCorrection(data, parity []byte, erasurePositions []uint32, paddingLength int) (int, bool) {
	fieldSize := uint16(c.GF.FieldSize)
	numRoots := int(c.NumRoots)
	erasureCount := len(erasurePositions)

	el := c.buf.errorLocator
	for i := range el {
		el[i] = 0
	}
	el[0] = 1

	if erasureCount > 0 {
		first := int(c.PrimitiveElement) * (c.GF.FieldSize - 1 - (int(erasurePositions[0]) + paddingLength))
		el[1] = c.GF.ExpOf[c.GF.Mod(first)]
		for i := 1; i < erasureCount; i++ {
			polyTerm := c.GF.Mod(int(c.PrimitiveElement) * (c.GF.FieldSize - 1 - (int(erasurePositions[i]) + paddingLength)))
			for j := i + 1; j > 0; j-- {
				temp := c.GF.LogOf[el[j-1]]
				if temp != fieldSize {
					el[j] ^= c.GF.ExpOf[c.GF.Mod(polyTerm+int(temp))]
				}
			}
		}
	}

	coeff := c.buf.coefficients
	for i := 0; i <= numRoots; i++ {
		coeff[i] = c.GF.LogOf[el[i]]
	}

	poly := c.buf.polynomial
	syn := c.buf.syndrome

	iterationCount := erasureCount
	polynomialDegree := erasureCount
	for {
		iterationCount++
		if iterationCount > numRoots {
			break
		}

		var discrepancy uint16
		for i := 0; i < iterationCount; i++ {
			if el[i] != 0 && syn[iterationCount-i-1] != fieldSize {
				discrepancy ^= c.GF.ExpOf[c.GF.Mod(int(c.GF.LogOf[el[i]])+int(syn[iterationCount-i-1]))]
			}
		}
		discLog := c.GF.LogOf[discrepancy]

		if discLog == fieldSize {
			copy(coeff[1:numRoots+1], coeff[0:numRoots])
			coeff[0] = fieldSize
		} else {
			poly[0] = el[0]
			for i := 0; i < numRoots; i++ {
				if coeff[i] != fieldSize {
					poly[i+1] = el[i+1] ^ c.GF.ExpOf[c.GF.Mod(int(discLog)+int(coeff[i]))]
				} else {
					poly[i+1] = el[i+1]
				}
			}

			if 2*polynomialDegree <= iterationCount+erasureCount-1 {
				polynomialDegree = iterationCount + erasureCount - polynomialDegree
				for i := 0; i <= numRoots; i++ {
					if el[i] == 0 {
						coeff[i] = fieldSize
					} else {
						coeff[i] = uint16(c.GF.Mod(int(c.GF.LogOf[el[i]]) - int(discLog) + c.GF.FieldSize))
					}
				}
			} else {
				copy(coeff[1:numRoots+1], coeff[0:numRoots])
				coeff[0] = fieldSize
			}

			copy(el[:numRoots+1], poly[:numRoots+1])
		}
	}

	errorLocatorDegree := 0
	for i := 0; i <= numRoots; i++ {
		el[i] = c.GF.LogOf[el[i]]
		if el[i] != fieldSize {
			errorLocatorDegree = i
		}
	}
	if errorLocatorDegree == 0 {
		return 0, false
	}

	// Chien search
	reg := c.buf.registerCoefficients
	copy(reg[1:numRoots+1], el[1:numRoots+1])

	errorRoots := c.buf.errorRoots
	errorLocations := c.buf.errorLocations
	errorCount := 0

	k := int(c.primitiveInverse) - 1
	for i := 1; i <= c.GF.FieldSize; i++ {
		var polyEval uint16 = 1
		for j := errorLocatorDegree; j > 0; j-- {
			if reg[j] != fieldSize {
				reg[j] = uint16(c.GF.Mod(int(reg[j]) + j))
				polyEval ^= c.GF.ExpOf[reg[j]]
			}
		}

		if polyEval == 0 {
			if k < paddingLength {
				return 0, false
			}
			errorRoots[errorCount] = uint16(i)
			errorLocations[errorCount] = uint16(k)
			errorCount++
			if errorCount == errorLocatorDegree {
				break
			}
		}

		k = c.GF.Mod(k + int(c.primitiveInverse))
	}

	if errorLocatorDegree != errorCount {
		return 0, false
	}

	// Forney
	errorEvaluatorDegree := errorLocatorDegree - 1
	ee := c.buf.errorEvaluator
	for i := 0; i <= errorEvaluatorDegree; i++ {
		var temp uint16
		for j := i; j >= 0; j-- {
			if syn[i-j] != fieldSize && el[j] != fieldSize {
				temp ^= c.GF.ExpOf[c.GF.Mod(int(syn[i-j])+int(el[j]))]
			}
		}
		ee[i] = c.GF.LogOf[temp]
	}

	errorsCorrected := 0
	for j := errorCount - 1; j >= 0; j-- {
		var numerator uint16
		for i := errorEvaluatorDegree; i >= 0; i-- {
			if ee[i] != fieldSize {
				numerator ^= c.GF.ExpOf[c.GF.Mod(int(ee[i])+i*int(errorRoots[j]))]
			}
		}

		if numerator == 0 {
			coeff[j] = 0
			continue
		}

		secondNumerator := c.GF.ExpOf[c.GF.Mod(int(errorRoots[j])*(int(c.FirstConsecutiveRoot)-1)+c.GF.FieldSize)]

		limit := errorLocatorDegree
		if numRoots-1 < limit {
			limit = numRoots - 1
		}
		limit &^= 1

		var denominator uint16
		for i := limit; i >= 0; i -= 2 {
			if el[i+1] != fieldSize {
				denominator ^= c.GF.ExpOf[c.GF.Mod(int(el[i+1])+i*int(errorRoots[j]))]
			}
		}

		coeff[j] = c.GF.ExpOf[c.GF.Mod(int(c.GF.LogOf[numerator])+int(c.GF.LogOf[secondNumerator])+c.GF.FieldSize-int(c.GF.LogOf[denominator]))]
		errorsCorrected++
	}

	// Validate
	for i := 0; i < numRoots; i++ {
		var temp uint16
		for j := 0; j < errorCount; j++ {
			if coeff[j] == 0 {
				continue
			}
			step := (int(c.FirstConsecutiveRoot)+i)*int(c.PrimitiveElement)*(c.GF.FieldSize-int(errorLocations[j])-1)
			temp ^= c.GF.ExpOf[c.GF.Mod(int(c.GF.LogOf[coeff[j]])+step)]
		}
		if temp != c.GF.ExpOf[syn[i]] {
			return 0, false
		}
	}

	// Correction
	for i := 0; i < errorCount; i++ {
		pos := int(errorLocations[i])
		if pos < c.GF.FieldSize-numRoots {
			data[pos-paddingLength] ^= byte(coeff[i])
		} else {
			parity[pos-paddingLength-len(data)] ^= byte(coeff[i])
		}
	}

	return errorsCorrected, true
}
