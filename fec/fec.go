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

// Package fec is the front door over the three coding families this
// module implements: a single Codec type whose behavior is picked by
// Config.Family, so callers that need to swap RS for LDPC or BCH do not
// have to change anything but the configuration value they build.
package fec

import (
	"github.com/pkg/errors"

	"github.com/xtaci/gofec/bch"
	"github.com/xtaci/gofec/internal/buildinfo"
	"github.com/xtaci/gofec/ldpc"
	"github.com/xtaci/gofec/reedsolomon"
)

// Family selects which coding scheme a Config builds.
type Family int

const (
	RS Family = iota
	LDPC
	BCH
)

func (f Family) String() string {
	switch f {
	case RS:
		return "rs"
	case LDPC:
		return "ldpc"
	case BCH:
		return "bch"
	default:
		return "unknown"
	}
}

// RSConfig holds the Reed-Solomon construction parameters, §3/§6.
type RSConfig struct {
	SymbolSize           int    `json:"symbol-size"`
	PrimitivePolynomial  uint16 `json:"primitive-polynomial"`
	FirstConsecutiveRoot uint16 `json:"first-consecutive-root"`
	PrimitiveElement     uint16 `json:"primitive-element"`
	NumRoots             uint16 `json:"num-roots"`
}

// DefaultRSConfig matches the spec's RS default: m=8, p=0x11D, b=1, s=1, r=32.
func DefaultRSConfig() RSConfig {
	return RSConfig{
		SymbolSize:           8,
		PrimitivePolynomial:  0x11D,
		FirstConsecutiveRoot: 1,
		PrimitiveElement:     1,
		NumRoots:             32,
	}
}

// BCHConfig holds the BCH construction parameters, §3/§6.
type BCHConfig struct {
	SymbolSize           int    `json:"symbol-size"`
	PrimitivePolynomial  uint16 `json:"primitive-polynomial"`
	CorrectionCapability uint8  `json:"correction-capability"`
}

// DefaultBCHConfig matches the spec's BCH default: m=4, p=0x13, t=3.
func DefaultBCHConfig() BCHConfig {
	return BCHConfig{
		SymbolSize:           4,
		PrimitivePolynomial:  0x13,
		CorrectionCapability: 3,
	}
}

// LDPCConfig holds the LDPC construction parameters, §3/§6.
type LDPCConfig struct {
	BlockSize       int             `json:"block-size"`
	Rate            ldpc.Rate       `json:"rate"`
	MatrixType      ldpc.MatrixType `json:"matrix-type"`
	ColumnWeight    uint32          `json:"column-weight"`
	SoftDecode      bool            `json:"soft-decode"`
	UseInner        bool            `json:"use-inner-interleave"`
	UseOuter        bool            `json:"use-outer-interleave"`
	InterleaveDepth uint32          `json:"interleave-depth"`
	LiftingFactor   uint32          `json:"lifting-factor"`
	MaxIterations   uint32          `json:"max-iterations"`
	Seed            uint32          `json:"seed"`
}

// DefaultLDPCConfig matches the spec's LDPC default: random matrix,
// column weight 3, no interleave, max iterations 50.
func DefaultLDPCConfig() LDPCConfig {
	return LDPCConfig{
		BlockSize:     64,
		Rate:          ldpc.Rate1_2,
		MatrixType:    ldpc.Random,
		ColumnWeight:  3,
		MaxIterations: 50,
	}
}

// BurstResistantLDPCConfig matches the spec's burst-resistant LDPC
// default: random matrix, column weight 7, both interleavers on, max
// iterations 100.
func BurstResistantLDPCConfig() LDPCConfig {
	return LDPCConfig{
		BlockSize:     64,
		Rate:          ldpc.Rate1_2,
		MatrixType:    ldpc.Random,
		ColumnWeight:  7,
		UseInner:      true,
		UseOuter:      true,
		MaxIterations: 100,
	}
}

// Config selects a Family and carries that family's parameters; only the
// field matching Family is consulted.
type Config struct {
	Family Family
	RS     RSConfig
	BCH    BCHConfig
	LDPC   LDPCConfig
}

// Codec is a single constructed handle over one of the three coding
// families. It is not safe for concurrent use: like every codec this
// module builds, a Codec owns mutable scratch state that encode and
// decode both reuse.
type Codec struct {
	family Family
	cfg    Config

	rs   *reedsolomon.Codec
	bch  *bch.Codec
	ldpc *ldpc.Codec

	iterationsUsed uint32
}

// New validates cfg and constructs the family-specific state. For RS,
// this also solves the primitive-inverse linear congruence as part of
// reedsolomon.New.
func New(cfg Config) (*Codec, error) {
	c := &Codec{family: cfg.Family, cfg: cfg}

	switch cfg.Family {
	case RS:
		rs, err := reedsolomon.New(cfg.RS.SymbolSize, cfg.RS.PrimitivePolynomial,
			cfg.RS.FirstConsecutiveRoot, cfg.RS.PrimitiveElement, cfg.RS.NumRoots)
		if err != nil {
			return nil, errors.Wrap(err, "fec: rs construction failed")
		}
		c.rs = rs

	case BCH:
		codec, err := bch.New(cfg.BCH.SymbolSize, cfg.BCH.PrimitivePolynomial, cfg.BCH.CorrectionCapability)
		if err != nil {
			return nil, errors.Wrap(err, "fec: bch construction failed")
		}
		c.bch = codec

	case LDPC:
		lcfg := ldpc.Config{
			MatrixType:         cfg.LDPC.MatrixType,
			ColumnWeight:       cfg.LDPC.ColumnWeight,
			UseInnerInterleave: cfg.LDPC.UseInner,
			InterleaveDepth:    cfg.LDPC.InterleaveDepth,
			UseOuterInterleave: cfg.LDPC.UseOuter,
			LiftingFactor:      cfg.LDPC.LiftingFactor,
			Seed:               cfg.LDPC.Seed,
		}
		codec, err := ldpc.New(cfg.LDPC.BlockSize, cfg.LDPC.Rate, lcfg)
		if err != nil {
			return nil, errors.Wrap(err, "fec: ldpc construction failed")
		}
		c.ldpc = codec

	default:
		return nil, errors.Errorf("fec: unknown family %d", cfg.Family)
	}

	return c, nil
}

// Close releases this handle. Every family's state here is plain Go
// memory with no external resources, so Close only exists to give
// callers a symmetric construct/release pair and a point to extend if a
// future family ever needs one.
func (c *Codec) Close() error {
	c.rs = nil
	c.bch = nil
	c.ldpc = nil
	return nil
}

// FECType reports which family this handle was constructed for.
func (c *Codec) FECType() Family { return c.family }

// IterationsUsed reports the belief-propagation iteration count from the
// most recent LDPC Decode call; it is always 0 for RS and BCH handles.
func (c *Codec) IterationsUsed() uint32 { return c.iterationsUsed }

// InfoSize reports the information block size this handle encodes, in
// bytes for LDPC or bits for BCH's packed representation. RS accepts any
// data length up to field_size-r and has no single fixed size, so RS
// handles report -1 here; callers bound RS input length themselves and
// consult reedsolomon.Codec.PaddingLength when they need the relationship
// between data length and virtual padding.
func (c *Codec) InfoSize() int {
	switch c.family {
	case RS:
		return -1
	case BCH:
		return int(c.bch.DataLength())
	case LDPC:
		return c.ldpc.InfoSize()
	default:
		return 0
	}
}

// ParitySize reports the parity size this handle produces, in bytes for
// RS/LDPC or bits for BCH.
func (c *Codec) ParitySize() int {
	switch c.family {
	case RS:
		return int(c.cfg.RS.NumRoots)
	case BCH:
		return int(c.bch.CodewordLength()) - int(c.bch.DataLength())
	case LDPC:
		return c.ldpc.ParitySize()
	default:
		return 0
	}
}

// VersionID reports this module's numeric version identifier.
func VersionID() uint32 { return buildinfo.VersionID }

// BuildTime reports this module's link-time build timestamp, or 0.
func BuildTime() uint32 { return buildinfo.BuildTime() }
