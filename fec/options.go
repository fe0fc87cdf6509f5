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

package fec

import "github.com/xtaci/gofec/seed"

// Option overrides a field of the Config a family constructor would
// otherwise default to, for callers who want to build a handle in one
// expression instead of assembling a Config by hand first.
type Option func(*Config)

// WithRS selects the RS family and its parameters.
func WithRS(cfg RSConfig) Option {
	return func(c *Config) {
		c.Family = RS
		c.RS = cfg
	}
}

// WithBCH selects the BCH family and its parameters.
func WithBCH(cfg BCHConfig) Option {
	return func(c *Config) {
		c.Family = BCH
		c.BCH = cfg
	}
}

// WithLDPC selects the LDPC family and its parameters.
func WithLDPC(cfg LDPCConfig) Option {
	return func(c *Config) {
		c.Family = LDPC
		c.LDPC = cfg
	}
}

// WithSeedPassphrase derives cfg.LDPC.Seed from pass via seed.FromPassphrase.
// It only has an effect when combined with WithLDPC (or when the Config
// being built already selects the LDPC family), and should be applied
// after WithLDPC so it isn't overwritten by the zero Seed in cfg.
func WithSeedPassphrase(pass string) Option {
	return func(c *Config) {
		c.LDPC.Seed = seed.FromPassphrase(pass)
	}
}

// NewWithOptions builds a Config from DefaultRSConfig (overridden by
// whichever With* options are supplied) and constructs a Codec from it,
// mirroring klauspost/reedsolomon's functional-options constructor shape
// while still producing the same Config type New accepts directly.
func NewWithOptions(opts ...Option) (*Codec, error) {
	cfg := Config{Family: RS, RS: DefaultRSConfig()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}
