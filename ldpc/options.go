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

// Option overrides a field of the Config DefaultConfig would otherwise
// set, for callers building a Codec in one expression instead of
// assembling a Config by hand first. Mirrors klauspost/reedsolomon's
// functional-options constructor shape.
type Option func(*Config)

// WithMatrixType selects Random or QC edge layout.
func WithMatrixType(t MatrixType) Option {
	return func(c *Config) { c.MatrixType = t }
}

// WithColumnWeight overrides the per-information-bit edge count; New
// still clamps it to [3,8].
func WithColumnWeight(weight uint32) Option {
	return func(c *Config) { c.ColumnWeight = weight }
}

// WithInnerInterleave turns on the bit-level block interleaver, with an
// optional explicit depth (0 keeps the auto-derived depth).
func WithInnerInterleave(depth uint32) Option {
	return func(c *Config) {
		c.UseInnerInterleave = true
		c.InterleaveDepth = depth
	}
}

// WithOuterInterleave turns on the byte-level Fisher-Yates interleaver.
func WithOuterInterleave() Option {
	return func(c *Config) { c.UseOuterInterleave = true }
}

// WithLiftingFactor sets the QC circulant block size; it has no effect
// unless combined with WithMatrixType(QC).
func WithLiftingFactor(factor uint32) Option {
	return func(c *Config) { c.LiftingFactor = factor }
}

// WithSeed sets the xoshiro seed shared by matrix construction and both
// interleavers. Both ends of a link must agree on it.
func WithSeed(seed uint32) Option {
	return func(c *Config) { c.Seed = seed }
}

// NewWithOptions builds a Config from DefaultConfig, applies opts, and
// constructs a Codec over blockSize bytes at rate.
func NewWithOptions(blockSize int, rate Rate, opts ...Option) (*Codec, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(blockSize, rate, cfg)
}
