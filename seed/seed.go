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

// Package seed derives a deterministic 32-bit PRNG seed from a caller
// passphrase, so an ldpc.Config.Seed can be specified as a human-typed
// string instead of a raw number while both ends of a link still agree
// on the exact same parity-check matrix and interleaver permutations.
package seed

import (
	"crypto/sha1"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

// Salt is used for every PBKDF2 key expansion this package performs.
// Changing it changes every derived seed, same as rotating kcp-go's own
// SALT would change every derived session key.
const Salt = "gofec"

// Iterations is the PBKDF2 round count.
const Iterations = 4096

// FromPassphrase derives a 32-bit seed from pass via
// PBKDF2-HMAC-SHA1(pass, Salt, Iterations, 4 bytes), truncated to the
// first 4 output bytes interpreted as a big-endian uint32. The same
// passphrase always yields the same seed.
func FromPassphrase(pass string) uint32 {
	key := pbkdf2.Key([]byte(pass), []byte(Salt), Iterations, 4, sha1.New)
	return binary.BigEndian.Uint32(key)
}
