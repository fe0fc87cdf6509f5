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

import (
	"encoding/json"
	"os"

	"github.com/xtaci/gofec/seed"
)

// jsonConfig is the serializable form of Config: it adds an optional
// SeedPassphrase field so a deployment can commit a human-readable
// passphrase to config instead of a raw numeric seed, same trade-off
// kcptun's own Config makes for its pre-shared Key.
type jsonConfig struct {
	Family string    `json:"family"`
	RS     RSConfig  `json:"rs,omitempty"`
	BCH    BCHConfig `json:"bch,omitempty"`
	LDPC   ldpcJSON  `json:"ldpc,omitempty"`
}

type ldpcJSON struct {
	LDPCConfig
	SeedPassphrase string `json:"seed_passphrase,omitempty"`
}

// LoadJSON reads a Config from a JSON file at path, following
// server/config.go's parseJSONConfig shape (os.Open + json.NewDecoder).
// If ldpc.seed_passphrase is present it overrides ldpc.seed via
// seed.FromPassphrase.
func LoadJSON(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var raw jsonConfig
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return Config{}, err
	}

	cfg := Config{
		RS:   raw.RS,
		BCH:  raw.BCH,
		LDPC: raw.LDPC.LDPCConfig,
	}

	switch raw.Family {
	case "bch":
		cfg.Family = BCH
	case "ldpc":
		cfg.Family = LDPC
	default:
		cfg.Family = RS
	}

	if raw.LDPC.SeedPassphrase != "" {
		cfg.LDPC.Seed = seed.FromPassphrase(raw.LDPC.SeedPassphrase)
	}

	return cfg, nil
}
