package fec

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadJSONRS(t *testing.T) {
	path := writeTempConfig(t, `{
		"family": "rs",
		"rs": {"symbol-size": 8, "primitive-polynomial": 285, "first-consecutive-root": 1, "primitive-element": 1, "num-roots": 32}
	}`)

	cfg, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if cfg.Family != RS {
		t.Fatalf("Family = %v, want RS", cfg.Family)
	}
	if cfg.RS.NumRoots != 32 || cfg.RS.SymbolSize != 8 {
		t.Fatalf("unexpected RS config: %+v", cfg.RS)
	}

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New from loaded config: %v", err)
	}
	defer c.Close()
}

func TestLoadJSONLDPCWithSeedPassphrase(t *testing.T) {
	path := writeTempConfig(t, `{
		"family": "ldpc",
		"ldpc": {"block-size": 32, "rate": 0, "matrix-type": 0, "column-weight": 3, "max-iterations": 50, "seed_passphrase": "correct-horse-battery-staple"}
	}`)

	cfg, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if cfg.Family != LDPC {
		t.Fatalf("Family = %v, want LDPC", cfg.Family)
	}
	if cfg.LDPC.Seed == 0 {
		t.Fatalf("Seed was not derived from seed_passphrase")
	}

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New from loaded config: %v", err)
	}
	defer c.Close()
}

func TestLoadJSONMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := LoadJSON(missing); err == nil {
		t.Fatalf("LoadJSON expected error for missing file")
	}
}
