package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
threshold = 0.1
cutoff = 0.01
workers = 4
preview = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Threshold != 0.1 || cfg.Cutoff != 0.01 || cfg.Workers != 4 || !cfg.Preview {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `threshold = 0.2`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Threshold != 0.2 {
		t.Errorf("threshold = %v, want 0.2", cfg.Threshold)
	}
	if cfg.Cutoff != Default().Cutoff {
		t.Errorf("cutoff = %v, want default %v", cfg.Cutoff, Default().Cutoff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `threshold = [not toml`)
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed TOML expected error")
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	path := writeConfig(t, `threshold = -0.5`)
	if _, err := Load(path); err == nil {
		t.Error("Load with negative threshold expected error")
	}
}

func TestOptionsConversion(t *testing.T) {
	cfg := Config{Threshold: 0.3, Cutoff: 0.002, Workers: 2}
	opts := cfg.Options()
	if opts.Threshold != 0.3 || opts.Cutoff != 0.002 || opts.Workers != 2 {
		t.Errorf("Options() = %+v", opts)
	}
}
