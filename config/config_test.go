package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFileBasic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "veridom.yaml", "max_depth: 50\nmax_nodes: 500\ntimeout: 2s\nseed: 42\n")

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 50 {
		t.Fatalf("expected max_depth=50, got %#v", cfg.MaxDepth)
	}
	if cfg.MaxNodes == nil || *cfg.MaxNodes != 500 {
		t.Fatalf("expected max_nodes=500, got %#v", cfg.MaxNodes)
	}
	if cfg.Timeout == nil || *cfg.Timeout != "2s" {
		t.Fatalf("expected timeout=2s, got %#v", cfg.Timeout)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("expected seed=42, got %#v", cfg.Seed)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "veridom.yaml", "max_depth: [\n")

	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadLocalPrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "veridom.yaml", "max_depth: 1\n")
	writeTemp(t, dir, ".veridom.yaml", "max_depth: 7\n")

	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 7 {
		t.Fatalf("expected max_depth=7 from .veridom.yaml, got %#v", cfg.MaxDepth)
	}
}

func TestLoadLocalMissingIsEmpty(t *testing.T) {
	cfg, err := LoadLocal(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxDepth != nil || cfg.MaxNodes != nil || cfg.Timeout != nil {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}
