package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-quoc.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("got %#v, want zero Config", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quoc.yaml")
	content := "cxx_path: /usr/bin/clang++\ninclude_dirs:\n  - /opt/quo/include\nout_dir: /tmp/quo-build\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CXXPath != "/usr/bin/clang++" {
		t.Errorf("CXXPath = %q", cfg.CXXPath)
	}
	if len(cfg.IncludeDirs) != 1 || cfg.IncludeDirs[0] != "/opt/quo/include" {
		t.Errorf("IncludeDirs = %v", cfg.IncludeDirs)
	}
	if cfg.OutDir != "/tmp/quo-build" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}
}

func TestResolvedCXXPathEnvOverridesConfig(t *testing.T) {
	t.Setenv("CXX", "/usr/bin/g++")
	cfg := Config{CXXPath: "/usr/bin/clang++"}
	if got := cfg.ResolvedCXXPath(); got != "/usr/bin/g++" {
		t.Errorf("ResolvedCXXPath() = %q, want CXX override", got)
	}
}

func TestResolvedCXXPathFallsBackToConfig(t *testing.T) {
	t.Setenv("CXX", "")
	cfg := Config{CXXPath: "/usr/bin/clang++"}
	if got := cfg.ResolvedCXXPath(); got != "/usr/bin/clang++" {
		t.Errorf("ResolvedCXXPath() = %q, want config value", got)
	}
}
