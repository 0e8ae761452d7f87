package driver

import (
	"testing"

	"github.com/quo-lang/quoc/internal/config"
	"github.com/quo-lang/quoc/internal/qerrors"
)

func TestCompilerPathEnvOverride(t *testing.T) {
	t.Setenv("CXX", "/usr/bin/my-cxx")
	d := New(config.Config{})
	got, err := d.CompilerPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/usr/bin/my-cxx" {
		t.Errorf("CompilerPath() = %q, want CXX override", got)
	}
}

func TestCompilerPathConfigFallback(t *testing.T) {
	t.Setenv("CXX", "")
	d := New(config.Config{CXXPath: "/usr/bin/clang++"})
	got, err := d.CompilerPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/usr/bin/clang++" {
		t.Errorf("CompilerPath() = %q, want config value", got)
	}
}

func TestCompilerPathMissingReportsExternalToolError(t *testing.T) {
	t.Setenv("CXX", "")
	t.Setenv("PATH", "")
	d := New(config.Config{})
	_, err := d.CompilerPath()
	if err == nil {
		t.Fatal("expected an error when no compiler can be found")
	}
	toolErr, ok := err.(*qerrors.ExternalToolError)
	if !ok || !toolErr.Missing {
		t.Fatalf("err = %#v, want ExternalToolError{Missing: true}", err)
	}
}
