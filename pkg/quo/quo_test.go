package quo

import (
	"strings"
	"testing"

	"github.com/quo-lang/quoc/internal/qerrors"
)

func TestCompileEndToEnd(t *testing.T) {
	out, err := Compile("fn main() Int { return 0; }", "<test>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Int main()") {
		t.Errorf("missing expected signature, got:\n%s", out)
	}
}

func TestParseReturnsParseErrorOnBadInput(t *testing.T) {
	_, err := Parse("fn (", "<test>")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*qerrors.ParseError); !ok {
		t.Fatalf("got error of type %T, want *qerrors.ParseError", err)
	}
}
