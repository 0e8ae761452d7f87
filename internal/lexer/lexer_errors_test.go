package lexer

import (
	"testing"

	"github.com/quo-lang/quoc/internal/qerrors"
)

// S2 from the testable-properties seed cases.
func TestLexerSeedS2(t *testing.T) {
	l := New("你", "<test>")
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected UnknownCharacterError")
	}
	uce, ok := err.(*qerrors.UnknownCharacterError)
	if !ok {
		t.Fatalf("got error of type %T, want *qerrors.UnknownCharacterError", err)
	}
	if uce.Char != '你' {
		t.Errorf("Char = %q, want %q", uce.Char, '你')
	}
}

func TestLexerIllegalBareBang(t *testing.T) {
	l := New("!", "<test>")
	if _, err := l.Next(); err == nil {
		t.Fatal("expected an error for a bare '!' (only '!=' is in the grammar)")
	}
}

func TestLexerStopsAtFirstError(t *testing.T) {
	l := New("x 你 y", "<test>")
	if _, err := l.Next(); err != nil {
		t.Fatalf("unexpected error tokenizing 'x': %v", err)
	}
	if _, err := l.Next(); err == nil {
		t.Fatal("expected an error on the illegal rune")
	}
}
