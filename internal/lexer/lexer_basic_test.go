package lexer

import (
	"testing"

	"github.com/quo-lang/quoc/internal/token"
)

func collectTokens(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input, "<test>")
	var toks []token.Token
	for !l.Done() {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	toks := collectTokens(t, "class Foo extends Bar { var x; }")
	want := []token.TokenType{
		token.CLASS, token.IDENTIFIER, token.EXTENDS, token.IDENTIFIER,
		token.L_BRACE, token.VAR, token.IDENTIFIER, token.SEMICOLON, token.R_BRACE,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexerKeywordPayloads(t *testing.T) {
	toks := collectTokens(t, "true false this")
	if toks[0].Type != token.BOOLEAN_CONSTANT || toks[0].BoolValue() != true {
		t.Errorf("true: got %+v", toks[0])
	}
	if toks[1].Type != token.BOOLEAN_CONSTANT || toks[1].BoolValue() != false {
		t.Errorf("false: got %+v", toks[1])
	}
	if toks[2].Type != token.THIS {
		t.Errorf("this: got %+v", toks[2])
	}
}

func TestLexerInteger(t *testing.T) {
	toks := collectTokens(t, "42 007")
	if toks[0].Type != token.INTEGER_CONSTANT || toks[0].IntValue() != 42 {
		t.Errorf("got %+v", toks[0])
	}
	if toks[1].Type != token.INTEGER_CONSTANT || toks[1].IntValue() != 7 {
		t.Errorf("got %+v", toks[1])
	}
}

func TestLexerCommentsAndWhitespaceDiscarded(t *testing.T) {
	toks := collectTokens(t, "x // trailing comment\n  = 10")
	// The comment text and the surrounding whitespace produce no tokens:
	// only x, = and 10 remain.
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	if toks[0].Type != token.IDENTIFIER || toks[0].Literal != "x" {
		t.Fatalf("got %+v", toks[0])
	}
}

// S1 from the testable-properties seed cases.
func TestLexerSeedS1(t *testing.T) {
	toks := collectTokens(t, "x >= 10 // tail")
	want := []struct {
		tt      token.TokenType
		literal string
	}{
		{token.IDENTIFIER, "x"},
		{token.GE, ">="},
		{token.INTEGER_CONSTANT, "10"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.tt || toks[i].Literal != w.literal {
			t.Errorf("token %d: got %s(%q), want %s(%q)", i, toks[i].Type, toks[i].Literal, w.tt, w.literal)
		}
	}
}

func TestLexerLineNumbersMonotonic(t *testing.T) {
	toks := collectTokens(t, "var x;\nvar y;\nvar z;")
	prevLine := 0
	for _, tok := range toks {
		if tok.Pos.Line < prevLine {
			t.Fatalf("line number decreased: %+v after line %d", tok, prevLine)
		}
		prevLine = tok.Pos.Line
	}
	last := toks[len(toks)-1]
	if last.Pos.Line != 3 {
		t.Errorf("last token line = %d, want 3", last.Pos.Line)
	}
}
