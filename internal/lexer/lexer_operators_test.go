package lexer

import (
	"testing"

	"github.com/quo-lang/quoc/internal/token"
)

func TestLexerComparisonOperators(t *testing.T) {
	cases := []struct {
		input string
		want  token.TokenType
	}{
		{">=", token.GE},
		{"<=", token.LE},
		{"==", token.EQ},
		{"!=", token.NE},
		{">", token.GT},
		{"<", token.LT},
	}
	for _, c := range cases {
		toks := collectTokens(t, c.input)
		if len(toks) != 1 || toks[0].Type != c.want {
			t.Errorf("input %q: got %v, want single %s", c.input, toks, c.want)
		}
	}
}

func TestLexerCompoundAssignOperators(t *testing.T) {
	cases := []struct {
		input string
		want  token.TokenType
	}{
		{"+=", token.ADD_ASSIGN},
		{"-=", token.SUB_ASSIGN},
		{"*=", token.MUL_ASSIGN},
		{"/=", token.DIV_ASSIGN},
		{"=", token.ASSIGN},
	}
	for _, c := range cases {
		toks := collectTokens(t, c.input)
		if len(toks) != 1 || toks[0].Type != c.want {
			t.Errorf("input %q: got %v, want single %s", c.input, toks, c.want)
		}
	}
}

func TestLexerArithmeticOperators(t *testing.T) {
	toks := collectTokens(t, "+ - * % /")
	want := []token.TokenType{token.ADD, token.SUB, token.MUL, token.MOD, token.DIV}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexerDivVsComment(t *testing.T) {
	toks := collectTokens(t, "a / b")
	if len(toks) != 3 || toks[1].Type != token.DIV {
		t.Fatalf("got %v", toks)
	}
	toks = collectTokens(t, "a // b\nc")
	if len(toks) != 2 || toks[0].Literal != "a" || toks[1].Literal != "c" {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerSigilsAndPunctuation(t *testing.T) {
	toks := collectTokens(t, "&x ~y (a)[b]{c}.d,e;")
	want := []token.TokenType{
		token.WEAK_REF, token.IDENTIFIER,
		token.TILDE, token.IDENTIFIER,
		token.L_PAREN, token.IDENTIFIER, token.R_PAREN,
		token.L_BRACKET, token.IDENTIFIER, token.R_BRACKET,
		token.L_BRACE, token.IDENTIFIER, token.R_BRACE,
		token.DOT, token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.SEMICOLON,
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
