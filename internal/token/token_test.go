package token

import "testing"

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  Position
		want string
	}{
		{Position{Line: 1, Column: 1, Offset: 0}, "1:1"},
		{Position{Line: 12, Column: 4, Offset: 99}, "12:4"},
	}
	for _, c := range cases {
		if got := c.pos.String(); got != c.want {
			t.Errorf("Position{%d,%d,%d}.String() = %q, want %q", c.pos.Line, c.pos.Column, c.pos.Offset, got, c.want)
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{Line: 1, Column: 1}, true},
		{Position{Line: 0, Column: 1}, false},
		{Position{Line: -1, Column: 1}, false},
	}
	for _, c := range cases {
		if got := c.pos.IsValid(); got != c.want {
			t.Errorf("Position{Line:%d}.IsValid() = %v, want %v", c.pos.Line, got, c.want)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	cases := []struct {
		tt   TokenType
		want string
	}{
		{IDENTIFIER, "IDENTIFIER"},
		{CLASS, "CLASS"},
		{WEAK_REF, "WEAK_REF"},
		{TILDE, "TILDE"},
		{ILLEGAL, "ILLEGAL"},
	}
	for _, c := range cases {
		if got := c.tt.String(); got != c.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(c.tt), got, c.want)
		}
	}
}

func TestLookupIdentifier(t *testing.T) {
	cases := []struct {
		lexeme string
		want   TokenType
	}{
		{"class", CLASS},
		{"function", FUNCTION},
		{"fn", FUNCTION},
		{"return", RETURN},
		{"foo", IDENTIFIER},
		{"Class", IDENTIFIER}, // Quo is case-sensitive, unlike the DWScript teacher
	}
	for _, c := range cases {
		if got := LookupIdentifier(c.lexeme); got != c.want {
			t.Errorf("LookupIdentifier(%q) = %s, want %s", c.lexeme, got, c.want)
		}
	}
}

func TestTokenAccessors(t *testing.T) {
	intTok := Token{Type: INTEGER_CONSTANT, Literal: "42", Payload: int64(42)}
	if intTok.IntValue() != 42 {
		t.Errorf("IntValue() = %d, want 42", intTok.IntValue())
	}

	strTok := Token{Type: STRING_CONSTANT, Literal: `'hi'`, Payload: "hi"}
	if strTok.StringValue() != "hi" {
		t.Errorf("StringValue() = %q, want %q", strTok.StringValue(), "hi")
	}

	boolTok := Token{Type: BOOLEAN_CONSTANT, Literal: "true", Payload: true}
	if !boolTok.BoolValue() {
		t.Errorf("BoolValue() = false, want true")
	}
}
