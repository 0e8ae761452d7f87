package token

import "fmt"

// Position identifies a location in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based byte offset
}

// String renders pos as "line:column".
func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// IsValid reports whether pos names a real location.
func (pos Position) IsValid() bool {
	return pos.Line >= 1
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type    TokenType
	Literal string // the raw source text of the token
	Pos     Position

	// Payload carries the decoded value for literal-bearing tokens:
	// int64 for INTEGER_CONSTANT, string for STRING_CONSTANT (already
	// unescaped and NFC-normalized), bool for BOOLEAN_CONSTANT. nil
	// for every other token type.
	Payload any
}

// IntValue returns the decoded integer payload of an INTEGER_CONSTANT token.
func (t Token) IntValue() int64 {
	v, _ := t.Payload.(int64)
	return v
}

// BoolValue returns the decoded payload of a BOOLEAN_CONSTANT token.
func (t Token) BoolValue() bool {
	v, _ := t.Payload.(bool)
	return v
}

// StringValue returns the decoded payload of a STRING_CONSTANT token.
func (t Token) StringValue() string {
	v, _ := t.Payload.(string)
	return v
}

// String renders the token for debug output, matching the shape the
// teacher's lex subcommand prints.
func (t Token) String() string {
	if t.Literal == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}
