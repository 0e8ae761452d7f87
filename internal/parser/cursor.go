// Package parser builds a Quo AST from a token stream.
package parser

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/qerrors"
	"github.com/quo-lang/quoc/internal/token"
)

// TokenSource is the minimal surface the parser needs from a token
// producer, satisfied by *lexer.Lexer. Parser tests wrap a real lexer in
// a small lexTokenSource adapter.
type TokenSource interface {
	Next() (token.Token, error)
	Peek(n int) (token.Token, error)
	Done() bool
}

// Parser consumes a TokenSource and builds an *ast.Module.
type Parser struct {
	ts       TokenSource
	filename string
	source   string
}

// New returns a Parser reading from ts. filename and source are used only
// to render diagnostics.
func New(ts TokenSource, filename, source string) *Parser {
	return &Parser{ts: ts, filename: filename, source: source}
}

// ParseModule parses a complete translation unit.
func ParseModule(ts TokenSource, filename, source string) (*ast.Module, error) {
	return New(ts, filename, source).ParseModule()
}

// eofToken is the sentinel cur() returns once the token source is
// exhausted: its zero Type (ILLEGAL) never matches any expected token, so
// callers fall through to their "no match" path uniformly, and expect()
// reports it as an unexpected end of input.
var eofToken = token.Token{}

func (p *Parser) cur() (token.Token, error) {
	if p.ts.Done() {
		return eofToken, nil
	}
	return p.ts.Peek(0)
}

func (p *Parser) peekN(n int) (token.Token, error) {
	return p.ts.Peek(n)
}

func (p *Parser) advance() (token.Token, error) {
	return p.ts.Next()
}

func (p *Parser) curIs(tt token.TokenType) bool {
	tok, err := p.cur()
	if err != nil {
		return false
	}
	return tok.Type == tt
}

// expect consumes the current token, requiring it to have type tt.
func (p *Parser) expect(tt token.TokenType) (token.Token, error) {
	tok, err := p.cur()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != tt {
		reason := "expected " + tt.String()
		if tok == eofToken && p.ts.Done() {
			return token.Token{}, qerrors.NewParseError(tok, "unexpected end of input, "+reason, p.filename, p.source)
		}
		return token.Token{}, qerrors.NewParseError(tok, reason, p.filename, p.source)
	}
	return p.advance()
}

func (p *Parser) errorAt(tok token.Token, reason string) error {
	return qerrors.NewParseError(tok, reason, p.filename, p.source)
}
