package parser

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/lexer"
	"github.com/quo-lang/quoc/internal/token"
)

// lexTokenSource adapts *lexer.Lexer to TokenSource via a resilient
// buffering Peek/Next pair that the parser tests lean on directly,
// grounded on the teacher's parser_test.go style of constructing a
// parser straight from lexer output rather than a canned slice.
type lexTokenSource struct {
	l *lexer.Lexer
}

func newSource(input string) *lexTokenSource {
	return &lexTokenSource{l: lexer.New(input, "<test>")}
}

func (s *lexTokenSource) Next() (token.Token, error) { return s.l.Next() }
func (s *lexTokenSource) Peek(n int) (token.Token, error) { return s.l.Peek(n) }
func (s *lexTokenSource) Done() bool                  { return s.l.Done() }

func parseModule(input string) (*ast.Module, error) {
	src := newSource(input)
	return ParseModule(src, "<test>", input)
}

func parseExprString(input string) (ast.Expr, error) {
	src := newSource(input)
	p := New(src, "<test>", input)
	return p.parseExpr()
}
