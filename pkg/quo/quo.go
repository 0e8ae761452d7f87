// Package quo is the small public facade over the Quo front end,
// mirroring the teacher's pkg/dwscript facade for embedding this
// compiler's stages in other Go programs.
package quo

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/cpptrans"
	"github.com/quo-lang/quoc/internal/lexer"
	"github.com/quo-lang/quoc/internal/parser"
	"github.com/quo-lang/quoc/internal/token"
)

type lexerTokenSource struct{ l *lexer.Lexer }

func (s *lexerTokenSource) Next() (token.Token, error)      { return s.l.Next() }
func (s *lexerTokenSource) Peek(n int) (token.Token, error) { return s.l.Peek(n) }
func (s *lexerTokenSource) Done() bool                      { return s.l.Done() }

// Parse lexes and parses source into an AST, naming filename in any
// diagnostic.
func Parse(source, filename string) (*ast.Module, error) {
	ts := &lexerTokenSource{l: lexer.New(source, filename)}
	return parser.ParseModule(ts, filename, source)
}

// Translate lowers a parsed module to C++ source text.
func Translate(m *ast.Module) (string, error) {
	return cpptrans.New().Translate(m)
}

// Compile parses and translates source in one step, returning the
// generated C++ source text.
func Compile(source, filename string) (string, error) {
	m, err := Parse(source, filename)
	if err != nil {
		return "", err
	}
	return Translate(m)
}
