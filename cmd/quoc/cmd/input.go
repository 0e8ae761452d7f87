package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/quo-lang/quoc/internal/lexer"
	"github.com/quo-lang/quoc/internal/token"
)

var evalExpr string

// readInput resolves a command's source text: -e inline code, a file
// argument, or stdin, matching §6.1's "debug entry point" contract.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

// lexTokenSource adapts *lexer.Lexer to parser.TokenSource.
type lexTokenSource struct{ l *lexer.Lexer }

func newLexTokenSource(input, filename string) *lexTokenSource {
	return &lexTokenSource{l: lexer.New(input, filename)}
}

func (s *lexTokenSource) Next() (token.Token, error)      { return s.l.Next() }
func (s *lexTokenSource) Peek(n int) (token.Token, error) { return s.l.Peek(n) }
func (s *lexTokenSource) Done() bool                      { return s.l.Done() }
