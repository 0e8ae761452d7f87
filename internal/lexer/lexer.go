// Package lexer tokenizes Quo source text.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/quo-lang/quoc/internal/qerrors"
	"github.com/quo-lang/quoc/internal/token"
	"golang.org/x/text/unicode/norm"
)

// Lexer scans a single source string into a stream of tokens, one at a
// time. It holds no accumulated error list: the first illegal character
// is fatal, matching the "no recovery" contract.
type Lexer struct {
	input    string
	filename string

	position     int // byte offset of ch
	readPosition int // byte offset of the next rune
	ch           rune
	line         int
	column       int

	tokenBuffer []token.Token // lazily filled lookahead buffer
}

// New returns a Lexer over input. filename is used only for diagnostics.
func New(input string, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
		column:   0,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += width
	l.ch = r

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

// Next returns the next token in the stream, or an error the first time an
// illegal character is encountered. There is no EOF token: callers use
// Done to check for end of input before calling Next; calling Next at end
// of input returns an UnknownCharacterError whose Char is 0.
func (l *Lexer) Next() (token.Token, error) {
	if len(l.tokenBuffer) > 0 {
		tok := l.tokenBuffer[0]
		l.tokenBuffer = l.tokenBuffer[1:]
		return tok, nil
	}
	return l.scan()
}

// Done reports whether the lexer has no more tokens to produce.
func (l *Lexer) Done() bool {
	if len(l.tokenBuffer) > 0 {
		return false
	}
	l.skipIgnored()
	return l.atEnd()
}

// Peek returns the token n positions ahead (0 = the next token to be
// returned by Next) without consuming it, buffering as needed.
func (l *Lexer) Peek(n int) (token.Token, error) {
	for len(l.tokenBuffer) <= n {
		tok, err := l.scan()
		if err != nil {
			return token.Token{}, err
		}
		l.tokenBuffer = append(l.tokenBuffer, tok)
	}
	return l.tokenBuffer[n], nil
}

func (l *Lexer) skipIgnored() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
		default:
			return
		}
	}
}

// scan produces the single next token, skipping whitespace and comments
// first. It is the core of the longest-match lexical table in §4.1.
func (l *Lexer) scan() (token.Token, error) {
	l.skipIgnored()

	pos := l.currentPos()

	if l.atEnd() {
		return token.Token{}, qerrors.NewUnknownCharacterError(pos, 0, l.filename, l.input)
	}

	switch {
	case isIdentStart(l.ch):
		return l.scanIdentifier(pos), nil
	case isDigit(l.ch):
		return l.scanInteger(pos), nil
	case l.ch == '\'':
		return l.scanString(pos)
	}

	switch l.ch {
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.GE, ">=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.GT, ">", pos), nil
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.LE, "<=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.LT, "<", pos), nil
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.EQ, "==", pos), nil
		}
		l.readChar()
		return l.makeTok(token.ASSIGN, "=", pos), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.NE, "!=", pos), nil
		}
		return token.Token{}, qerrors.NewUnknownCharacterError(pos, l.ch, l.filename, l.input)
	case '+':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.ADD_ASSIGN, "+=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.ADD, "+", pos), nil
	case '-':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.SUB_ASSIGN, "-=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.SUB, "-", pos), nil
	case '*':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.MUL_ASSIGN, "*=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.MUL, "*", pos), nil
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeTok(token.DIV_ASSIGN, "/=", pos), nil
		}
		l.readChar()
		return l.makeTok(token.DIV, "/", pos), nil
	case '%':
		l.readChar()
		return l.makeTok(token.MOD, "%", pos), nil
	case '&':
		l.readChar()
		return l.makeTok(token.WEAK_REF, "&", pos), nil
	case '~':
		l.readChar()
		return l.makeTok(token.TILDE, "~", pos), nil
	case '(':
		l.readChar()
		return l.makeTok(token.L_PAREN, "(", pos), nil
	case ')':
		l.readChar()
		return l.makeTok(token.R_PAREN, ")", pos), nil
	case '[':
		l.readChar()
		return l.makeTok(token.L_BRACKET, "[", pos), nil
	case ']':
		l.readChar()
		return l.makeTok(token.R_BRACKET, "]", pos), nil
	case '{':
		l.readChar()
		return l.makeTok(token.L_BRACE, "{", pos), nil
	case '}':
		l.readChar()
		return l.makeTok(token.R_BRACE, "}", pos), nil
	case '.':
		l.readChar()
		return l.makeTok(token.DOT, ".", pos), nil
	case ',':
		l.readChar()
		return l.makeTok(token.COMMA, ",", pos), nil
	case ';':
		l.readChar()
		return l.makeTok(token.SEMICOLON, ";", pos), nil
	}

	offending := l.ch
	return token.Token{}, qerrors.NewUnknownCharacterError(pos, offending, l.filename, l.input)
}

func (l *Lexer) makeTok(tt token.TokenType, literal string, pos token.Position) token.Token {
	return token.Token{Type: tt, Literal: literal, Pos: pos}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) && ch <= unicode.MaxASCII
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) scanIdentifier(pos token.Position) token.Token {
	start := l.position
	for isIdentCont(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]

	switch lexeme {
	case "true":
		return token.Token{Type: token.BOOLEAN_CONSTANT, Literal: lexeme, Pos: pos, Payload: true}
	case "false":
		return token.Token{Type: token.BOOLEAN_CONSTANT, Literal: lexeme, Pos: pos, Payload: false}
	case "this":
		return token.Token{Type: token.THIS, Literal: lexeme, Pos: pos}
	}

	tt := token.LookupIdentifier(lexeme)
	return token.Token{Type: tt, Literal: lexeme, Pos: pos}
}

func (l *Lexer) scanInteger(pos token.Position) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]

	var value int64
	for _, r := range lexeme {
		value = value*10 + int64(r-'0')
	}
	return token.Token{Type: token.INTEGER_CONSTANT, Literal: lexeme, Pos: pos, Payload: value}
}

// scanString consumes a '...'  literal, unescaping the only recognized
// escape (\') and NFC-normalizing the result.
func (l *Lexer) scanString(pos token.Position) (token.Token, error) {
	start := l.position
	l.readChar() // consume opening quote

	var raw []rune
	for {
		if l.atEnd() {
			return token.Token{}, qerrors.NewUnknownCharacterError(l.currentPos(), 0, l.filename, l.input)
		}
		if l.ch == '\\' && l.peekChar() == '\'' {
			raw = append(raw, '\'')
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '\'' {
			l.readChar() // consume closing quote
			break
		}
		raw = append(raw, l.ch)
		l.readChar()
	}

	lexeme := l.input[start:l.position]
	payload := norm.NFC.String(string(raw))
	return token.Token{Type: token.STRING_CONSTANT, Literal: lexeme, Pos: pos, Payload: payload}, nil
}
