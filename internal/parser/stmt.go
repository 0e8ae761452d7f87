package parser

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/token"
)

// parseStmts parses statements until the current token is end.
func (p *Parser) parseStmts(end token.TokenType) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.curIs(end) {
		ss, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, ss...)
	}
	return stmts, nil
}

// parseStmt parses one source statement, which may expand to more than
// one Stmt node (a "var" set can declare several variables at once).
func (p *Parser) parseStmt() ([]ast.Stmt, error) {
	tok, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.IF:
		s, err := p.parseCondStmt()
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{s}, nil
	case token.WHILE:
		s, err := p.parseCondLoopStmt()
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{s}, nil
	case token.RETURN:
		p.advance()
		if p.curIs(token.SEMICOLON) {
			p.advance()
			return []ast.Stmt{&ast.ReturnStmt{P: tok.Pos}}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.ReturnStmt{P: tok.Pos, Expr: e}}, nil
	case token.BREAK:
		p.advance()
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.BreakStmt{P: tok.Pos}}, nil
	case token.CONTINUE:
		p.advance()
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.ContinueStmt{P: tok.Pos}}, nil
	case token.VAR:
		decls, err := p.parseVarStmt()
		if err != nil {
			return nil, err
		}
		return toStmts(decls), nil
	default:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.ExprStmt{P: tok.Pos, Expr: e}}, nil
	}
}

// parseCondStmt parses "if expr { stmts } [else ...]". The dangling-else
// chain nests: "else if" becomes the sole statement of the outer
// CondStmt's false branch, recursively.
func (p *Parser) parseCondStmt() (*ast.CondStmt, error) {
	tok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.L_BRACE); err != nil {
		return nil, err
	}
	trueStmts, err := p.parseStmts(token.R_BRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.R_BRACE); err != nil {
		return nil, err
	}

	var falseStmts []ast.Stmt
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			nested, err := p.parseCondStmt()
			if err != nil {
				return nil, err
			}
			falseStmts = []ast.Stmt{nested}
		} else {
			if _, err := p.expect(token.L_BRACE); err != nil {
				return nil, err
			}
			falseStmts, err = p.parseStmts(token.R_BRACE)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.R_BRACE); err != nil {
				return nil, err
			}
		}
	}

	return &ast.CondStmt{P: tok.Pos, Cond: cond, TrueStmts: trueStmts, FalseStmts: falseStmts}, nil
}

func (p *Parser) parseCondLoopStmt() (*ast.CondLoopStmt, error) {
	tok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.L_BRACE); err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(token.R_BRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.R_BRACE); err != nil {
		return nil, err
	}
	return &ast.CondLoopStmt{P: tok.Pos, Cond: cond, Stmts: stmts}, nil
}

// parseVarStmt parses a "var" introducer: either one declaration set, or
// a braced block of several sets.
func (p *Parser) parseVarStmt() ([]*ast.VarDeclStmt, error) {
	if _, err := p.expect(token.VAR); err != nil {
		return nil, err
	}
	if p.curIs(token.L_BRACE) {
		p.advance()
		var all []*ast.VarDeclStmt
		for !p.curIs(token.R_BRACE) {
			set, err := p.parseVarDeclSet()
			if err != nil {
				return nil, err
			}
			all = append(all, set...)
		}
		if _, err := p.expect(token.R_BRACE); err != nil {
			return nil, err
		}
		return all, nil
	}
	return p.parseVarDeclSet()
}

// parseVarDeclSet parses "var_mode IDENT [= expr] {, var_mode IDENT [= expr]} [type_spec] ;".
// The single optional trailing type_spec applies to every declarator.
func (p *Parser) parseVarDeclSet() ([]*ast.VarDeclStmt, error) {
	var decls []*ast.VarDeclStmt
	for {
		mode := ast.VarOwn
		modeTok, err := p.cur()
		if err != nil {
			return nil, err
		}
		if modeTok.Type == token.WEAK_REF {
			p.advance()
			mode = ast.VarBorrow
		}
		name, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if p.curIs(token.ASSIGN) {
			p.advance()
			init, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		decls = append(decls, &ast.VarDeclStmt{P: name.Pos, Name: name.Literal, Mode: mode, Init: init})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	var ts ast.TypeSpec
	if !p.curIs(token.SEMICOLON) {
		var err error
		ts, err = p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	for _, d := range decls {
		d.Type = ts
	}
	return decls, nil
}

func toStmts(decls []*ast.VarDeclStmt) []ast.Stmt {
	out := make([]ast.Stmt, len(decls))
	for i, d := range decls {
		out[i] = d
	}
	return out
}

func toClassMembers(decls []*ast.VarDeclStmt) []ast.ClassMember {
	out := make([]ast.ClassMember, len(decls))
	for i, d := range decls {
		out[i] = d
	}
	return out
}

func toModuleMembers(decls []*ast.VarDeclStmt) []ast.ModuleMember {
	out := make([]ast.ModuleMember, len(decls))
	for i, d := range decls {
		out[i] = d
	}
	return out
}
