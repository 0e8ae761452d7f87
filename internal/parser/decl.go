package parser

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/token"
)

// ParseModule parses the whole token stream as a Module: an ordered
// sequence of funcs, extern funcs, classes, and var declarations.
func (p *Parser) ParseModule() (*ast.Module, error) {
	var members []ast.ModuleMember
	for !p.ts.Done() {
		ms, err := p.parseModuleMembers()
		if err != nil {
			return nil, err
		}
		members = append(members, ms...)
	}
	return &ast.Module{Members: members}, nil
}

func (p *Parser) parseModuleMembers() ([]ast.ModuleMember, error) {
	tok, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.EXTERN:
		ef, err := p.parseExternFunc()
		if err != nil {
			return nil, err
		}
		return []ast.ModuleMember{ef}, nil
	case token.EXPORT:
		p.advance()
		fn, err := p.parseFunc(ast.CCC)
		if err != nil {
			return nil, err
		}
		return []ast.ModuleMember{fn}, nil
	case token.FUNCTION:
		fn, err := p.parseFunc(ast.CCDefault)
		if err != nil {
			return nil, err
		}
		return []ast.ModuleMember{fn}, nil
	case token.CLASS:
		cls, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		return []ast.ModuleMember{cls}, nil
	case token.VAR:
		decls, err := p.parseVarStmt()
		if err != nil {
			return nil, err
		}
		return toModuleMembers(decls), nil
	default:
		return nil, p.errorAt(tok, "expected a function, class, extern, export, or var declaration")
	}
}

// parseFunc parses a function/method definition with the given calling
// convention (set by the caller when an "export" qualifier was seen).
func (p *Parser) parseFunc(cc ast.CallConv) (*ast.Func, error) {
	tok, err := p.expect(token.FUNCTION)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	typeParams, err := p.parseOptionalTypeParamNames()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.L_PAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.R_PAREN); err != nil {
		return nil, err
	}

	returnMode := ast.ModeCopy
	var returnType ast.TypeSpec
	if !p.curIs(token.L_BRACE) {
		if p.curIs(token.WEAK_REF) {
			p.advance()
			returnMode = ast.ModeBorrow
		} else if p.curIs(token.TILDE) {
			p.advance()
			returnMode = ast.ModeMove
		}
		if p.curIs(token.IDENTIFIER) {
			returnType, err = p.parseTypeSpec()
			if err != nil {
				return nil, err
			}
		}
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

	return &ast.Func{
		P:          tok.Pos,
		Name:       name.Literal,
		TypeParams: typeParams,
		Params:     params,
		ReturnType: returnType,
		ReturnMode: returnMode,
		CC:         cc,
		Stmts:      stmts,
	}, nil
}

func (p *Parser) parseExternFunc() (*ast.ExternFunc, error) {
	tok, err := p.expect(token.EXTERN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.FUNCTION); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.L_PAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.R_PAREN); err != nil {
		return nil, err
	}
	var returnType ast.TypeSpec
	if p.curIs(token.IDENTIFIER) {
		returnType, err = p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExternFunc{P: tok.Pos, Name: name.Literal, Params: params, ReturnType: returnType}, nil
}

func (p *Parser) parseClass() (*ast.Class, error) {
	tok, err := p.expect(token.CLASS)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	typeParams, err := p.parseOptionalTypeParamNames()
	if err != nil {
		return nil, err
	}

	var supers []ast.TypeSpec
	if p.curIs(token.EXTENDS) {
		p.advance()
		for {
			ts, err := p.parseTypeSpec()
			if err != nil {
				return nil, err
			}
			supers = append(supers, ts)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(token.L_BRACE); err != nil {
		return nil, err
	}
	var members []ast.ClassMember
	for !p.curIs(token.R_BRACE) {
		memberTok, err := p.cur()
		if err != nil {
			return nil, err
		}
		switch memberTok.Type {
		case token.OVERRIDE:
			// "override" is a syntactic annotation only; the AST does
			// not distinguish an overriding method from any other.
			p.advance()
			fn, err := p.parseFunc(ast.CCDefault)
			if err != nil {
				return nil, err
			}
			members = append(members, fn)
		case token.FUNCTION:
			fn, err := p.parseFunc(ast.CCDefault)
			if err != nil {
				return nil, err
			}
			members = append(members, fn)
		case token.CLASS:
			nested, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			members = append(members, nested)
		case token.VAR:
			decls, err := p.parseVarStmt()
			if err != nil {
				return nil, err
			}
			members = append(members, toClassMembers(decls)...)
		default:
			return nil, p.errorAt(memberTok, "expected a class member")
		}
	}
	if _, err := p.expect(token.R_BRACE); err != nil {
		return nil, err
	}

	return &ast.Class{P: tok.Pos, Name: name.Literal, TypeParams: typeParams, Supers: supers, Members: members}, nil
}

// parseParamList parses a comma-separated parameter list, accepting a
// trailing comma before the closing ")".
func (p *Parser) parseParamList() ([]*ast.FuncParam, error) {
	var params []*ast.FuncParam
	for !p.curIs(token.R_PAREN) {
		tok, err := p.cur()
		if err != nil {
			return nil, err
		}
		mode := ast.ModeCopy
		switch tok.Type {
		case token.WEAK_REF:
			p.advance()
			mode = ast.ModeBorrow
		case token.TILDE:
			p.advance()
			mode = ast.ModeMove
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
		var ts ast.TypeSpec
		if p.curIs(token.IDENTIFIER) {
			ts, err = p.parseTypeSpec()
			if err != nil {
				return nil, err
			}
		}
		params = append(params, &ast.FuncParam{P: name.Pos, Name: name.Literal, Mode: mode, Type: ts, Init: init})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return params, nil
}

func (p *Parser) parseOptionalTypeParamNames() ([]string, error) {
	if !p.curIs(token.LT) {
		return nil, nil
	}
	p.advance()
	var names []string
	for {
		name, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Literal)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.GT); err != nil {
		return nil, err
	}
	return names, nil
}

// parseTypeSpec parses "IDENT [<type_spec_list>] {.  IDENT [<...>]}".
func (p *Parser) parseTypeSpec() (ast.TypeSpec, error) {
	ts, err := p.parseTypeSpecPrimary()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.DOT) {
		p.advance()
		name, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params, err := p.parseOptionalTypeSpecArgs()
		if err != nil {
			return nil, err
		}
		ts = &ast.MemberTypeSpec{Parent: ts, Name: name.Literal, TypeParams: params}
	}
	return ts, nil
}

func (p *Parser) parseTypeSpecPrimary() (ast.TypeSpec, error) {
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.parseOptionalTypeSpecArgs()
	if err != nil {
		return nil, err
	}
	return &ast.SimpleTypeSpec{Name: name.Literal, TypeParams: params}, nil
}

func (p *Parser) parseOptionalTypeSpecArgs() ([]ast.TypeSpec, error) {
	if !p.curIs(token.LT) {
		return nil, nil
	}
	p.advance()
	var params []ast.TypeSpec
	for {
		ts, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		params = append(params, ts)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.GT); err != nil {
		return nil, err
	}
	return params, nil
}
