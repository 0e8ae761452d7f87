package parser

import (
	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/token"
)

// parseExpr implements tiers 6-7 of §4.2: binary_bool, with an optional
// trailing assignment. Compound assignments are desugared here, per
// property 5, into `dest = dest op value` with the lvalue duplicated as
// a distinct AST subtree (the operands are not aliased).
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseBinaryBoolOr()
	if err != nil {
		return nil, err
	}

	tok, err := p.cur()
	if err != nil {
		return left, nil
	}

	var binOp ast.BinaryOp
	compound := false
	switch tok.Type {
	case token.ASSIGN:
		// plain assignment, handled below
	case token.ADD_ASSIGN:
		binOp, compound = ast.BinaryAdd, true
	case token.SUB_ASSIGN:
		binOp, compound = ast.BinarySub, true
	case token.MUL_ASSIGN:
		binOp, compound = ast.BinaryMul, true
	case token.DIV_ASSIGN:
		binOp, compound = ast.BinaryDiv, true
	default:
		return left, nil
	}

	if _, err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpr() // right-associative
	if err != nil {
		return nil, err
	}
	if compound {
		value = &ast.BinaryOpExpr{P: tok.Pos, Op: binOp, Left: cloneExpr(left), Right: value}
	}
	return &ast.AssignExpr{P: tok.Pos, Dest: left, Value: value}, nil
}

func (p *Parser) parseBinaryBoolOr() (ast.Expr, error) {
	left, err := p.parseBinaryBoolAnd()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.OR) {
		tok, _ := p.advance()
		right, err := p.parseBinaryBoolAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{P: tok.Pos, Op: ast.BinaryOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseBinaryBoolAnd() (ast.Expr, error) {
	left, err := p.parseUnaryBool()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.AND) {
		tok, _ := p.advance()
		right, err := p.parseUnaryBool()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{P: tok.Pos, Op: ast.BinaryAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseUnaryBool implements tier 4: optional leading "not", right-assoc.
func (p *Parser) parseUnaryBool() (ast.Expr, error) {
	if p.curIs(token.NOT) {
		tok, _ := p.advance()
		operand, err := p.parseUnaryBool()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpExpr{P: tok.Pos, Op: ast.UnaryNot, Operand: operand}, nil
	}
	return p.parseComparison()
}

// parseComparison implements the non-associative comparison tier: at most
// one comparison operator may appear at this level.
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	tok, err := p.cur()
	if err != nil {
		return left, nil
	}
	var op ast.BinaryOp
	switch tok.Type {
	case token.EQ:
		op = ast.BinaryEq
	case token.NE:
		op = ast.BinaryNe
	case token.GT:
		op = ast.BinaryGt
	case token.GE:
		op = ast.BinaryGe
	case token.LT:
		op = ast.BinaryLt
	case token.LE:
		op = ast.BinaryLe
	default:
		return left, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOpExpr{P: tok.Pos, Op: op, Left: left, Right: right}, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.cur()
		if err != nil {
			return left, nil
		}
		var op ast.BinaryOp
		switch tok.Type {
		case token.ADD:
			op = ast.BinaryAdd
		case token.SUB:
			op = ast.BinarySub
		default:
			return left, nil
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{P: tok.Pos, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnaryArith()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.cur()
		if err != nil {
			return left, nil
		}
		var op ast.BinaryOp
		switch tok.Type {
		case token.MUL:
			op = ast.BinaryMul
		case token.DIV:
			op = ast.BinaryDiv
		case token.MOD:
			op = ast.BinaryMod
		default:
			return left, nil
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnaryArith()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{P: tok.Pos, Op: op, Left: left, Right: right}
	}
}

// parseUnaryArith implements tier 2: zero or more prefix +, -, &, ~
// (BORROW/MOVE accepted symmetrically per the §9 open question).
func (p *Parser) parseUnaryArith() (ast.Expr, error) {
	tok, err := p.cur()
	if err != nil {
		return nil, err
	}
	var op ast.UnaryOp
	switch tok.Type {
	case token.ADD:
		op = ast.UnaryAdd
	case token.SUB:
		op = ast.UnarySub
	case token.WEAK_REF:
		op = ast.UnaryBorrow
	case token.TILDE:
		op = ast.UnaryMove
	default:
		return p.parsePrimary()
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseUnaryArith()
	if err != nil {
		return nil, err
	}
	if op == ast.UnaryBorrow || op == ast.UnaryMove {
		if !isLvalue(operand) {
			return nil, p.errorAt(tok, "operand of borrow/move must be an lvalue")
		}
	}
	return &ast.UnaryOpExpr{P: tok.Pos, Op: op, Operand: operand}, nil
}

func isLvalue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.VarExpr, *ast.MemberExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

// parsePrimary implements tier 1: a base expression followed by any
// number of postfix .member, [index], or (call) operators.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	expr, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.cur()
		if err != nil {
			return expr, nil
		}
		switch tok.Type {
		case token.DOT:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{P: tok.Pos, Parent: expr, Name: name.Literal}
		case token.L_BRACKET:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.R_BRACKET); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{P: tok.Pos, Container: expr, Index: idx}
		case token.L_PAREN:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseExprList(token.R_PAREN)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.R_PAREN); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{P: tok.Pos, Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseExprList(end token.TokenType) ([]ast.Expr, error) {
	var args []ast.Expr
	for !p.curIs(end) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(token.COMMA) {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return args, nil
}

func (p *Parser) parseBase() (ast.Expr, error) {
	tok, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.INTEGER_CONSTANT:
		p.advance()
		return &ast.ConstantExpr{P: tok.Pos, Kind: ast.IntConstant, IntVal: tok.IntValue()}, nil
	case token.STRING_CONSTANT:
		p.advance()
		return &ast.ConstantExpr{P: tok.Pos, Kind: ast.StringConstant, StrVal: tok.StringValue()}, nil
	case token.BOOLEAN_CONSTANT:
		p.advance()
		return &ast.ConstantExpr{P: tok.Pos, Kind: ast.BoolConstant, BoolVal: tok.BoolValue()}, nil
	case token.THIS:
		p.advance()
		return &ast.VarExpr{P: tok.Pos, Name: "this"}, nil
	case token.IDENTIFIER:
		p.advance()
		return &ast.VarExpr{P: tok.Pos, Name: tok.Literal}, nil
	case token.L_PAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.R_PAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorAt(tok, "expected an expression")
	}
}

// cloneExpr deep-copies e. Used by compound-assignment desugaring so the
// duplicated lvalue is a distinct subtree, keeping the AST a strict tree
// with no shared ownership (§9 "Tree ownership").
func cloneExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.ConstantExpr:
		cp := *n
		return &cp
	case *ast.VarExpr:
		cp := *n
		return &cp
	case *ast.MemberExpr:
		return &ast.MemberExpr{P: n.P, Parent: cloneExpr(n.Parent), Name: n.Name}
	case *ast.IndexExpr:
		return &ast.IndexExpr{P: n.P, Container: cloneExpr(n.Container), Index: cloneExpr(n.Index)}
	case *ast.CallExpr:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = cloneExpr(a)
		}
		return &ast.CallExpr{P: n.P, Callee: cloneExpr(n.Callee), Args: args}
	case *ast.UnaryOpExpr:
		return &ast.UnaryOpExpr{P: n.P, Op: n.Op, Operand: cloneExpr(n.Operand)}
	case *ast.BinaryOpExpr:
		return &ast.BinaryOpExpr{P: n.P, Op: n.Op, Left: cloneExpr(n.Left), Right: cloneExpr(n.Right)}
	case *ast.AssignExpr:
		return &ast.AssignExpr{P: n.P, Dest: cloneExpr(n.Dest), Value: cloneExpr(n.Value)}
	default:
		return e
	}
}
