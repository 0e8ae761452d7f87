package parser

import (
	"testing"

	"github.com/quo-lang/quoc/internal/ast"
)

// S3: precedence chain.
func TestParserSeedS3Precedence(t *testing.T) {
	expr, err := parseExprString("a + b * c == d and e or f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	or, ok := expr.(*ast.BinaryOpExpr)
	if !ok || or.Op != ast.BinaryOr {
		t.Fatalf("top level = %#v, want BinaryOp(OR)", expr)
	}
	and, ok := or.Left.(*ast.BinaryOpExpr)
	if !ok || and.Op != ast.BinaryAnd {
		t.Fatalf("or.Left = %#v, want BinaryOp(AND)", or.Left)
	}
	if v, ok := or.Right.(*ast.VarExpr); !ok || v.Name != "f" {
		t.Fatalf("or.Right = %#v, want Var(f)", or.Right)
	}
	eq, ok := and.Left.(*ast.BinaryOpExpr)
	if !ok || eq.Op != ast.BinaryEq {
		t.Fatalf("and.Left = %#v, want BinaryOp(EQ)", and.Left)
	}
	if v, ok := and.Right.(*ast.VarExpr); !ok || v.Name != "e" {
		t.Fatalf("and.Right = %#v, want Var(e)", and.Right)
	}
	add, ok := eq.Left.(*ast.BinaryOpExpr)
	if !ok || add.Op != ast.BinaryAdd {
		t.Fatalf("eq.Left = %#v, want BinaryOp(ADD)", eq.Left)
	}
	if v, ok := eq.Right.(*ast.VarExpr); !ok || v.Name != "d" {
		t.Fatalf("eq.Right = %#v, want Var(d)", eq.Right)
	}
	if v, ok := add.Left.(*ast.VarExpr); !ok || v.Name != "a" {
		t.Fatalf("add.Left = %#v, want Var(a)", add.Left)
	}
	mul, ok := add.Right.(*ast.BinaryOpExpr)
	if !ok || mul.Op != ast.BinaryMul {
		t.Fatalf("add.Right = %#v, want BinaryOp(MUL)", add.Right)
	}
	if v, ok := mul.Left.(*ast.VarExpr); !ok || v.Name != "b" {
		t.Fatalf("mul.Left = %#v, want Var(b)", mul.Left)
	}
	if v, ok := mul.Right.(*ast.VarExpr); !ok || v.Name != "c" {
		t.Fatalf("mul.Right = %#v, want Var(c)", mul.Right)
	}
}

// S4: variable declarations sharing a trailing type_spec.
func TestParserSeedS4VarDecl(t *testing.T) {
	mod, err := parseModule("var &x, y = 3 Int;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mod.Members) != 2 {
		t.Fatalf("got %d members, want 2: %#v", len(mod.Members), mod.Members)
	}
	first, ok := mod.Members[0].(*ast.VarDeclStmt)
	if !ok || first.Mode != ast.VarBorrow || first.Init != nil {
		t.Fatalf("first decl = %#v, want BORROW x with no init", first)
	}
	second, ok := mod.Members[1].(*ast.VarDeclStmt)
	if !ok || second.Mode != ast.VarOwn {
		t.Fatalf("second decl = %#v, want OWN y", second)
	}
	constExpr, ok := second.Init.(*ast.ConstantExpr)
	if !ok || constExpr.IntVal != 3 {
		t.Fatalf("second.Init = %#v, want ConstantExpr(3)", second.Init)
	}
	firstType, ok := first.Type.(*ast.SimpleTypeSpec)
	if !ok || firstType.Name != "Int" {
		t.Fatalf("first.Type = %#v, want SimpleTypeSpec(Int)", first.Type)
	}
	if second.Type != first.Type {
		t.Fatalf("declarators in a set must share the same type_spec instance")
	}
}

// Property 5: compound assignment desugars to an equivalent expanded AST.
func TestParserCompoundAssignDesugaring(t *testing.T) {
	compound, err := parseExprString("x += e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expanded, err := parseExprString("x = x + e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exprEqual(compound, expanded) {
		t.Errorf("x += e != x = x + e\n  got:  %#v\n  want: %#v", compound, expanded)
	}
}

// Property 6: dangling else binds to the nearest if.
func TestParserDanglingElse(t *testing.T) {
	mod, err := parseModule("fn f() { if A { if B { x; } else { y; } } }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := mod.Members[0].(*ast.Func)
	outer := fn.Stmts[0].(*ast.CondStmt)
	if len(outer.FalseStmts) != 0 {
		t.Fatalf("outer if must have no else branch, got %#v", outer.FalseStmts)
	}
	inner := outer.TrueStmts[0].(*ast.CondStmt)
	if len(inner.FalseStmts) != 1 {
		t.Fatalf("inner if must bind the else, got %#v", inner.FalseStmts)
	}
}

// exprEqual compares two expression trees structurally, ignoring
// position information (alpha-structural equality per §8 property 2).
func exprEqual(a, b ast.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch an := a.(type) {
	case *ast.ConstantExpr:
		bn, ok := b.(*ast.ConstantExpr)
		return ok && an.Kind == bn.Kind && an.IntVal == bn.IntVal && an.StrVal == bn.StrVal && an.BoolVal == bn.BoolVal
	case *ast.VarExpr:
		bn, ok := b.(*ast.VarExpr)
		return ok && an.Name == bn.Name
	case *ast.MemberExpr:
		bn, ok := b.(*ast.MemberExpr)
		return ok && an.Name == bn.Name && exprEqual(an.Parent, bn.Parent)
	case *ast.IndexExpr:
		bn, ok := b.(*ast.IndexExpr)
		return ok && exprEqual(an.Container, bn.Container) && exprEqual(an.Index, bn.Index)
	case *ast.CallExpr:
		bn, ok := b.(*ast.CallExpr)
		if !ok || !exprEqual(an.Callee, bn.Callee) || len(an.Args) != len(bn.Args) {
			return false
		}
		for i := range an.Args {
			if !exprEqual(an.Args[i], bn.Args[i]) {
				return false
			}
		}
		return true
	case *ast.UnaryOpExpr:
		bn, ok := b.(*ast.UnaryOpExpr)
		return ok && an.Op == bn.Op && exprEqual(an.Operand, bn.Operand)
	case *ast.BinaryOpExpr:
		bn, ok := b.(*ast.BinaryOpExpr)
		return ok && an.Op == bn.Op && exprEqual(an.Left, bn.Left) && exprEqual(an.Right, bn.Right)
	case *ast.AssignExpr:
		bn, ok := b.(*ast.AssignExpr)
		return ok && exprEqual(an.Dest, bn.Dest) && exprEqual(an.Value, bn.Value)
	default:
		return false
	}
}
