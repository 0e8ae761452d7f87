package ast

// ExprVisitor computes an R for every expression kind, given its already
// computed children's results. This is shared by the AST debug
// serializer (R = any) and the C++ translator (R = string).
type ExprVisitor[R any] interface {
	VisitConstant(*ConstantExpr) R
	VisitVar(*VarExpr) R
	VisitMember(*MemberExpr, R) R      // parent result
	VisitIndex(*IndexExpr, R, R) R     // container result, index result
	VisitCall(*CallExpr, R, []R) R     // callee result, arg results
	VisitUnaryOp(*UnaryOpExpr, R) R    // operand result
	VisitBinaryOp(*BinaryOpExpr, R, R) R // left, right
	VisitAssign(*AssignExpr, R, R) R   // dest, value
}

// WalkExpr performs a post-order traversal of e, visiting children before
// calling the matching Visit* method on v.
func WalkExpr[R any](e Expr, v ExprVisitor[R]) R {
	switch n := e.(type) {
	case *ConstantExpr:
		return v.VisitConstant(n)
	case *VarExpr:
		return v.VisitVar(n)
	case *MemberExpr:
		return v.VisitMember(n, WalkExpr(n.Parent, v))
	case *IndexExpr:
		return v.VisitIndex(n, WalkExpr(n.Container, v), WalkExpr(n.Index, v))
	case *CallExpr:
		callee := WalkExpr(n.Callee, v)
		args := make([]R, len(n.Args))
		for i, a := range n.Args {
			args[i] = WalkExpr(a, v)
		}
		return v.VisitCall(n, callee, args)
	case *UnaryOpExpr:
		return v.VisitUnaryOp(n, WalkExpr(n.Operand, v))
	case *BinaryOpExpr:
		return v.VisitBinaryOp(n, WalkExpr(n.Left, v), WalkExpr(n.Right, v))
	case *AssignExpr:
		return v.VisitAssign(n, WalkExpr(n.Dest, v), WalkExpr(n.Value, v))
	default:
		panic("ast: WalkExpr: unknown Expr node type")
	}
}

// StmtVisitor computes an SR for every statement kind, given its
// expression sub-results (of type ER, produced by an ExprVisitor[ER]) and
// its nested statement results (also SR, from the recursive walk).
type StmtVisitor[ER, SR any] interface {
	VisitExprStmt(*ExprStmt, ER) SR
	VisitReturnStmt(*ReturnStmt, ER, bool) SR // expr result, hasExpr
	VisitBreakStmt(*BreakStmt) SR
	VisitContinueStmt(*ContinueStmt) SR
	VisitCondStmt(*CondStmt, ER, []SR, []SR) SR // cond, true-branch, false-branch
	VisitCondLoopStmt(*CondLoopStmt, ER, []SR) SR
	VisitVarDeclStmt(*VarDeclStmt, ER, bool) SR // init result, hasInit
}

// WalkStmt performs a post-order traversal of s, using ev to evaluate any
// expression sub-nodes and sv to compute the statement's own result.
func WalkStmt[ER, SR any](s Stmt, ev ExprVisitor[ER], sv StmtVisitor[ER, SR]) SR {
	switch n := s.(type) {
	case *ExprStmt:
		return sv.VisitExprStmt(n, WalkExpr(n.Expr, ev))
	case *ReturnStmt:
		if n.Expr != nil {
			return sv.VisitReturnStmt(n, WalkExpr(n.Expr, ev), true)
		}
		var zero ER
		return sv.VisitReturnStmt(n, zero, false)
	case *BreakStmt:
		return sv.VisitBreakStmt(n)
	case *ContinueStmt:
		return sv.VisitContinueStmt(n)
	case *CondStmt:
		cond := WalkExpr(n.Cond, ev)
		trueResults := WalkStmts(n.TrueStmts, ev, sv)
		falseResults := WalkStmts(n.FalseStmts, ev, sv)
		return sv.VisitCondStmt(n, cond, trueResults, falseResults)
	case *CondLoopStmt:
		cond := WalkExpr(n.Cond, ev)
		bodyResults := WalkStmts(n.Stmts, ev, sv)
		return sv.VisitCondLoopStmt(n, cond, bodyResults)
	case *VarDeclStmt:
		if n.Init != nil {
			return sv.VisitVarDeclStmt(n, WalkExpr(n.Init, ev), true)
		}
		var zero ER
		return sv.VisitVarDeclStmt(n, zero, false)
	default:
		panic("ast: WalkStmt: unknown Stmt node type")
	}
}

// WalkStmts walks a statement list in source order.
func WalkStmts[ER, SR any](stmts []Stmt, ev ExprVisitor[ER], sv StmtVisitor[ER, SR]) []SR {
	results := make([]SR, len(stmts))
	for i, s := range stmts {
		results[i] = WalkStmt(s, ev, sv)
	}
	return results
}

// TypeSpecVisitor computes an R for a type reference given its
// already-computed type-parameter results (and, for MemberTypeSpec, its
// parent's result).
type TypeSpecVisitor[R any] interface {
	VisitSimpleTypeSpec(*SimpleTypeSpec, []R) R
	VisitMemberTypeSpec(*MemberTypeSpec, R, []R) R // parent result, type-param results
}

// WalkTypeSpec performs a post-order traversal of a type reference.
func WalkTypeSpec[R any](t TypeSpec, v TypeSpecVisitor[R]) R {
	switch n := t.(type) {
	case *SimpleTypeSpec:
		return v.VisitSimpleTypeSpec(n, walkTypeSpecs(n.TypeParams, v))
	case *MemberTypeSpec:
		parent := WalkTypeSpec(n.Parent, v)
		return v.VisitMemberTypeSpec(n, parent, walkTypeSpecs(n.TypeParams, v))
	default:
		panic("ast: WalkTypeSpec: unknown TypeSpec node type")
	}
}

func walkTypeSpecs[R any](specs []TypeSpec, v TypeSpecVisitor[R]) []R {
	results := make([]R, len(specs))
	for i, s := range specs {
		results[i] = WalkTypeSpec(s, v)
	}
	return results
}
