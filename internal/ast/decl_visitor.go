package ast

// ParamInit bundles a function parameter with its already-computed
// default-value result, for consumption by DeclVisitor.VisitFunc.
type ParamInit[ER any] struct {
	Param      *FuncParam
	HasInit    bool
	InitResult ER
}

// DeclVisitor computes a DR for every module/class-scope declaration
// kind, given its already-computed sub-results.
type DeclVisitor[ER, SR, DR any] interface {
	VisitFunc(*Func, []ParamInit[ER], []SR) DR
	VisitExternFunc(*ExternFunc) DR
	VisitClass(*Class, []DR) DR
	VisitVarDecl(*VarDeclStmt, ER, bool) DR // init result, hasInit
}

// WalkDecl performs a post-order traversal of a single declaration.
func WalkDecl[ER, SR, DR any](d Decl, ev ExprVisitor[ER], sv StmtVisitor[ER, SR], dv DeclVisitor[ER, SR, DR]) DR {
	switch n := d.(type) {
	case *Func:
		params := make([]ParamInit[ER], len(n.Params))
		for i, p := range n.Params {
			if p.Init != nil {
				params[i] = ParamInit[ER]{Param: p, HasInit: true, InitResult: WalkExpr(p.Init, ev)}
			} else {
				params[i] = ParamInit[ER]{Param: p}
			}
		}
		stmts := WalkStmts(n.Stmts, ev, sv)
		return dv.VisitFunc(n, params, stmts)
	case *ExternFunc:
		return dv.VisitExternFunc(n)
	case *Class:
		members := make([]DR, len(n.Members))
		for i, m := range n.Members {
			members[i] = WalkDecl[ER, SR, DR](m, ev, sv, dv)
		}
		return dv.VisitClass(n, members)
	case *VarDeclStmt:
		if n.Init != nil {
			return dv.VisitVarDecl(n, WalkExpr(n.Init, ev), true)
		}
		var zero ER
		return dv.VisitVarDecl(n, zero, false)
	default:
		panic("ast: WalkDecl: unknown Decl node type")
	}
}

// WalkModule performs a post-order traversal of every member of m, in
// source order.
func WalkModule[ER, SR, DR any](m *Module, ev ExprVisitor[ER], sv StmtVisitor[ER, SR], dv DeclVisitor[ER, SR, DR]) []DR {
	results := make([]DR, len(m.Members))
	for i, mem := range m.Members {
		results[i] = WalkDecl[ER, SR, DR](mem, ev, sv, dv)
	}
	return results
}
