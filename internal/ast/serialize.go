package ast

// Serialize renders m as a nested map/slice structure suitable for debug
// printing or structural-equality comparison in tests, grounded on
// quo_ast.py's SerializerVisitor ({'type': 'ConstantExpr', ...} shape).
// The exact textual layout is not normative (§6.3); tests check the
// structure's shape and that serializing the same AST twice yields equal
// structures.
func Serialize(m *Module) any {
	s := &serializer{}
	members := WalkModule[any, any, any](m, s, s, s)
	return map[string]any{
		"type":    "Module",
		"members": members,
	}
}

type serializer struct{}

func (s *serializer) VisitConstant(n *ConstantExpr) any {
	switch n.Kind {
	case BoolConstant:
		return map[string]any{"type": "ConstantExpr", "kind": "bool", "value": n.BoolVal}
	case IntConstant:
		return map[string]any{"type": "ConstantExpr", "kind": "int", "value": n.IntVal}
	case StringConstant:
		return map[string]any{"type": "ConstantExpr", "kind": "string", "value": n.StrVal}
	default:
		return map[string]any{"type": "ConstantExpr", "kind": "nil", "value": nil}
	}
}

func (s *serializer) VisitVar(n *VarExpr) any {
	return map[string]any{"type": "VarExpr", "name": n.Name}
}

func (s *serializer) VisitMember(n *MemberExpr, parent any) any {
	return map[string]any{"type": "MemberExpr", "parent": parent, "name": n.Name}
}

func (s *serializer) VisitIndex(n *IndexExpr, container, index any) any {
	return map[string]any{"type": "IndexExpr", "container": container, "index": index}
}

func (s *serializer) VisitCall(n *CallExpr, callee any, args []any) any {
	return map[string]any{"type": "CallExpr", "callee": callee, "args": args}
}

func (s *serializer) VisitUnaryOp(n *UnaryOpExpr, operand any) any {
	return map[string]any{"type": "UnaryOpExpr", "op": n.Op.String(), "operand": operand}
}

func (s *serializer) VisitBinaryOp(n *BinaryOpExpr, left, right any) any {
	return map[string]any{"type": "BinaryOpExpr", "op": n.Op.String(), "left": left, "right": right}
}

func (s *serializer) VisitAssign(n *AssignExpr, dest, value any) any {
	return map[string]any{"type": "AssignExpr", "dest": dest, "value": value}
}

func (s *serializer) VisitExprStmt(n *ExprStmt, expr any) any {
	return map[string]any{"type": "ExprStmt", "expr": expr}
}

func (s *serializer) VisitReturnStmt(n *ReturnStmt, expr any, hasExpr bool) any {
	if !hasExpr {
		return map[string]any{"type": "ReturnStmt", "expr": nil}
	}
	return map[string]any{"type": "ReturnStmt", "expr": expr}
}

func (s *serializer) VisitBreakStmt(n *BreakStmt) any {
	return map[string]any{"type": "BreakStmt"}
}

func (s *serializer) VisitContinueStmt(n *ContinueStmt) any {
	return map[string]any{"type": "ContinueStmt"}
}

func (s *serializer) VisitCondStmt(n *CondStmt, cond any, trueStmts, falseStmts []any) any {
	return map[string]any{"type": "CondStmt", "cond": cond, "true_stmts": trueStmts, "false_stmts": falseStmts}
}

func (s *serializer) VisitCondLoopStmt(n *CondLoopStmt, cond any, stmts []any) any {
	return map[string]any{"type": "CondLoopStmt", "cond": cond, "stmts": stmts}
}

func (s *serializer) VisitVarDeclStmt(n *VarDeclStmt, init any, hasInit bool) any {
	m := map[string]any{"type": "VarDeclStmt", "name": n.Name, "mode": n.Mode.String()}
	if hasInit {
		m["init"] = init
	} else {
		m["init"] = nil
	}
	return m
}

func (s *serializer) VisitFunc(n *Func, params []ParamInit[any], stmts []any) any {
	paramList := make([]any, len(params))
	for i, p := range params {
		entry := map[string]any{"name": p.Param.Name, "mode": p.Param.Mode.String()}
		if p.HasInit {
			entry["init"] = p.InitResult
		} else {
			entry["init"] = nil
		}
		paramList[i] = entry
	}
	return map[string]any{
		"type":        "Func",
		"name":        n.Name,
		"type_params": n.TypeParams,
		"params":      paramList,
		"return_mode": n.ReturnMode.String(),
		"cc":          n.CC.String(),
		"stmts":       stmts,
	}
}

func (s *serializer) VisitExternFunc(n *ExternFunc) any {
	return map[string]any{"type": "ExternFunc", "name": n.Name}
}

func (s *serializer) VisitClass(n *Class, members []any) any {
	return map[string]any{"type": "Class", "name": n.Name, "members": members}
}

func (s *serializer) VisitVarDecl(n *VarDeclStmt, init any, hasInit bool) any {
	return s.VisitVarDeclStmt(n, init, hasInit)
}
