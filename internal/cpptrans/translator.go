package cpptrans

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/qerrors"
	"github.com/quo-lang/quoc/internal/token"
)

// declResult is the DR type instantiating ast.DeclVisitor for the
// translator: a Func/ExternFunc/Class carries its rendered C++ text
// directly, while a VarDeclStmt carries all three renderings (local,
// class-member, constructor-init) since the caller's scope decides which
// applies.
type declResult struct {
	Name string

	IsVarDecl      bool
	VarLocal       string
	VarClassMember string
	VarCtorInit    string
	HasCtorInit    bool

	Code string // Func, ExternFunc, Class
}

// Translator lowers a Quo module to C++ source text by implementing
// ast.ExprVisitor[string], ast.StmtVisitor[string, []string], and
// ast.DeclVisitor[string, []string, declResult]. It also implements
// ast.TypeSpecVisitor[string] to render type references.
//
// Translator is single-use: construct a fresh one per Translate call.
type Translator struct {
	err error
}

// New returns a fresh Translator.
func New() *Translator { return &Translator{} }

func (t *Translator) fail(pos token.Position, kind, message string) {
	if t.err == nil {
		t.err = qerrors.NewTranslatorError(pos, kind, message)
	}
}

// Translate renders m as a sequence of top-level C++ declarations,
// separated by blank lines. It returns the first TranslatorError
// encountered, if any, in AST traversal order.
func (t *Translator) Translate(m *ast.Module) (string, error) {
	t.err = nil
	results := ast.WalkModule[string, []string, declResult](m, t, t, t)
	if t.err != nil {
		return "", t.err
	}

	var out []string
	for i, mem := range m.Members {
		r := results[i]
		switch n := mem.(type) {
		case *ast.ExternFunc:
			out = append(out, r.Code)
		case *ast.Func:
			code, err := t.moduleScopedCode(n.P, n.Name, r.Code, n.Name == "main")
			if err != nil {
				return "", err
			}
			out = append(out, code)
		case *ast.Class:
			code, err := t.moduleScopedCode(n.P, n.Name, r.Code, false)
			if err != nil {
				return "", err
			}
			out = append(out, code)
		case *ast.VarDeclStmt:
			code, err := t.moduleScopedCode(n.P, n.Name, r.VarLocal, false)
			if err != nil {
				return "", err
			}
			out = append(out, code)
		default:
			return "", qerrors.NewTranslatorError(mem.Pos(), "unknown-module-member", "unknown module member kind")
		}
	}
	return strings.Join(out, "\n\n"), nil
}

// moduleScopedCode applies the module-scope visibility prefix: public
// names and literal "main" are unprefixed, protected names are a hard
// error, private names get a "static " prefix.
func (t *Translator) moduleScopedCode(pos token.Position, name, code string, alwaysUnprefixed bool) (string, error) {
	if alwaysUnprefixed {
		return code, nil
	}
	vis, err := classifyVisibility(name)
	if err != nil {
		return "", qerrors.NewTranslatorError(pos, "unresolvable-visibility", err.Error())
	}
	switch vis {
	case Public:
		return code, nil
	case Protected:
		return "", qerrors.NewTranslatorError(pos, "protected-at-module-scope", fmt.Sprintf("protected member %q is not allowed at module scope", name))
	default:
		return "static " + code, nil
	}
}

// Wrap produces a complete translation unit: a "Generated by quoc at
// <RFC3339 timestamp>" comment, the standard includes the translated
// program needs (unique_ptr, utility for std::move, and the runtime
// support header), then the translated declarations.
func Wrap(body string) string {
	return strings.Join([]string{
		"// Generated by quoc at " + time.Now().Format(time.RFC3339),
		"#include <memory>",
		"#include <utility>",
		"#include \"quo_runtime.hpp\"",
		"",
		body,
		"",
	}, "\n")
}

// ---- ast.ExprVisitor[string] ----

func (t *Translator) VisitConstant(n *ast.ConstantExpr) string {
	switch n.Kind {
	case ast.NilConstant:
		return "nullptr"
	case ast.BoolConstant:
		if n.BoolVal {
			return "true"
		}
		return "false"
	case ast.IntConstant:
		return strconv.FormatInt(n.IntVal, 10)
	case ast.StringConstant:
		return strconv.Quote(n.StrVal)
	default:
		t.fail(n.P, "unknown-constant-kind", "unknown constant kind")
		return "nullptr"
	}
}

func (t *Translator) VisitVar(n *ast.VarExpr) string {
	return "*" + n.Name
}

func (t *Translator) VisitMember(n *ast.MemberExpr, parent string) string {
	return fmt.Sprintf("*(%s).%s", parent, n.Name)
}

func (t *Translator) VisitIndex(n *ast.IndexExpr, container, index string) string {
	return fmt.Sprintf("*(%s)[%s]", container, index)
}

func (t *Translator) VisitCall(n *ast.CallExpr, callee string, args []string) string {
	calleeExpr, ok := derefExpr(callee).Strip()
	if !ok {
		calleeExpr = "(" + callee + ")"
	}
	return fmt.Sprintf("%s(%s)", calleeExpr, strings.Join(args, ", "))
}

func (t *Translator) VisitUnaryOp(n *ast.UnaryOpExpr, operand string) string {
	switch n.Op {
	case ast.UnaryAdd:
		return "+(" + operand + ")"
	case ast.UnarySub:
		return "-(" + operand + ")"
	case ast.UnaryNot:
		return "!(" + operand + ")"
	case ast.UnaryBorrow, ast.UnaryMove:
		body, ok := derefExpr(operand).Strip()
		if !ok {
			t.fail(n.P, "invalid-borrow-move-operand", fmt.Sprintf("invalid operand to %s: %s", n.Op, operand))
			return ""
		}
		if n.Op == ast.UnaryBorrow {
			return "&(*(" + body + "))"
		}
		return "std::move(" + body + ")"
	default:
		t.fail(n.P, "unknown-unary-op", "unknown unary operator")
		return ""
	}
}

func (t *Translator) VisitBinaryOp(n *ast.BinaryOpExpr, left, right string) string {
	sym, ok := binaryOpSymbols[n.Op]
	if !ok {
		t.fail(n.P, "unknown-binary-op", "unknown binary operator")
		return ""
	}
	return fmt.Sprintf("(%s %s %s)", left, sym, right)
}

var binaryOpSymbols = map[ast.BinaryOp]string{
	ast.BinaryAdd: "+",
	ast.BinarySub: "-",
	ast.BinaryMul: "*",
	ast.BinaryDiv: "/",
	ast.BinaryMod: "%",
	ast.BinaryEq:  "==",
	ast.BinaryNe:  "!=",
	ast.BinaryGt:  ">",
	ast.BinaryGe:  ">=",
	ast.BinaryLt:  "<",
	ast.BinaryLe:  "<=",
	ast.BinaryAnd: "&&",
	ast.BinaryOr:  "||",
}

func (t *Translator) VisitAssign(n *ast.AssignExpr, dest, value string) string {
	destExpr, ok := derefExpr(dest).Strip()
	if !ok {
		t.fail(n.P, "invalid-assign-lhs", fmt.Sprintf("invalid LHS in assignment: %s", dest))
		return ""
	}
	if u, ok := n.Value.(*ast.UnaryOpExpr); ok && (u.Op == ast.UnaryBorrow || u.Op == ast.UnaryMove) {
		return fmt.Sprintf("%s = %s", destExpr, value)
	}
	return fmt.Sprintf("*(%s) = %s", destExpr, value)
}

// ---- ast.StmtVisitor[string, []string] ----

func (t *Translator) VisitExprStmt(n *ast.ExprStmt, expr string) []string {
	return []string{expr + ";"}
}

func (t *Translator) VisitReturnStmt(n *ast.ReturnStmt, expr string, hasExpr bool) []string {
	if !hasExpr {
		return []string{"return;"}
	}
	return []string{"return " + expr + ";"}
}

func (t *Translator) VisitBreakStmt(n *ast.BreakStmt) []string { return []string{"break;"} }

func (t *Translator) VisitContinueStmt(n *ast.ContinueStmt) []string { return []string{"continue;"} }

func (t *Translator) VisitCondStmt(n *ast.CondStmt, cond string, trueResults, falseResults [][]string) []string {
	stmt := fmt.Sprintf("if (%s) {\n%s\n}", cond, indentLines(flatten(trueResults)))
	if len(n.FalseStmts) > 0 {
		stmt += fmt.Sprintf(" else {\n%s\n}", indentLines(flatten(falseResults)))
	}
	return []string{stmt}
}

func (t *Translator) VisitCondLoopStmt(n *ast.CondLoopStmt, cond string, bodyResults [][]string) []string {
	return []string{fmt.Sprintf("while (%s) {\n%s\n}", cond, indentLines(flatten(bodyResults)))}
}

func (t *Translator) VisitVarDeclStmt(n *ast.VarDeclStmt, initResult string, hasInit bool) []string {
	local, _, _, _ := t.renderVarDecl(n, initResult, hasInit)
	return []string{local}
}

// ---- ast.DeclVisitor[string, []string, declResult] ----

func (t *Translator) VisitFunc(n *ast.Func, params []ast.ParamInit[string], stmts [][]string) declResult {
	returnBase := t.renderTypeSpec(n.ReturnType)
	var returnType string
	switch n.ReturnMode {
	case ast.ModeCopy:
		returnType = returnBase
	case ast.ModeBorrow:
		returnType = returnBase + "*"
	case ast.ModeMove:
		returnType = "std::unique_ptr<" + returnBase + ">"
	default:
		t.fail(n.P, "unknown-mode", "unknown return mode")
		returnType = returnBase
	}

	var sigParams []string
	var body []string
	for _, p := range params {
		sig, prologue := t.renderFuncParam(p.Param, p.InitResult, p.HasInit)
		sigParams = append(sigParams, sig)
		if prologue != "" {
			body = append(body, prologue)
		}
	}
	for _, s := range stmts {
		body = append(body, s...)
	}

	cc := ""
	switch n.CC {
	case ast.CCDefault:
	case ast.CCC:
		cc = `extern "C" `
	default:
		t.fail(n.P, "unknown-cc", "unknown calling convention")
	}

	code := fmt.Sprintf("%s%s%s %s(%s) {\n%s\n}",
		cc, templatePrefix(n.TypeParams), returnType, n.Name, strings.Join(sigParams, ", "), indentLines(body))
	return declResult{Name: n.Name, Code: code}
}

func (t *Translator) VisitExternFunc(n *ast.ExternFunc) declResult {
	returnType := t.renderTypeSpec(n.ReturnType)
	var sigParams []string
	for _, p := range n.Params {
		var initResult string
		hasInit := p.Init != nil
		if hasInit {
			initResult = ast.WalkExpr(p.Init, t)
		}
		sig, _ := t.renderFuncParam(p, initResult, hasInit)
		sigParams = append(sigParams, sig)
	}
	code := fmt.Sprintf(`extern "C" %s %s(%s);`, returnType, n.Name, strings.Join(sigParams, ", "))
	return declResult{Name: n.Name, Code: code}
}

func (t *Translator) VisitClass(n *ast.Class, members []declResult) declResult {
	var memberLines []string
	var ctorStmts []string
	for i, m := range members {
		var line string
		if m.IsVarDecl {
			if m.HasCtorInit {
				ctorStmts = append(ctorStmts, m.VarCtorInit)
			}
			line = m.VarClassMember
		} else {
			_, isFunc := n.Members[i].(*ast.Func)
			if isFunc {
				line = "virtual " + m.Code
			} else {
				line = m.Code
			}
		}
		vis, err := classifyVisibility(m.Name)
		if err != nil {
			t.fail(n.P, "unresolvable-visibility", err.Error())
			return declResult{}
		}
		memberLines = append(memberLines, vis.cppLabel()+": "+line)
	}

	ctor := fmt.Sprintf("public: %s() {\n%s\n}", n.Name, indentLines(ctorStmts))
	body := append([]string{ctor}, memberLines...)

	inheritance := ""
	if len(n.Supers) > 0 {
		parts := make([]string, len(n.Supers))
		for i, s := range n.Supers {
			parts[i] = "public " + t.renderTypeSpec(s)
		}
		inheritance = " : " + strings.Join(parts, ", ")
	}

	code := fmt.Sprintf("%sclass %s%s {\n%s\n};", templatePrefix(n.TypeParams), n.Name, inheritance, indentLines(body))
	return declResult{Name: n.Name, Code: code}
}

func (t *Translator) VisitVarDecl(n *ast.VarDeclStmt, initResult string, hasInit bool) declResult {
	local, classMember, ctorInit, hasCtorInit := t.renderVarDecl(n, initResult, hasInit)
	return declResult{
		Name: n.Name, IsVarDecl: true,
		VarLocal: local, VarClassMember: classMember,
		VarCtorInit: ctorInit, HasCtorInit: hasCtorInit,
	}
}

// renderVarDecl computes the three C++ renderings of a variable
// declaration: as a local statement, as a class data member, and as a
// constructor-body initializer (used only when the declaration occurs
// inside a class body).
func (t *Translator) renderVarDecl(n *ast.VarDeclStmt, initResult string, hasInit bool) (local, classMember, ctorInit string, hasCtorInit bool) {
	typeName := t.renderTypeSpec(n.Type)
	switch n.Mode {
	case ast.VarOwn:
		classMember = fmt.Sprintf("std::unique_ptr<%s> %s;", typeName, n.Name)
		if hasInit && isMoveExpr(n.Init) {
			local = fmt.Sprintf("std::unique_ptr<%s> %s = %s;", typeName, n.Name, initResult)
			ctorInit = fmt.Sprintf("%s = %s;", n.Name, initResult)
			hasCtorInit = true
			return
		}
		arg := ""
		if hasInit {
			arg = initResult
		}
		local = fmt.Sprintf("std::unique_ptr<%s> %s(new %s(%s));", typeName, n.Name, typeName, arg)
		ctorInit = fmt.Sprintf("%s.reset(new %s(%s));", n.Name, typeName, arg)
		hasCtorInit = true
		return
	case ast.VarBorrow:
		classMember = fmt.Sprintf("%s* %s;", typeName, n.Name)
		if hasInit {
			local = fmt.Sprintf("%s* %s = %s;", typeName, n.Name, initResult)
			ctorInit = fmt.Sprintf("%s = %s;", n.Name, initResult)
			hasCtorInit = true
			return
		}
		local = fmt.Sprintf("%s* %s;", typeName, n.Name)
		return
	default:
		t.fail(n.P, "unknown-var-mode", "unknown variable mode")
		return
	}
}

// renderFuncParam returns the parameter's C++ signature fragment and, for
// a COPY-mode parameter, a prologue statement that clones the passed
// const reference into an owning local matching the parameter's name.
func (t *Translator) renderFuncParam(p *ast.FuncParam, initResult string, hasInit bool) (sig, prologue string) {
	base := t.renderTypeSpec(p.Type)
	var name, typeSig string
	switch p.Mode {
	case ast.ModeCopy:
		name = "_" + p.Name
		typeSig = "const " + base + "&"
		prologue = fmt.Sprintf("std::unique_ptr<%s> %s(new %s(%s));", base, p.Name, base, name)
	case ast.ModeBorrow:
		name = p.Name
		typeSig = base + "*"
	case ast.ModeMove:
		name = p.Name
		typeSig = "std::unique_ptr<" + base + ">"
	default:
		t.fail(p.P, "unknown-mode", "unknown parameter mode")
		name = p.Name
		typeSig = base
	}
	sig = typeSig + " " + name
	if hasInit {
		sig += " = " + initResult
	}
	return sig, prologue
}

func isMoveExpr(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryOpExpr)
	return ok && u.Op == ast.UnaryMove
}

func templatePrefix(typeParams []string) string {
	if len(typeParams) == 0 {
		return ""
	}
	parts := make([]string, len(typeParams))
	for i, p := range typeParams {
		parts[i] = "typename " + p
	}
	return "template<" + strings.Join(parts, ", ") + ">\n"
}

// ---- ast.TypeSpecVisitor[string] ----

func (t *Translator) renderTypeSpec(ts ast.TypeSpec) string {
	if ts == nil {
		return "Object"
	}
	return ast.WalkTypeSpec(ts, t)
}

func (t *Translator) VisitSimpleTypeSpec(n *ast.SimpleTypeSpec, params []string) string {
	if len(params) == 0 {
		return n.Name
	}
	return n.Name + "<" + strings.Join(params, ", ") + ">"
}

func (t *Translator) VisitMemberTypeSpec(n *ast.MemberTypeSpec, parent string, params []string) string {
	name := n.Name
	if len(params) > 0 {
		name += "<" + strings.Join(params, ", ") + ">"
	}
	return parent + "::" + name
}

// ---- helpers ----

func indentLines(lines []string) string {
	var out []string
	for _, l := range lines {
		for _, sub := range strings.Split(l, "\n") {
			out = append(out, "  "+sub)
		}
	}
	return strings.Join(out, "\n")
}

func flatten(groups [][]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
