package ast

import "github.com/quo-lang/quoc/internal/token"

// Mode is the ownership mode of a function parameter or a function's
// return value. The domain is shared between both per spec §3.2.
type Mode int

const (
	ModeCopy Mode = iota
	ModeBorrow
	ModeMove
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "COPY"
	case ModeBorrow:
		return "BORROW"
	case ModeMove:
		return "MOVE"
	default:
		return "UNKNOWN_MODE"
	}
}

// CallConv is a function's calling convention.
type CallConv int

const (
	CCDefault CallConv = iota
	CCC
)

func (cc CallConv) String() string {
	switch cc {
	case CCDefault:
		return "DEFAULT"
	case CCC:
		return "C"
	default:
		return "UNKNOWN_CC"
	}
}

// FuncParam is one declared function parameter.
type FuncParam struct {
	P    token.Position
	Name string
	Mode Mode
	Type TypeSpec // nil if unspecified
	Init Expr     // nil if no default value
}

// Decl is the sum type of module/class-scope declarations.
type Decl interface {
	Pos() token.Position
	declNode()
}

// ClassMember additionally marks a Decl as valid inside a Class body
// (Func, *Class, or *VarDeclStmt per spec §3.2).
type ClassMember interface {
	Decl
	classMemberNode()
}

// ModuleMember additionally marks a Decl as valid at module scope (Func,
// ExternFunc, *Class, or *VarDeclStmt per spec §3.2).
type ModuleMember interface {
	Decl
	moduleMemberNode()
}

// Func is a function or method definition.
type Func struct {
	P          token.Position
	Name       string
	TypeParams []string
	Params     []*FuncParam
	ReturnType TypeSpec // nil if unspecified
	ReturnMode Mode
	CC         CallConv
	Stmts      []Stmt
}

func (f *Func) Pos() token.Position { return f.P }
func (*Func) declNode()             {}
func (*Func) classMemberNode()      {}
func (*Func) moduleMemberNode()     {}

// ExternFunc is a foreign function declaration with no body.
type ExternFunc struct {
	P          token.Position
	Name       string
	Params     []*FuncParam
	ReturnType TypeSpec // nil if unspecified
}

func (f *ExternFunc) Pos() token.Position { return f.P }
func (*ExternFunc) declNode()             {}
func (*ExternFunc) moduleMemberNode()     {}

// Class is a class definition. Members preserve source order and are
// each a Func, *Class, or *VarDeclStmt.
type Class struct {
	P          token.Position
	Name       string
	TypeParams []string
	Supers     []TypeSpec
	Members    []ClassMember
}

func (c *Class) Pos() token.Position { return c.P }
func (*Class) declNode()             {}
func (*Class) classMemberNode()      {}
func (*Class) moduleMemberNode()     {}

// Module is the root of a translation unit: an ordered sequence of
// funcs, extern funcs, classes, and var declarations.
type Module struct {
	Members []ModuleMember
}
