package ast

// TypeSpec is the sum type of Quo type references.
type TypeSpec interface {
	typeSpecNode()
}

// SimpleTypeSpec is a bare name with optional type-parameter list, e.g.
// "Array<Int>".
type SimpleTypeSpec struct {
	Name       string
	TypeParams []TypeSpec
}

func (*SimpleTypeSpec) typeSpecNode() {}

// MemberTypeSpec is a nested type reference, e.g. "Outer.Inner<T>".
type MemberTypeSpec struct {
	Parent     TypeSpec
	Name       string
	TypeParams []TypeSpec
}

func (*MemberTypeSpec) typeSpecNode() {}
