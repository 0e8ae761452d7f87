// Package cpptrans lowers a Quo AST to C++ source text, implementing the
// dereference-prefix protocol: every Quo-value-denoting expression string
// begins with a literal '*', stripped by callers that need the pointer
// itself (borrow, move, a call target, or an assignment whose RHS is a
// borrow/move).
package cpptrans

import "strings"

// derefExpr wraps a translated expression string so the dereference
// prefix is never manipulated by raw slicing. Strip removes exactly one
// leading '*' and reports whether one was present.
type derefExpr string

func (d derefExpr) Strip() (string, bool) {
	s := string(d)
	if strings.HasPrefix(s, "*") {
		return s[1:], true
	}
	return s, false
}
