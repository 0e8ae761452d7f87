package cpptrans

import "fmt"

// Visibility classifies a declared name by the first character of its
// identifier: an uppercase initial is public, a leading underscore is
// protected, a lowercase initial is private. Any other initial (or an
// empty name) cannot be classified and classifyVisibility returns an
// error.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) cppLabel() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "private"
	}
}

func classifyVisibility(name string) (Visibility, error) {
	if name == "" {
		return 0, fmt.Errorf("cannot classify visibility of an empty identifier")
	}
	switch {
	case name[0] == '_':
		return Protected, nil
	case name[0] >= 'A' && name[0] <= 'Z':
		return Public, nil
	case name[0] >= 'a' && name[0] <= 'z':
		return Private, nil
	default:
		return 0, fmt.Errorf("cannot classify visibility of %q", name)
	}
}
