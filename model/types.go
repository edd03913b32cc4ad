package model

import (
	"strings"

	"github.com/reoring/declschema/internal/walk"
)

// Builtin type names registered by every Index.
const (
	Any    = "any" // universal root supertype
	String = "string"
	Bool   = "bool"
	Int    = "int"
	Long   = "long"
	Double = "double"
	Unit   = "unit" // return type of functions producing no value
)

var builtinNames = []string{Any, String, Bool, Int, Long, Double, Unit}

// MemberKind distinguishes declared properties from functions.
type MemberKind int

const (
	MemberProperty MemberKind = iota
	MemberFunction
)

func (k MemberKind) String() string {
	switch k {
	case MemberProperty:
		return "property"
	case MemberFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Trait is a capability tag computed once per type by a Classifier.
type Trait uint32

const (
	// TraitAccessorContainer marks generated accessor containers.
	TraitAccessorContainer Trait = 1 << iota
	// TraitBuiltin marks the primitive types registered by Build.
	TraitBuiltin
)

// Has reports whether all bits of o are set.
func (t Trait) Has(o Trait) bool { return o != 0 && t&o == o }

// Type is a resolved type record.
type Type struct {
	Name       string
	Traits     Trait
	Supertypes []*Type
	Members    []Member
}

// Member is a resolved property or function of a Type.
type Member struct {
	Name             string
	Kind             MemberKind
	Type             *Type   // property type or function return type
	Params           []*Type // function parameters
	Mutable          bool    // properties only
	Hidden           bool
	DirectAccessOnly bool
}

// Has reports whether the type carries the given trait.
func (t *Type) Has(tr Trait) bool { return t != nil && t.Traits.Has(tr) }

// Package returns the qualifier of the type name ("" for unqualified names).
func (t *Type) Package() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[:i]
	}
	return ""
}

// SimpleName returns the last segment of the qualified name.
func (t *Type) SimpleName() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// IsAny reports whether t is the universal root supertype.
func (t *Type) IsAny() bool { return t != nil && t.Name == Any }

// IsSubtypeOf reports whether t is other or inherits from it. Every type is a
// subtype of Any.
func (t *Type) IsSubtypeOf(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	if other.IsAny() {
		return true
	}
	for _, cur := range walk.Closure([]*Type{t}, func(x *Type) []*Type { return x.Supertypes }) {
		if cur == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}
