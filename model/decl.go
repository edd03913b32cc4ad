package model

// Decl declares one type. Names are fully qualified.
type Decl struct {
	Name       string       `yaml:"name" json:"name"`
	Supertypes []string     `yaml:"supertypes,omitempty" json:"supertypes,omitempty"`
	Members    []MemberDecl `yaml:"members,omitempty" json:"members,omitempty"`
}

// MemberDecl declares a property or function. Kind is "property" (default)
// or "function"; Type is the property type or the function return type and
// defaults to Unit for functions.
type MemberDecl struct {
	Name             string   `yaml:"name" json:"name"`
	Kind             string   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Type             string   `yaml:"type,omitempty" json:"type,omitempty"`
	Params           []string `yaml:"params,omitempty" json:"params,omitempty"`
	Mutable          bool     `yaml:"mutable,omitempty" json:"mutable,omitempty"`
	Hidden           bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	DirectAccessOnly bool     `yaml:"directAccessOnly,omitempty" json:"directAccessOnly,omitempty"`
}

// Getter is shorthand for a zero-argument function declaration.
func Getter(name, returns string) MemberDecl {
	return MemberDecl{Name: name, Kind: "function", Type: returns}
}

// Prop is shorthand for a property declaration.
func Prop(name, typ string, mutable bool) MemberDecl {
	return MemberDecl{Name: name, Kind: "property", Type: typ, Mutable: mutable}
}
