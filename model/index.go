package model

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTypeNotFound is returned by Loader implementations for unknown names.
	ErrTypeNotFound = errors.New("model: type not found")
	// ErrUnresolvedReference reports a declaration referring to an unknown type.
	ErrUnresolvedReference = errors.New("model: unresolved type reference")
	// ErrDuplicateType reports two declarations with the same name.
	ErrDuplicateType = errors.New("model: duplicate type")
	// ErrInvalidDecl reports a structurally invalid declaration.
	ErrInvalidDecl = errors.New("model: invalid declaration")
)

// Loader is the class-loading facility of a configuration scope. Load returns
// an error wrapping ErrTypeNotFound when the name is unknown.
type Loader interface {
	Load(name string) (*Type, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(name string) (*Type, error)

func (f LoaderFunc) Load(name string) (*Type, error) { return f(name) }

// Classifier computes the traits of a declared type from its record.
type Classifier func(d Decl) Trait

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	classifiers []Classifier
}

// WithClassifier adds a classifier applied to every declared type.
func WithClassifier(c Classifier) BuildOption {
	return func(bc *buildConfig) {
		if c != nil {
			bc.classifiers = append(bc.classifiers, c)
		}
	}
}

// Index is an immutable set of resolved types.
type Index struct {
	types map[string]*Type
	order []string // declaration order, builtins excluded
}

// Build resolves decls into an Index. Builtin types are always present and
// cannot be redeclared. A declared type without supertypes extends Any.
func Build(decls []Decl, opts ...BuildOption) (*Index, error) {
	var bc buildConfig
	for _, o := range opts {
		o(&bc)
	}
	idx := &Index{types: make(map[string]*Type, len(decls)+len(builtinNames))}
	for _, n := range builtinNames {
		idx.types[n] = &Type{Name: n, Traits: TraitBuiltin}
	}
	for _, n := range builtinNames {
		if n != Any {
			idx.types[n].Supertypes = []*Type{idx.types[Any]}
		}
	}

	for _, d := range decls {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: empty type name", ErrInvalidDecl)
		}
		if _, dup := idx.types[d.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, d.Name)
		}
		t := &Type{Name: d.Name}
		for _, c := range bc.classifiers {
			t.Traits |= c(d)
		}
		idx.types[d.Name] = t
		idx.order = append(idx.order, d.Name)
	}

	for _, d := range decls {
		t := idx.types[d.Name]
		if len(d.Supertypes) == 0 {
			t.Supertypes = []*Type{idx.types[Any]}
		}
		for _, sn := range d.Supertypes {
			st, err := idx.ref(d.Name, sn)
			if err != nil {
				return nil, err
			}
			t.Supertypes = append(t.Supertypes, st)
		}
		for _, md := range d.Members {
			m, err := idx.member(d.Name, md)
			if err != nil {
				return nil, err
			}
			t.Members = append(t.Members, m)
		}
	}
	return idx, nil
}

func (idx *Index) ref(from, name string) (*Type, error) {
	if t, ok := idx.types[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s references %q", ErrUnresolvedReference, from, name)
}

func (idx *Index) member(owner string, md MemberDecl) (Member, error) {
	if md.Name == "" {
		return Member{}, fmt.Errorf("%w: unnamed member in %s", ErrInvalidDecl, owner)
	}
	m := Member{
		Name:             md.Name,
		Mutable:          md.Mutable,
		Hidden:           md.Hidden,
		DirectAccessOnly: md.DirectAccessOnly,
	}
	switch md.Kind {
	case "", "property":
		m.Kind = MemberProperty
		if md.Type == "" {
			return Member{}, fmt.Errorf("%w: property %s.%s has no type", ErrInvalidDecl, owner, md.Name)
		}
		if len(md.Params) > 0 {
			return Member{}, fmt.Errorf("%w: property %s.%s has parameters", ErrInvalidDecl, owner, md.Name)
		}
	case "function":
		m.Kind = MemberFunction
	default:
		return Member{}, fmt.Errorf("%w: member %s.%s has unknown kind %q", ErrInvalidDecl, owner, md.Name, md.Kind)
	}
	typeName := md.Type
	if typeName == "" {
		typeName = Unit
	}
	t, err := idx.ref(owner+"."+md.Name, typeName)
	if err != nil {
		return Member{}, err
	}
	m.Type = t
	for _, p := range md.Params {
		pt, err := idx.ref(owner+"."+md.Name, p)
		if err != nil {
			return Member{}, err
		}
		m.Params = append(m.Params, pt)
	}
	return m, nil
}

// Load implements Loader.
func (idx *Index) Load(name string) (*Type, error) {
	if t, ok := idx.types[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, name)
}

// Lookup returns the type with the given name, if any.
func (idx *Index) Lookup(name string) (*Type, bool) {
	t, ok := idx.types[name]
	return t, ok
}

// Types returns declared types in declaration order.
func (idx *Index) Types() []*Type {
	out := make([]*Type, 0, len(idx.order))
	for _, n := range idx.order {
		out = append(out, idx.types[n])
	}
	return out
}

// Names returns all type names, builtins included, sorted.
func (idx *Index) Names() []string {
	out := make([]string, 0, len(idx.types))
	for n := range idx.types {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
