package schema

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/reoring/declschema/internal/walk"
	"github.com/reoring/declschema/model"
)

// ErrNoTopLevel is returned by Build when no top-level receiver is given.
var ErrNoTopLevel = errors.New("schema: top-level receiver type is nil")

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	Logger logr.Logger
}

// Builder folds component contributors into a Schema.
type Builder struct {
	extractors  []PropertyExtractor
	discoveries []TypeDiscovery
	resolvers   ResolverChain
	log         logr.Logger
}

// NewBuilder collects the contributors of components in order.
func NewBuilder(opts BuilderOptions, components ...Component) *Builder {
	b := &Builder{log: opts.Logger}
	if b.log.GetSink() == nil {
		b.log = logr.Discard()
	}
	for _, c := range components {
		if c == nil {
			continue
		}
		b.extractors = append(b.extractors, c.PropertyExtractors()...)
		b.discoveries = append(b.discoveries, c.TypeDiscoveries()...)
		b.resolvers = append(b.resolvers, c.RuntimePropertyResolvers()...)
	}
	return b
}

// Resolvers returns the runtime resolvers of all components as one chain.
func (b *Builder) Resolvers() ResolverChain { return append(ResolverChain(nil), b.resolvers...) }

// SchemaType is a type admitted into the schema with its properties.
type SchemaType struct {
	Type       *model.Type
	Properties []Property
}

// Property returns the property with the given name.
func (st *SchemaType) Property(name string) (Property, bool) {
	for _, p := range st.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Schema is the static schema of a DSL scope.
type Schema struct {
	TopLevel *model.Type
	Types    []*SchemaType // discovery order, top-level first
	byName   map[string]*SchemaType
}

// Type returns the schema record for a qualified type name.
func (s *Schema) Type(name string) (*SchemaType, bool) {
	st, ok := s.byName[name]
	return st, ok
}

// Build admits top and every type reachable from it through type discoveries
// and property value types. Builtin types are referenced but never admitted.
// Properties of a type are the union over all extractors, first name wins.
func (b *Builder) Build(top *model.Type) (*Schema, error) {
	if top == nil {
		return nil, ErrNoTopLevel
	}
	props := map[*model.Type][]Property{}
	next := func(t *model.Type) []*model.Type {
		ps := b.extract(t)
		props[t] = ps
		var out []*model.Type
		for _, d := range b.discoveries {
			out = append(out, d.TypesToVisitFrom(t)...)
		}
		for _, p := range ps {
			if p.Type != nil {
				out = append(out, p.Type)
			}
		}
		return admissible(out)
	}
	admitted := walk.Closure([]*model.Type{top}, next)

	s := &Schema{TopLevel: top, byName: make(map[string]*SchemaType, len(admitted))}
	for _, t := range admitted {
		st := &SchemaType{Type: t, Properties: props[t]}
		s.Types = append(s.Types, st)
		s.byName[t.Name] = st
		b.log.V(2).Info("admitted schema type", "type", t.Name, "properties", len(st.Properties))
	}
	b.log.V(1).Info("schema built", "topLevel", top.Name, "types", len(s.Types))
	return s, nil
}

func (b *Builder) extract(t *model.Type) []Property {
	var (
		out  []Property
		seen walk.Set[string]
	)
	for _, e := range b.extractors {
		for _, p := range e.ExtractProperties(t, nil) {
			if seen.Add(p.Name) {
				out = append(out, p)
			}
		}
	}
	return out
}

func admissible(ts []*model.Type) []*model.Type {
	out := ts[:0]
	for _, t := range ts {
		if t != nil && !t.Has(model.TraitBuiltin) {
			out = append(out, t)
		}
	}
	return out
}
