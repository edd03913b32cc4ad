package schema

import "github.com/reoring/declschema/model"

// TypeDiscovery names the types that must be admitted into the schema once t
// has been admitted.
type TypeDiscovery interface {
	TypesToVisitFrom(t *model.Type) []*model.Type
}

// TypeDiscoveryFunc adapts a function to TypeDiscovery.
type TypeDiscoveryFunc func(t *model.Type) []*model.Type

func (f TypeDiscoveryFunc) TypesToVisitFrom(t *model.Type) []*model.Type { return f(t) }

// FixedTypeDiscovery admits Types whenever the type named From is visited.
type FixedTypeDiscovery struct {
	From  string
	Types []*model.Type
}

func (d FixedTypeDiscovery) TypesToVisitFrom(t *model.Type) []*model.Type {
	if t == nil || t.Name != d.From {
		return nil
	}
	return append([]*model.Type(nil), d.Types...)
}
