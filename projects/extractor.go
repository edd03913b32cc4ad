package projects

import (
	"github.com/reoring/declschema/internal/walk"
	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/schema"
)

// Extractor exposes the accessor-typed getters of an accessor container,
// declared or inherited, as read-only properties. Other members and
// non-accessor types yield nothing.
type Extractor struct{}

var accessorGetters = schema.GetterExtractor{
	Include: func(m model.Member) bool { return isAccessor(m.Type) },
}

func (Extractor) ExtractProperties(t *model.Type, accept schema.NamePredicate) []schema.Property {
	if !isAccessor(t) {
		return nil
	}
	return accessorProperties(t, accept)
}

// accessorProperties collects accessor-typed getters of t and its supertypes.
// A declaration on t shadows inherited ones of the same name.
func accessorProperties(t *model.Type, accept schema.NamePredicate) []schema.Property {
	var (
		ps   []schema.Property
		seen walk.Set[string]
	)
	for _, cur := range walk.Closure([]*model.Type{t}, supertypes) {
		for _, p := range accessorGetters.ExtractProperties(cur, accept) {
			if !seen.Add(p.Name) {
				continue
			}
			p.Mode = schema.ReadOnly
			p.HasDefault = true
			p.ClaimedFunctions = nil
			ps = append(ps, p)
		}
	}
	return ps
}

// supertypes lists the direct supertypes of t other than the universal root.
func supertypes(t *model.Type) []*model.Type {
	out := make([]*model.Type, 0, len(t.Supertypes))
	for _, st := range t.Supertypes {
		if st != nil && !st.IsAny() {
			out = append(out, st)
		}
	}
	return out
}
