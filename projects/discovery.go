package projects

import (
	"github.com/go-logr/logr"

	"github.com/reoring/declschema/internal/walk"
	"github.com/reoring/declschema/model"
)

// Discovery computes the types to admit from an accessor container: the
// closure over accessor-typed getters, then the closure over supertypes of
// everything found. The universal root supertype is never expanded or
// returned.
type Discovery struct {
	Log logr.Logger
}

func (d Discovery) TypesToVisitFrom(t *model.Type) []*model.Type {
	if !isAccessor(t) {
		return nil
	}
	log := d.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	reachable := walk.Closure([]*model.Type{t}, func(cur *model.Type) []*model.Type {
		ps := accessorProperties(cur, nil)
		if len(ps) == 0 {
			log.V(2).Info("accessor container exposes no accessor-typed getters", "type", cur.Name)
		}
		out := make([]*model.Type, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Type)
		}
		return out
	})

	all := walk.Closure(reachable, supertypes)
	log.V(1).Info("discovered accessor types", "from", t.Name, "reachable", len(reachable), "total", len(all))
	return all
}
