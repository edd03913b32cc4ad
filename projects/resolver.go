package projects

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reoring/declschema/project"
	"github.com/reoring/declschema/schema"
)

// ErrNotAProject is returned by a resolved read invoked on a receiver that
// does not implement project.Project.
var ErrNotAProject = errors.New("projects: receiver is not a project")

var projectType = reflect.TypeOf((*project.Project)(nil)).Elem()

// RuntimeResolver resolves reads of the navigation property on projects to
// their extension of the same name. Writes never resolve. A disabled
// resolver resolves nothing.
type RuntimeResolver struct {
	Enabled bool
	Name    string
}

func (r RuntimeResolver) ResolvePropertyRead(receiver reflect.Type, name string) schema.ReadResolution {
	prop := r.Name
	if prop == "" {
		prop = PropertyName
	}
	if !r.Enabled || receiver == nil || name != prop || !receiver.Implements(projectType) {
		return schema.UnresolvedRead
	}
	return schema.ResolvedRead(func(receiver any) (any, error) {
		p, ok := receiver.(project.Project)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrNotAProject, receiver)
		}
		return p.Extensions().GetByName(prop)
	})
}

func (RuntimeResolver) ResolvePropertyWrite(reflect.Type, string) schema.WriteResolution {
	return schema.UnresolvedWrite
}
