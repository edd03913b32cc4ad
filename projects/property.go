package projects

import (
	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/schema"
)

// TopLevelProperty describes the navigation property injected into the
// top-level receiver. An empty name selects PropertyName.
func TopLevelProperty(root *model.Type, name string) schema.Property {
	if name == "" {
		name = PropertyName
	}
	return schema.Property{
		Name:       name,
		Type:       root,
		Mode:       schema.ReadOnly,
		HasDefault: true,
	}
}
