package projects

import (
	"errors"

	"github.com/reoring/declschema/model"
)

// Probe loads the root accessor type. It returns (nil, nil) when the loader
// does not know the name; any other load failure is returned unchanged.
func Probe(loader model.Loader, rootAccessor string) (*model.Type, error) {
	if rootAccessor == "" {
		rootAccessor = DefaultRootAccessor
	}
	t, err := loader.Load(rootAccessor)
	if err != nil {
		if errors.Is(err, model.ErrTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
