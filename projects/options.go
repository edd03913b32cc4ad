package projects

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/project"
)

const (
	// DefaultNamespace holds every generated accessor container.
	DefaultNamespace = "accessors.dm"
	// DefaultRootAccessor is the generated accessor of the root project.
	DefaultRootAccessor = DefaultNamespace + ".RootProjectAccessor"
	// PropertyName is the navigation identifier, both the schema property and
	// the project extension name.
	PropertyName = "projects"
)

// Options configures the component. Zero values select the defaults.
type Options struct {
	RootAccessor     string
	Namespace        string
	PropertyName     string
	TopLevelReceiver string
	Logger           logr.Logger
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.RootAccessor == "" {
		o.RootAccessor = o.Namespace + ".RootProjectAccessor"
	}
	if o.PropertyName == "" {
		o.PropertyName = PropertyName
	}
	if o.TopLevelReceiver == "" {
		o.TopLevelReceiver = project.TopLevelReceiver
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	return o
}

// Classifier tags types declared in namespace as accessor containers. An
// empty namespace selects DefaultNamespace.
func Classifier(namespace string) model.Classifier {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	prefix := namespace + "."
	return func(d model.Decl) model.Trait {
		if strings.HasPrefix(d.Name, prefix) {
			return model.TraitAccessorContainer
		}
		return 0
	}
}

func isAccessor(t *model.Type) bool { return t.Has(model.TraitAccessorContainer) }
