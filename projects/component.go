package projects

import (
	"github.com/go-logr/logr"

	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/schema"
)

// Component is the typesafe project accessors schema component for one
// configuration scope. The probe runs once in NewComponent.
type Component struct {
	root *model.Type
	opts Options
	log  logr.Logger
}

// NewComponent probes loader for the root accessor. Absence of the root
// accessor is not an error and yields an inert component.
func NewComponent(loader model.Loader, opts Options) (*Component, error) {
	opts = opts.withDefaults()
	root, err := Probe(loader, opts.RootAccessor)
	if err != nil {
		return nil, err
	}
	c := &Component{root: root, opts: opts, log: opts.Logger.WithName("projects")}
	if root == nil {
		c.log.V(1).Info("root accessor not found, typesafe project accessors disabled", "name", opts.RootAccessor)
	}
	return c, nil
}

// Enabled reports whether the root accessor was found.
func (c *Component) Enabled() bool { return c.root != nil }

// Root returns the root accessor type, or nil when disabled.
func (c *Component) Root() *model.Type { return c.root }

func (c *Component) PropertyExtractors() []schema.PropertyExtractor {
	if c.root == nil {
		return nil
	}
	return []schema.PropertyExtractor{
		Extractor{},
		schema.ExtensionProperties{
			c.opts.TopLevelReceiver: {TopLevelProperty(c.root, c.opts.PropertyName)},
		},
	}
}

func (c *Component) TypeDiscoveries() []schema.TypeDiscovery {
	if c.root == nil {
		return nil
	}
	return []schema.TypeDiscovery{
		schema.FixedTypeDiscovery{From: c.opts.TopLevelReceiver, Types: []*model.Type{c.root}},
		Discovery{Log: c.log},
	}
}

func (c *Component) RuntimePropertyResolvers() []schema.RuntimePropertyResolver {
	return []schema.RuntimePropertyResolver{RuntimeResolver{Enabled: c.root != nil, Name: c.opts.PropertyName}}
}
