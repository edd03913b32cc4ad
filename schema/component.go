package schema

// Component is an evaluation schema component: a bundle of contributors that
// a feature plugs into schema building and runtime resolution.
type Component interface {
	PropertyExtractors() []PropertyExtractor
	TypeDiscoveries() []TypeDiscovery
	RuntimePropertyResolvers() []RuntimePropertyResolver
}

// Contributors is a plain Component.
type Contributors struct {
	Extractors  []PropertyExtractor
	Discoveries []TypeDiscovery
	Resolvers   []RuntimePropertyResolver
}

func (c Contributors) PropertyExtractors() []PropertyExtractor             { return c.Extractors }
func (c Contributors) TypeDiscoveries() []TypeDiscovery                    { return c.Discoveries }
func (c Contributors) RuntimePropertyResolvers() []RuntimePropertyResolver { return c.Resolvers }
