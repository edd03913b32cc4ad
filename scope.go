package declschema

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/reoring/declschema/internal/walk"
	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/project"
	"github.com/reoring/declschema/projects"
	"github.com/reoring/declschema/schema"
)

// Options configures a Scope.
type Options struct {
	// Projects configures typesafe project accessors. Its Logger defaults to
	// Logger.
	Projects projects.Options
	// TopLevelReceiver defaults to project.TopLevelReceiver.
	TopLevelReceiver string
	// Components are appended after the built-in ones.
	Components []schema.Component
	Logger     logr.Logger
}

// Scope is one configuration scope: its type index plus the schema
// components registered for it.
type Scope struct {
	Index    *model.Index
	Projects *projects.Component

	topLevel string
	builder  *schema.Builder
	log      logr.Logger
}

// NewScope indexes decls, classifying accessor containers, and registers the
// generic getter extractor, the projects component and any extra components.
// A missing root accessor leaves the projects component inert.
func NewScope(decls []model.Decl, opts Options) (*Scope, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	idx, err := model.Build(decls, model.WithClassifier(projects.Classifier(opts.Projects.Namespace)))
	if err != nil {
		return nil, err
	}
	return newScope(idx, opts, log)
}

// NewScopeFromIndex registers components over an existing index. The index
// must have been built with projects.Classifier for accessors to be found.
func NewScopeFromIndex(idx *model.Index, opts Options) (*Scope, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return newScope(idx, opts, log)
}

func newScope(idx *model.Index, opts Options, log logr.Logger) (*Scope, error) {
	top := opts.TopLevelReceiver
	if top == "" {
		top = project.TopLevelReceiver
	}
	popts := opts.Projects
	if popts.TopLevelReceiver == "" {
		popts.TopLevelReceiver = top
	}
	if popts.Logger.GetSink() == nil {
		popts.Logger = log
	}
	pc, err := projects.NewComponent(idx, popts)
	if err != nil {
		return nil, fmt.Errorf("declschema: projects component: %w", err)
	}
	components := []schema.Component{
		pc,
		schema.Contributors{Extractors: []schema.PropertyExtractor{schema.GetterExtractor{}}},
	}
	components = append(components, opts.Components...)
	return &Scope{
		Index:    idx,
		Projects: pc,
		topLevel: top,
		builder:  schema.NewBuilder(schema.BuilderOptions{Logger: log}, components...),
		log:      log,
	}, nil
}

// TopLevel returns the top-level receiver type.
func (s *Scope) TopLevel() (*model.Type, error) {
	return s.Index.Load(s.topLevel)
}

// Schema builds the schema rooted at the top-level receiver.
func (s *Scope) Schema() (*schema.Schema, error) {
	top, err := s.TopLevel()
	if err != nil {
		return nil, fmt.Errorf("declschema: top-level receiver: %w", err)
	}
	return s.builder.Build(top)
}

// Discover returns the accessor types admitted starting from name.
func (s *Scope) Discover(name string) ([]*model.Type, error) {
	t, err := s.Index.Load(name)
	if err != nil {
		return nil, err
	}
	return projects.Discovery{Log: s.log}.TypesToVisitFrom(t), nil
}

// Resolvers returns the runtime property resolvers of all components.
func (s *Scope) Resolvers() schema.ResolverChain { return s.builder.Resolvers() }

// Lint reports non-fatal findings about the accessor types of the scope.
// Schema building never fails on them.
func (s *Scope) Lint() Issues {
	var iss Issues
	if _, ok := s.Index.Lookup(s.topLevel); !ok {
		iss = append(iss, Issue{Code: CodeMissingTopLevel, Message: "top-level receiver " + s.topLevel + " is not declared"})
	}
	var admitted walk.Set[*model.Type]
	if root := s.Projects.Root(); root != nil {
		for _, t := range (projects.Discovery{}).TypesToVisitFrom(root) {
			admitted.Add(t)
		}
	}
	for _, t := range s.Index.Types() {
		if !t.Has(model.TraitAccessorContainer) {
			continue
		}
		if !hasGetter(t) {
			iss = append(iss, Issue{Type: t.Name, Code: CodeEmptyAccessor, Message: "accessor container declares or inherits no getters"})
		}
		if s.Projects.Enabled() && !admitted.Contains(t) {
			iss = append(iss, Issue{Type: t.Name, Code: CodeAccessorOutsideClosure, Message: "accessor container is not reachable from " + s.Projects.Root().Name})
		}
	}
	return iss
}

// hasGetter reports whether t or one of its supertypes declares a getter.
// Accessors of projects without children have no accessor-typed getters but
// still inherit the dependency getters of their supertypes.
func hasGetter(t *model.Type) bool {
	for _, cur := range walk.Closure([]*model.Type{t}, func(x *model.Type) []*model.Type { return x.Supertypes }) {
		for _, m := range cur.Members {
			if schema.IsGetter(m) {
				return true
			}
		}
	}
	return false
}
