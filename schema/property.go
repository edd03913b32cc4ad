package schema

import "github.com/reoring/declschema/model"

// PropertyMode describes whether a property can be assigned from scripts.
type PropertyMode int

const (
	ReadWrite PropertyMode = iota
	ReadOnly
	WriteOnly
)

func (m PropertyMode) String() string {
	switch m {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return "unknown"
	}
}

// Property is a navigable property collected for a schema type.
type Property struct {
	Name             string
	Type             *model.Type
	Mode             PropertyMode
	HasDefault       bool
	Hidden           bool
	DirectAccessOnly bool
	// ClaimedFunctions lists functions absorbed by this property so that
	// function extractors skip them (e.g. the getter backing it).
	ClaimedFunctions []string
}

// ReadOnly reports whether the mode is ReadOnly.
func (p Property) ReadOnly() bool { return p.Mode == ReadOnly }

// NamePredicate filters property names. A nil predicate accepts every name.
type NamePredicate func(name string) bool

// Accept applies the predicate, treating nil as accept-all.
func (p NamePredicate) Accept(name string) bool { return p == nil || p(name) }

// PropertyExtractor contributes properties to a type.
type PropertyExtractor interface {
	ExtractProperties(t *model.Type, accept NamePredicate) []Property
}

// PropertyExtractorFunc adapts a function to PropertyExtractor.
type PropertyExtractorFunc func(t *model.Type, accept NamePredicate) []Property

func (f PropertyExtractorFunc) ExtractProperties(t *model.Type, accept NamePredicate) []Property {
	return f(t, accept)
}

// ExtensionProperties adds fixed properties to specific receiver types,
// keyed by qualified type name.
type ExtensionProperties map[string][]Property

func (e ExtensionProperties) ExtractProperties(t *model.Type, accept NamePredicate) []Property {
	if t == nil {
		return nil
	}
	var out []Property
	for _, p := range e[t.Name] {
		if accept.Accept(p.Name) {
			out = append(out, p)
		}
	}
	return out
}
