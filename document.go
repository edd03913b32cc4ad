package declschema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/declschema/catalog"
	"github.com/reoring/declschema/model"
	"github.com/reoring/declschema/schema"
)

// Document is the serializable form of a Schema.
type Document struct {
	TopLevel string    `yaml:"topLevel" json:"topLevel"`
	Types    []TypeDoc `yaml:"types" json:"types"`
}

// TypeDoc describes one schema type.
type TypeDoc struct {
	Name       string        `yaml:"name" json:"name"`
	Supertypes []string      `yaml:"supertypes,omitempty" json:"supertypes,omitempty"`
	Properties []PropertyDoc `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// PropertyDoc describes one schema property.
type PropertyDoc struct {
	Name             string   `yaml:"name" json:"name"`
	Type             string   `yaml:"type" json:"type"`
	Mode             string   `yaml:"mode" json:"mode"`
	HasDefault       bool     `yaml:"hasDefault,omitempty" json:"hasDefault,omitempty"`
	Hidden           bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	DirectAccessOnly bool     `yaml:"directAccessOnly,omitempty" json:"directAccessOnly,omitempty"`
	ClaimedFunctions []string `yaml:"claimedFunctions,omitempty" json:"claimedFunctions,omitempty"`
}

// Describe converts s into a Document. Supertype lists omit the universal
// root.
func Describe(s *schema.Schema) Document {
	doc := Document{TopLevel: s.TopLevel.Name}
	for _, st := range s.Types {
		td := TypeDoc{Name: st.Type.Name}
		for _, sup := range st.Type.Supertypes {
			if !sup.IsAny() {
				td.Supertypes = append(td.Supertypes, sup.Name)
			}
		}
		for _, p := range st.Properties {
			td.Properties = append(td.Properties, PropertyDoc{
				Name:             p.Name,
				Type:             typeName(p.Type),
				Mode:             p.Mode.String(),
				HasDefault:       p.HasDefault,
				Hidden:           p.Hidden,
				DirectAccessOnly: p.DirectAccessOnly,
				ClaimedFunctions: p.ClaimedFunctions,
			})
		}
		doc.Types = append(doc.Types, td)
	}
	return doc
}

func typeName(t *model.Type) string {
	if t == nil {
		return model.Any
	}
	return t.Name
}

// Encode renders the document as YAML or indented JSON.
func (d Document) Encode(format catalog.Format) ([]byte, error) {
	switch format {
	case catalog.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("declschema: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("declschema: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case catalog.FormatJSON:
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("declschema: encode json: %w", err)
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownFormat, format)
	}
}
