// Package catalog reads type catalogs: files listing model.Decl records for
// the generated accessor types and the DSL types they build on. YAML files
// may hold several documents; their type lists are concatenated.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/declschema/model"
)

// Format selects the catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for unsupported formats or file extensions.
	ErrUnknownFormat = errors.New("catalog: unknown format")
	// ErrTrailingData is returned when a JSON catalog holds more than one value.
	ErrTrailingData = errors.New("catalog: trailing data after json value")
)

// Catalog is a decoded type catalog.
type Catalog struct {
	Types []model.Decl `yaml:"types" json:"types"`
}

// Index resolves the catalog into a model.Index.
func (c *Catalog) Index(opts ...model.BuildOption) (*model.Index, error) {
	return model.Build(c.Types, opts...)
}

// Decode decodes data in the given format.
func Decode(data []byte, format Format) (*Catalog, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatJSON:
		return DecodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeYAML decodes one or more YAML documents. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	out := &Catalog{}
	for {
		var doc Catalog
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("catalog: decode yaml: %w", err)
		}
		out.Types = append(out.Types, doc.Types...)
	}
	return out, nil
}

// DecodeJSON decodes a JSON catalog. Unknown fields and content after the
// catalog value are rejected.
func DecodeJSON(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	out := &Catalog{}
	if err := dec.Decode(out); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return out, nil
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ReadFile reads and decodes a catalog file, inferring the format from its
// extension.
func ReadFile(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Decode(data, format)
}
