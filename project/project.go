// Package project defines the configuration-unit contract seen by the
// runtime resolvers: a Project exposes named extensions.
package project

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// TopLevelReceiver is the qualified name of the fixed root type of a
// project's declarative DSL scope.
const TopLevelReceiver = "declschema.project.ProjectTopLevelReceiver"

// ErrUnknownExtension is returned by GetByName for names never added.
var ErrUnknownExtension = errors.New("project: unknown extension")

// ErrDuplicateExtension is returned by Add for names already present.
var ErrDuplicateExtension = errors.New("project: extension already registered")

// ExtensionContainer is a named-extension lookup.
type ExtensionContainer interface {
	GetByName(name string) (any, error)
}

// Project is a configuration unit.
type Project interface {
	Path() string
	Extensions() ExtensionContainer
}

// Extensions is a map-backed ExtensionContainer safe for concurrent use.
type Extensions struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewExtensions returns an empty container.
func NewExtensions() *Extensions {
	return &Extensions{items: map[string]any{}}
}

// Add registers an extension under name.
func (e *Extensions) Add(name string, ext any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.items == nil {
		e.items = map[string]any{}
	}
	if _, ok := e.items[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateExtension, name)
	}
	e.items[name] = ext
	return nil
}

// GetByName implements ExtensionContainer.
func (e *Extensions) GetByName(name string) (any, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
	}
	return v, nil
}

// Names returns the registered extension names, sorted.
func (e *Extensions) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.items))
	for n := range e.items {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Unit is a minimal Project implementation. The zero value is a project at
// the empty path with no extensions. A Unit must not be copied after use.
type Unit struct {
	path string
	ext  Extensions
}

// New returns a project at path with an empty extension container.
func New(path string) *Unit {
	return &Unit{path: path}
}

func (u *Unit) Path() string                   { return u.path }
func (u *Unit) Extensions() ExtensionContainer { return &u.ext }

// AddExtension registers an extension on the project.
func (u *Unit) AddExtension(name string, ext any) error { return u.ext.Add(name, ext) }
