// Package declschema builds the static schema and runtime resolvers of a
// declarative configuration DSL scope, with typesafe project accessors
// brought in when generated accessor types are present.
//
// Design policy:
//   - Keep the composed entry points in the root package; contracts live in
//     schema/, type metadata in model/, the feature in projects/.
//   - Schema building never consults host reflection: types come from
//     model.Decl records, typically decoded from a catalog file.
//   - Absence of generated accessors is not an error.
//
// Typical usage:
//
//	cat, err := catalog.ReadFile("types.yaml")
//	scope, err := declschema.NewScope(cat.Types, declschema.Options{})
//	s, err := scope.Schema()
//	res := scope.Resolvers().ResolvePropertyRead(reflect.TypeOf(p), "projects")
package declschema
