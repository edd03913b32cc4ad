// Package model holds the declarative type metadata consumed by schema
// building.
//
// Generated code and hand-written configuration types are described by Decl
// records (name, supertypes, members). Build resolves a set of declarations
// into an Index of *Type handles whose references point directly at each
// other, so discovery and extraction never consult a host reflection API.
//
// Classification (for example "is this a generated accessor container") is
// performed once per type at Build time by Classifier functions and carried
// on the Type as Traits.
package model
