// Package schema defines the schema-building extension points of the
// declarative DSL and a reference Builder that drives them.
//
// Contributors come in three shapes:
//
//   - PropertyExtractor: extract(type, namePredicate) -> properties
//   - TypeDiscovery: typesToVisitFrom(type) -> types
//   - RuntimePropertyResolver: resolve a script-time read or write on a
//     concrete receiver type
//
// A Component bundles contributors of all three shapes. Builder folds the
// extractors and discoveries of a set of components into a Schema rooted at
// the top-level receiver type; ResolverChain combines their runtime
// resolvers.
package schema
