// Package projects brings typesafe project accessors into the declarative DSL
// schema when generated accessor types are present in the scope:
//
//   - the top-level receiver gains a read-only "projects" property typed as
//     the root accessor;
//   - type discovery walks the generated accessor containers through their
//     accessor-typed getters and admits every supertype on the way;
//   - each accessor container exposes its accessor-typed getters as
//     properties;
//   - at runtime, reading "projects" on a project returns its "projects"
//     extension.
//
// When the root accessor cannot be loaded the feature is inert: no extractors
// or discoveries are contributed and the runtime resolver never resolves.
package projects
