// Package react converts React component-analyzer exports to the
// unified graph model.
//
// # Formats
//
// Two analyzer generations are supported:
//
//   - [Convert] handles the current format: a document with a
//     "components" mapping from component name to a record of props,
//     state, hooks, dependencies, and child components. Each component
//     becomes a "component" node.
//   - [ConvertLegacy] handles the legacy per-file format: a sequence of
//     file records with imports, exports, and explicit directional
//     dependency lists. Each file becomes a "file" node.
//
// Both formats share the "react" ecosystem tag.
//
// # Edge Resolution
//
// Dependency and child references resolve against the names and file
// paths of components in the same document. References to external
// libraries (anything without a node) are dropped, never emitted as
// dangling edges.
package react
