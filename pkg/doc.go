// Package pkg provides the core libraries for Graphlift dependency-graph
// conversion.
//
// # Overview
//
// Graphlift normalizes ecosystem-specific dependency-analysis exports
// (React component analyses, Java class hierarchies, Django project
// dumps) into one unified entity/relationship graph that a generic
// visualizer can consume. The pkg directory is organized into three
// main areas:
//
//  1. [convert] - Format detection and per-ecosystem converters
//  2. [graph] - The unified graph model and its serialization
//  3. [pipeline] - Orchestration (convert → cache → render)
//
// # Architecture
//
// The typical data flow through Graphlift:
//
//	Analyzer export (JSON)
//	         ↓
//	    [convert] package (detect format, convert to graph)
//	         ↓
//	    [graph] package (unified nodes/sections/edges)
//	         ↓
//	    [render] package (DOT → SVG/PNG via Graphviz)
//
// # Quick Start
//
// Convert an analysis document and render it:
//
//	import (
//	    "github.com/graphlift/graphlift/pkg/convert"
//	    "github.com/graphlift/graphlift/pkg/io"
//	    "github.com/graphlift/graphlift/pkg/render"
//	)
//
//	// 1. Load and convert
//	doc, _ := io.ImportFile("analysis.json")
//	g, _ := convert.Convert(doc)
//
//	// 2. Render to SVG
//	dot := render.ToDOT(g, render.Options{})
//	svg, _ := render.RenderSVG(dot)
//
// # Main Packages
//
// ## Conversion Core
//
// [convert] - Format detection over top-level document shape plus the
// conversion facade. Each ecosystem has its own subpackage with typed
// input records and a two-pass converter (register nodes, then resolve
// edges through a name lookup).
//
// [graph] - The unified serialization format: typed nodes with ordered
// detail sections, typed directed edges, and graph metadata. JSON field
// names are the compatibility surface with the visualizer.
//
// [ident] - Deterministic identifier derivation shared by all
// converters.
//
// ## Infrastructure
//
// [cache] - Content-addressed result caching. FileCache for the CLI
// (XDG directory, hash-sharded), RedisCache for the server, NullCache
// for bypass.
//
// [store] - Graph persistence behind one interface: MemoryStore for
// tests and the default server, MongoStore for the durable archive, and
// a one-way Neo4j publisher for graph-database mirroring.
//
// [pipeline] - The convert-and-render pipeline used by both CLI and
// server, with caching keyed on input hashes.
//
// [config] - TOML server configuration with environment overrides.
//
// [errors] - Coded errors shared across package boundaries; HTTP and
// CLI surfaces map codes to status codes and exit messages.
//
// [observability] - Hook interfaces the server backs with Prometheus
// collectors; the core stays dependency-free.
//
// ## I/O and Rendering
//
// [io] - Reading analysis documents and writing graph JSON.
//
// [render] - DOT generation and Graphviz-backed SVG/PNG rasterization.
//
// [buildinfo] - ldflags-injected version metadata.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/convert/...      # Specific package
//	go test -run Example           # Examples only
//
// [convert]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/convert
// [graph]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/graph
// [ident]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/ident
// [cache]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/cache
// [store]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/store
// [pipeline]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/config
// [errors]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/errors
// [observability]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/observability
// [io]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/io
// [render]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/graphlift/graphlift/pkg/buildinfo
package pkg
