// Package graph provides the unified graph model and its serialization.
//
// This package defines the canonical wire format for Graphlift's output:
// the ecosystem-neutral node/edge document that every converter produces
// and every consumer (renderer, store, API client) reads.
//
// # Core Types
//
//   - [Graph]: nodes, edges, and document metadata
//   - [Node]: one boxed entity with ordered detail [Section]s of [Item]s
//   - [Edge]: typed directed relationship between two node ids
//   - [Lookup]: the natural-key → node-id index built in a converter's
//     first pass and consumed by its second
//
// # Wire Format
//
// Graphs use a sectioned node-link JSON format:
//
//	{
//	  "nodes": [
//	    {"id": "component_App", "title": "App", "type": "component",
//	     "sections": [{"id": "sec_App_Props", "name": "Props",
//	                   "items": [{"id": "prop_App_title", "value": "title: string (required)"}]}]}
//	  ],
//	  "edges": [{"source": "component_App", "target": "component_Header", "type": "renders"}],
//	  "metadata": {"ecosystem": "react", "convertedAt": "2025-11-02T10:00:00Z"}
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("graph.json")   // File → *Graph (validated)
//	graph.WriteFile(g, "graph.json")       // *Graph → File
//	data, _ := graph.Marshal(g)            // *Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)
//
// # Invariants
//
// Converters guarantee, and [Graph.Validate] re-checks for externally
// loaded documents:
//
//   - node ids are unique within a graph
//   - every edge endpoint references an existing node
//   - empty sections are omitted, never serialized
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
