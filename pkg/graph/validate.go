package graph

import "github.com/graphlift/graphlift/pkg/errors"

// Validate checks the structural invariants every converter guarantees
// by construction. It is applied to graphs loaded from external sources
// (files, API payloads) before they reach a renderer or store.
//
// The invariants:
//   - node ids are non-empty and unique within the graph
//   - node types are non-empty
//   - every edge references two existing node ids
//   - no section is empty (converters omit empty sections entirely)
func (g *Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Nodes))

	for _, n := range g.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidGraph, "node with empty id (title %q)", n.Title)
		}
		if _, dup := seen[n.ID]; dup {
			return errors.New(errors.ErrCodeInvalidGraph, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}

		if n.Type == "" {
			return errors.New(errors.ErrCodeInvalidGraph, "node %q has no type", n.ID)
		}
		for _, s := range n.Sections {
			if len(s.Items) == 0 {
				return errors.New(errors.ErrCodeInvalidGraph, "node %q has empty section %q", n.ID, s.Name)
			}
		}
	}

	for _, e := range g.Edges {
		if _, ok := seen[e.Source]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge references unknown source %q", e.Source)
		}
		if _, ok := seen[e.Target]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge references unknown target %q", e.Target)
		}
		if e.Type == "" {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %s -> %s has no type", e.Source, e.Target)
		}
	}

	return nil
}

// Stats summarizes a graph for status output.
type Stats struct {
	Nodes     int
	Edges     int
	NodeTypes map[NodeType]int
	EdgeTypes map[EdgeType]int
}

// ComputeStats tallies node and edge counts by type.
func (g *Graph) ComputeStats() Stats {
	s := Stats{
		Nodes:     len(g.Nodes),
		Edges:     len(g.Edges),
		NodeTypes: make(map[NodeType]int),
		EdgeTypes: make(map[EdgeType]int),
	}
	for _, n := range g.Nodes {
		s.NodeTypes[n.Type]++
	}
	for _, e := range g.Edges {
		s.EdgeTypes[e.Type]++
	}
	return s
}
