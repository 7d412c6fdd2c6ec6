package graph

import (
	"encoding/json"
	"time"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// NodeType classifies a node for the visualizer.
type NodeType string

// Node types. The set is closed: converters never invent ad-hoc kinds,
// so a renderer can exhaustively style them.
const (
	NodeClass     NodeType = "class"
	NodeInterface NodeType = "interface"
	NodeComponent NodeType = "component"
	NodeFile      NodeType = "file"
	NodeApp       NodeType = "app"
	NodeModel     NodeType = "model"
	NodeView      NodeType = "view"
	NodeModule    NodeType = "module"
	NodeFunction  NodeType = "function"
)

// EdgeType classifies a directed relationship between two nodes.
type EdgeType string

// Edge types shared across ecosystems. Converters may additionally emit
// ecosystem-specific relationship kinds (lowercased) as edge types.
const (
	EdgeDependency     EdgeType = "dependency"
	EdgeInheritance    EdgeType = "inheritance"
	EdgeImplementation EdgeType = "implementation"
	EdgeContains       EdgeType = "contains"
	EdgeUses           EdgeType = "uses"
	EdgeRenders        EdgeType = "renders"
)

// =============================================================================
// Graph - Unified Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for converted dependency
// graphs. Used for API responses, storage, caching, and as the input to
// every renderer.
//
// The format is human-readable and designed for round-trip fidelity:
// convert → export → re-import produces an identical document except for
// nothing at all (conversion timestamps are part of the document).
type Graph struct {
	Nodes []Node   `json:"nodes" bson:"nodes"`
	Edges []Edge   `json:"edges" bson:"edges"`
	Meta  Metadata `json:"metadata" bson:"metadata"`
}

// Metadata describes where a graph came from. Source carries the input
// document's own metadata block through unchanged; everything else is
// stamped by the converter.
type Metadata struct {
	Ecosystem   string    `json:"ecosystem" bson:"ecosystem"`
	Project     string    `json:"project,omitempty" bson:"project,omitempty"`
	ConvertedAt time.Time `json:"convertedAt" bson:"convertedAt"`
	Source      Attrs     `json:"source,omitempty" bson:"source,omitempty"`
}

// Attrs is the extensible attribute bag attached to nodes, sections,
// items, and edges. Values are scalars or small nested maps; consumers
// must tolerate absent keys.
type Attrs map[string]any

// =============================================================================
// Node - Boxed Entity with Detail Sections
// =============================================================================

// Node is one box in the rendered graph: an entity with a display title,
// a type from the closed set, and ordered detail sections.
type Node struct {
	ID       string    `json:"id" bson:"id"`
	Title    string    `json:"title" bson:"title"`
	Type     NodeType  `json:"type" bson:"type"`
	Sections []Section `json:"sections,omitempty" bson:"sections,omitempty"`
	Attrs    Attrs     `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Section is a named group of detail lines inside a node. Converters
// omit sections entirely instead of emitting them empty.
type Section struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Items []Item `json:"items" bson:"items"`
	Attrs Attrs  `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Item is a single pre-rendered detail line. Value is display-ready;
// structured facts ride in Attrs for consumers that need them.
type Item struct {
	ID    string `json:"id" bson:"id"`
	Value string `json:"value" bson:"value"`
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
	Attrs Attrs  `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// =============================================================================
// Edge - Typed Directed Relationship
// =============================================================================

// Edge is a directed, typed relationship between two nodes of the same
// graph. Source and Target always reference existing node ids.
type Edge struct {
	Source string   `json:"source" bson:"source"`
	Target string   `json:"target" bson:"target"`
	Type   EdgeType `json:"type" bson:"type"`
	Attrs  Attrs    `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// =============================================================================
// Construction
// =============================================================================

// New creates an empty graph stamped with the ecosystem tag, project
// name, and current wall-clock conversion time.
func New(ecosystem, project string) *Graph {
	return &Graph{
		Nodes: []Node{},
		Edges: []Edge{},
		Meta: Metadata{
			Ecosystem:   ecosystem,
			Project:     project,
			ConvertedAt: time.Now().UTC(),
		},
	}
}

// AddNode appends a node. Callers are responsible for id uniqueness;
// converters guarantee it by deriving ids from naturally unique names.
func (g *Graph) AddNode(n Node) {
	g.Nodes = append(g.Nodes, n)
}

// AddEdge appends an edge between two already-registered node ids.
// Converters never call this with unresolved endpoints: their second
// pass resolves names through a Lookup and drops what does not resolve.
func (g *Graph) AddEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}

// AddEdges appends a computed edge list, typically the output of a
// converter's second pass.
func (g *Graph) AddEdges(edges []Edge) {
	g.Edges = append(g.Edges, edges...)
}

// NodeByID returns the node with the given id, if present.
func (g *Graph) NodeByID(id string) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// =============================================================================
// Lookup - Pass-1 Name Index
// =============================================================================

// Lookup maps the natural keys entities use to refer to each other
// (display names, file paths, namespaced keys) to node ids. Converters
// fill it while registering nodes and treat it as read-only afterwards.
type Lookup map[string]string

// Add registers a natural key for a node id. Later registrations of the
// same key win, matching flat-name resolution semantics.
func (l Lookup) Add(key, nodeID string) {
	if key == "" {
		return
	}
	l[key] = nodeID
}

// Resolve returns the node id registered for key.
func (l Lookup) Resolve(key string) (string, bool) {
	id, ok := l[key]
	return id, ok
}

// =============================================================================
// Helpers
// =============================================================================

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
