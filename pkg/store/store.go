// Package store provides persistence for converted graphs.
//
// A Store holds immutable snapshots: each stored graph gets a fresh id
// and is never updated in place. Two implementations exist, MemoryStore
// for tests and single-process use, and MongoStore for deployments.
// Neo4jPublisher is a separate write-only sink that mirrors a graph's
// nodes and edges into Neo4j for ad-hoc Cypher querying; it does not
// implement Store.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/graphlift/graphlift/pkg/graph"
)

// StoredGraph wraps a converted graph with storage metadata.
//
// List operations return StoredGraph values without the Graph payload
// so that listings stay cheap even when graphs are large.
type StoredGraph struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name" bson:"name"`
	Ecosystem string       `json:"ecosystem" bson:"ecosystem"`
	NodeCount int          `json:"nodeCount" bson:"nodeCount"`
	EdgeCount int          `json:"edgeCount" bson:"edgeCount"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
	Graph     *graph.Graph `json:"graph,omitempty" bson:"graph,omitempty"`
}

// NewStoredGraph stamps g with a fresh id and storage metadata. The
// name falls back to the graph's project name, then to its ecosystem,
// so stored entries are always addressable by something human-readable.
func NewStoredGraph(name string, g *graph.Graph) *StoredGraph {
	if name == "" {
		name = g.Meta.Project
	}
	if name == "" {
		name = g.Meta.Ecosystem
	}
	return &StoredGraph{
		ID:        uuid.NewString(),
		Name:      name,
		Ecosystem: g.Meta.Ecosystem,
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
		CreatedAt: time.Now().UTC(),
		Graph:     g,
	}
}

// Store persists converted graphs.
//
// Implementations must be safe for concurrent use. Get and Delete fail
// with GRAPH_NOT_FOUND when no graph has the given id; backend failures
// carry STORE_ERROR.
type Store interface {
	// Save persists sg under sg.ID. Saving an id that already exists
	// is an error: stored graphs are immutable snapshots.
	Save(ctx context.Context, sg *StoredGraph) error

	// Get returns the stored graph with the full Graph payload.
	Get(ctx context.Context, id string) (*StoredGraph, error)

	// List returns storage metadata for all graphs, newest first,
	// without Graph payloads.
	List(ctx context.Context) ([]StoredGraph, error)

	// Delete removes a stored graph.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
