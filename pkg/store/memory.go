package store

import (
	"context"
	"sort"
	"sync"

	"github.com/graphlift/graphlift/pkg/errors"
)

// MemoryStore is an in-process Store for tests and single-process use.
type MemoryStore struct {
	mu     sync.RWMutex
	graphs map[string]*StoredGraph
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{graphs: make(map[string]*StoredGraph)}
}

// Save persists sg. Saving an existing id is an error.
func (s *MemoryStore) Save(ctx context.Context, sg *StoredGraph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[sg.ID]; ok {
		return errors.New(errors.ErrCodeStore, "graph %s already stored", sg.ID)
	}
	s.graphs[sg.ID] = sg
	return nil
}

// Get returns the stored graph with its full payload.
func (s *MemoryStore) Get(ctx context.Context, id string) (*StoredGraph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sg, ok := s.graphs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
	}
	copied := *sg
	return &copied, nil
}

// List returns storage metadata for all graphs, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]StoredGraph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StoredGraph, 0, len(s.graphs))
	for _, sg := range s.graphs {
		entry := *sg
		entry.Graph = nil
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a stored graph.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[id]; !ok {
		return errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
	}
	delete(s.graphs, id)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
