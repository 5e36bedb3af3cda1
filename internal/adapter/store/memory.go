package store

import (
	"fmt"
	"sync"

	"natalia/internal/port"
)

// MemoryVectorStore is an in-memory VectorStore. It backs tests and runs
// where no index path is configured.
type MemoryVectorStore struct {
	mu        sync.RWMutex
	dimension int
	vectors   map[string]vectorEntry
}

func NewMemoryVectorStore(dimension int) *MemoryVectorStore {
	return &MemoryVectorStore{
		dimension: dimension,
		vectors:   make(map[string]vectorEntry),
	}
}

func (s *MemoryVectorStore) Upsert(items []port.VectorItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if len(item.Vector) != s.dimension {
			return fmt.Errorf("vector dimension mismatch: expected %d, got %d", s.dimension, len(item.Vector))
		}
		s.vectors[item.ID] = vectorEntry{
			vector:   item.Vector,
			metadata: item.Metadata,
		}
	}
	return nil
}

func (s *MemoryVectorStore) Search(query []float32, k int) ([]port.VectorResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(query) != s.dimension {
		return nil, fmt.Errorf("query dimension mismatch: expected %d, got %d", s.dimension, len(query))
	}

	return searchEntries(s.vectors, query, k), nil
}

func (s *MemoryVectorStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors), nil
}

func (s *MemoryVectorStore) Close() error {
	return nil
}
