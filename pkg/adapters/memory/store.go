// Package memory provides an in-memory exploration store, used for tests
// and for hosts that persist through their own channel.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// Store implements ports.ExplorationStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*domain.Exploration
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Exploration),
	}
}

// Save persists a deep copy of the exploration, so later edits to the
// caller's document never leak into the store.
func (s *Store) Save(ctx context.Context, id string, exp *domain.Exploration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = exp.Clone()
	return nil
}

// Load retrieves a deep copy of the stored exploration.
func (s *Store) Load(ctx context.Context, id string) (*domain.Exploration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrExplorationNotFound, id)
	}
	return exp.Clone(), nil
}

// Delete removes the exploration.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored exploration IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
