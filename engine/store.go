package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/vi-arena/core"
)

// Store is a generic container for one entity kind
// Iteration order is insertion order; removal preserves the order of the rest
type Store[T any] struct {
	mu       sync.RWMutex
	values   map[core.Entity]T
	entities []core.Entity
}

// NewStore creates an empty store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:   make(map[core.Entity]T),
		entities: make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates the value for e; updates keep e's position
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.values[e] = val
}

// Get returns the value for e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[e]
	return val, ok
}

// Remove deletes e; a missing entity is a no-op
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		return
	}
	delete(s.values, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// RemoveBatch deletes several entities in one compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, e := range entities {
		if _, exists := s.values[e]; exists {
			delete(s.values, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}
	s.entities = slices.DeleteFunc(s.entities, func(e core.Entity) bool {
		_, keep := s.values[e]
		return !keep
	})
}

// Has reports whether e is present
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[e]
	return ok
}

// Entities returns a copy of the entity list in store order
// Safe to range over while the store is modified
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entities)
}

// Values returns copies of all values in store order
func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, s.values[e])
	}
	return out
}

// Count returns the number of entities
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes everything
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
