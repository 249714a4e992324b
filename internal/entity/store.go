// internal/entity/store.go
package entity

import "go-survivors/internal/types"

// Store — хранилище компонентов одного типа.
// Порядок обхода совпадает с порядком добавления, поэтому «первый встреченный»
// в линейных поисках детерминирован.
type Store[T any] struct {
	components map[types.EntityID]T
	entities   []types.EntityID
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[types.EntityID]T),
		entities:   make([]types.EntityID, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(id types.EntityID, val T) {
	if _, exists := s.components[id]; !exists {
		s.entities = append(s.entities, id)
	}
	s.components[id] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(id types.EntityID) (T, bool) {
	val, ok := s.components[id]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.components[id]
	return ok
}

// Remove deletes the component, keeping the order of the rest.
func (s *Store[T]) Remove(id types.EntityID) {
	if _, exists := s.components[id]; !exists {
		return
	}
	delete(s.components, id)
	for i, e := range s.entities {
		if e == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a copy of entity ids in insertion order.
func (s *Store[T]) Entities() []types.EntityID {
	out := make([]types.EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[types.EntityID]T)
	s.entities = s.entities[:0]
}
