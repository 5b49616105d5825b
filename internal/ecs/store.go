package ecs

import "fmt"

type remover interface {
	Remove(id EntityID)
}

// Store is a typed component arena keyed by entity id.
// An entity has the component exactly when its id is present.
type Store[T any] struct {
	name string
	data map[EntityID]*T
}

// NewStore creates an empty store; name is used in panic messages
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name: name,
		data: make(map[EntityID]*T, 256),
	}
}

// Set attaches c to the entity, replacing any previous value, and returns the stored copy
func (s *Store[T]) Set(id EntityID, c T) *T {
	p := &c
	s.data[id] = p
	return p
}

// Get returns the component if present
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

// MustGet returns the component and panics if the entity does not have it.
// Asking for a missing component is a programming error.
func (s *Store[T]) MustGet(id EntityID) *T {
	c, ok := s.data[id]
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", id, s.name))
	}
	return c
}

// Has reports whether the entity carries the component
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

// Remove detaches the component
func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

// Len returns the number of entities carrying the component
func (s *Store[T]) Len() int {
	return len(s.data)
}
