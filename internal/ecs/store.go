package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

// Store is the entity registry. Each entity owns exactly one record, an
// arbitrary value retrieved by type with Get, plus any number of components
// keyed by ComponentType.
type Store struct {
	nextID     EntityID
	records    map[EntityID]any
	components map[ComponentType]map[EntityID]Component
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nextID:     1,
		records:    make(map[EntityID]any),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// Create stores v under a freshly minted ID.
func (s *Store) Create(v any) EntityID {
	id := s.nextID
	s.nextID++
	s.records[id] = v
	return id
}

// Exists reports whether id refers to a live entity.
func (s *Store) Exists(id EntityID) bool {
	_, ok := s.records[id]
	return ok
}

// Len returns the number of live entities.
func (s *Store) Len() int { return len(s.records) }

// IDs returns every live entity in ascending order.
func (s *Store) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Remove deletes the entity's record and all its components. The ID stays
// invalid forever.
func (s *Store) Remove(id EntityID) error {
	if _, ok := s.records[id]; !ok {
		return &LookupError{ID: id, Err: ErrNotFound}
	}
	delete(s.records, id)
	for _, store := range s.components {
		delete(store, id)
	}
	return nil
}

// Replace swaps the record stored under id.
func (s *Store) Replace(id EntityID, v any) error {
	if _, ok := s.records[id]; !ok {
		return &LookupError{ID: id, Err: ErrNotFound}
	}
	s.records[id] = v
	return nil
}

// Get returns the record of id as a T. T may be a concrete type (store
// pointers for mutable access) or an interface the record implements.
func Get[T any](s *Store, id EntityID) (T, error) {
	var zero T
	rec, ok := s.records[id]
	if !ok {
		return zero, &LookupError{ID: id, Want: typeName[T](), Err: ErrNotFound}
	}
	v, ok := rec.(T)
	if !ok {
		return zero, &LookupError{
			ID:   id,
			Want: typeName[T](),
			Got:  fmt.Sprintf("%T", rec),
			Err:  ErrTypeMismatch,
		}
	}
	return v, nil
}

// MustGet is Get for callers that treat a failed lookup as a bug. It panics.
func MustGet[T any](s *Store, id EntityID) T {
	v, err := Get[T](s, id)
	if err != nil {
		panic(err)
	}
	return v
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Add attaches a component to a live entity, replacing any previous
// component of the same type.
func (s *Store) Add(id EntityID, c Component) error {
	if !s.Exists(id) {
		return &LookupError{ID: id, Err: ErrNotFound}
	}
	t := c.Type()
	if s.components[t] == nil {
		s.components[t] = make(map[EntityID]Component)
	}
	s.components[t][id] = c
	return nil
}

// Component returns the component of the given type for entity id, or nil.
func (s *Store) Component(id EntityID, t ComponentType) Component {
	store := s.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// RemoveComponent detaches a component from an entity.
func (s *Store) RemoveComponent(id EntityID, t ComponentType) {
	if store := s.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (s *Store) Has(id EntityID, t ComponentType) bool {
	return s.Component(id, t) != nil
}

// Query returns, in ascending order, all live entities that have every
// listed component type.
func (s *Store) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(s.components[t]) < len(s.components[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range s.components[smallest] {
		if !s.Exists(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t != smallest && !s.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
