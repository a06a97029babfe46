// Package registry provides an id-keyed store that refuses to overwrite entries.
package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when inserting into an occupied id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNotFound is returned when looking up an id that was never inserted.
	ErrNotFound = errors.New("id not found")
)

// Registry maps ids to values and remembers insertion order.
// It is not safe for concurrent writers; concurrent reads are fine once writes stop.
type Registry[K comparable, V any] struct {
	items map[K]V
	order []K
}

// New constructs an empty Registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{items: make(map[K]V)}
}

// Insert stores v under id. An occupied id is left untouched and ErrDuplicateID is returned.
func (r *Registry[K, V]) Insert(id K, v V) error {
	if _, exists := r.items[id]; exists {
		return fmt.Errorf("insert %v: %w", id, ErrDuplicateID)
	}
	r.items[id] = v
	r.order = append(r.order, id)
	return nil
}

// Get returns the value stored under id or ErrNotFound.
func (r *Registry[K, V]) Get(id K) (V, error) {
	v, ok := r.items[id]
	if !ok {
		var zero V
		return zero, fmt.Errorf("get %v: %w", id, ErrNotFound)
	}
	return v, nil
}

// Has reports whether id was inserted.
func (r *Registry[K, V]) Has(id K) bool {
	_, ok := r.items[id]
	return ok
}

// Len returns the number of stored values.
func (r *Registry[K, V]) Len() int {
	return len(r.order)
}

// Keys returns a copy of the ids in insertion order.
func (r *Registry[K, V]) Keys() []K {
	return append([]K(nil), r.order...)
}

// All returns the values in insertion order.
func (r *Registry[K, V]) All() []V {
	res := make([]V, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.items[id])
	}
	return res
}
