// Package memory keeps every collection in process memory.
//
// Each collection has its own RWMutex. Writers build a new slice and swap it
// in; readers receive copies, so callers never share backing arrays with the
// store.
package memory

import (
	"context"
	"slices"
	"sync"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/usecase/interfaces"
)

type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
	clone func(T) T
}

var _ interfaces.IRepository[struct{}] = (*Collection[struct{}])(nil)

// NewCollection returns an empty collection. clone may be nil for entities
// without reference fields.
func NewCollection[T any](idOf func(T) string, clone func(T) T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Collection[T]{idOf: idOf, clone: clone}
}

// Create prepends e; the newest entity is always first.
func (c *Collection[T]) Create(_ context.Context, e T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(c.idOf(e)) >= 0 {
		var zero T
		return zero, persistence.ErrAlreadyExists
	}
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.clone(e))
	next = append(next, c.items...)
	c.items = next
	return c.clone(e), nil
}

func (c *Collection[T]) GetByID(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), nil
	}
	return zero, nil
}

func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out, nil
}

func (c *Collection[T]) Update(_ context.Context, e T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexOf(c.idOf(e))
	if i < 0 {
		return zero, nil
	}
	next := slices.Clone(c.items)
	next[i] = c.clone(e)
	c.items = next
	return c.clone(e), nil
}

func (c *Collection[T]) Delete(_ context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, nil
	}
	removed := c.items[i]
	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	return removed, nil
}

// Find returns the first entity, newest first, matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if pred(it) {
			return c.clone(it), true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every entity matching pred, newest first.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, it := range c.items {
		if pred(it) {
			out = append(out, c.clone(it))
		}
	}
	return out
}

func (c *Collection[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.items, func(it T) bool { return c.idOf(it) == id })
}
