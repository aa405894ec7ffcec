package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
)

// Collection is an ordered, persisted list of records stored under one key.
// Every mutation rewrites the whole key. When that write fails the in-memory
// change is kept and the wrapped error is returned.
type Collection[T models.Record[T]] struct {
	mu    *sync.Mutex
	repo  kv.Repository
	key   string
	items []T
}

func newCollection[T models.Record[T]](mu *sync.Mutex, repo kv.Repository, key string, items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{mu: mu, repo: repo, key: key, items: items}
}

func (c *Collection[T]) persist(ctx context.Context) error {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.repo.Set(ctx, c.key, b); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	return nil
}

// Add appends item.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item.Clone())
	return c.persist(ctx)
}

// Update applies mutate to a copy of the record with id and stores the copy.
// It reports false, and writes nothing, when id is unknown.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() != id {
			continue
		}
		next := c.items[i].Clone()
		mutate(&next)
		c.items[i] = next
		return true, c.persist(ctx)
	}
	return false, nil
}

// Delete removes the record with id, reporting false when it is unknown.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	n, err := c.DeleteWhere(ctx, func(item T) bool { return item.EntityID() == id })
	return n > 0, err
}

// DeleteWhere removes every record matching pred and returns how many went.
// Nothing is written when no record matches.
func (c *Collection[T]) DeleteWhere(ctx context.Context, pred func(T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	c.items = kept
	return removed, c.persist(ctx)
}

// Get returns a copy of the record with id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// List returns copies of every record in insertion order.
func (c *Collection[T]) List() []T {
	return c.Find(func(T) bool { return true })
}

// Find returns copies of the records matching pred, in insertion order.
func (c *Collection[T]) Find(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
