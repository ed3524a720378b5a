package store

import (
	"strconv"
	"sync"
)

// collection is an append-only, insertion-ordered sequence of records with
// sequential string IDs. Both content repositories are built on it.
type collection[T any] struct {
	mu    sync.Mutex
	items []T
	getID func(T) string
	setID func(*T, string)
}

func newCollection[T any](getID func(T) string, setID func(*T, string)) *collection[T] {
	return &collection[T]{getID: getID, setID: setID}
}

// append assigns the next sequential ID, stores the record, and returns the
// stored copy.
func (c *collection[T]) append(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setID(&item, strconv.Itoa(len(c.items)+1))
	c.items = append(c.items, item)
	return item
}

// all returns every record in insertion order.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// where returns the ordered subsequence matching pred.
func (c *collection[T]) where(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// byID returns the record with the given ID.
func (c *collection[T]) byID(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.getID(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// mutate applies fn to the stored record with the given ID and returns the
// updated copy. The mutation is visible to all subsequent reads.
func (c *collection[T]) mutate(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.getID(c.items[i]) == id {
			if err := fn(&c.items[i]); err != nil {
				var zero T
				return zero, err
			}
			return c.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}
