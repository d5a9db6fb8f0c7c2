package inventory

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/dusk-indust/stockroom/internal/filestore"
	"github.com/dusk-indust/stockroom/internal/record"
)

// collection is the ordered in-memory list shared by every repository. When
// store is nil the collection lives in memory only.
//
// seq is the last identifier handed out. It only grows, so identifiers are
// never reused after a delete.
type collection[T record.Entity[T]] struct {
	mu    sync.RWMutex
	items []T
	seq   int
	store *filestore.Store[T]
}

func newCollection[T record.Entity[T]](store *filestore.Store[T]) *collection[T] {
	return &collection[T]{items: []T{}, store: store}
}

// load replaces the in-memory list with the store contents and restores the
// identifier sequence from the sidecar, never below the highest stored id.
func (c *collection[T]) load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	res, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	seq, err := c.store.LoadSeq()
	if err != nil {
		return err
	}
	for _, item := range res.Records {
		if id := item.RecordID(); id > seq {
			seq = id
		}
	}
	if res.Skipped > 0 {
		log.Printf("inventory: skipped %d malformed line(s) in %s", res.Skipped, c.store.Path())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = res.Records
	c.seq = seq
	return nil
}

// saveLocked writes the full list. Callers must hold c.mu.
func (c *collection[T]) saveLocked(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Save(ctx, c.items)
}

func (c *collection[T]) save(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saveLocked(ctx)
}

// create assigns the next identifier to candidate, appends it and persists
// the sequence before the data, so a crash between the two writes leaves a
// gap rather than a reused id.
func (c *collection[T]) create(ctx context.Context, candidate T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	next := c.seq + 1
	if c.store != nil {
		if err := c.store.SaveSeq(ctx, next); err != nil {
			return zero, fmt.Errorf("reserve id: %w", err)
		}
	}
	c.seq = next

	rec := candidate.WithID(next)
	c.items = append(c.items, rec)
	if err := c.saveLocked(ctx); err != nil {
		c.items = c.items[:len(c.items)-1]
		return zero, err
	}
	return rec, nil
}

// find returns the first record with id.
func (c *collection[T]) find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// replace overwrites the first record with id using apply and saves. Nothing
// is written when no record matches.
func (c *collection[T]) replace(ctx context.Context, id int, apply func(T) T) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	for i, item := range c.items {
		if item.RecordID() != id {
			continue
		}
		updated := apply(item).WithID(id)
		c.items[i] = updated
		if err := c.saveLocked(ctx); err != nil {
			c.items[i] = item
			return zero, true, err
		}
		return updated, true, nil
	}
	return zero, false, nil
}

// remove drops every record with id and saves whether or not anything
// matched. It returns the number of records removed.
func (c *collection[T]) remove(ctx context.Context, id int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)

	prev := c.items
	c.items = kept
	if err := c.saveLocked(ctx); err != nil {
		c.items = prev
		return 0, err
	}
	return removed, nil
}

// all returns a copy of the list in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
