// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmarks keeps the user's bookmarked recipes: an ordered list
// keyed by recipe id, loaded once from a Store and written back on every
// change.
package bookmarks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pdiddy/forkify/pkg/types"
)

// Bookmarks is the in-memory bookmark list backed by a Store. It is safe
// for concurrent use.
type Bookmarks struct {
	mu    sync.RWMutex
	store Store
	items []types.Recipe
}

// Open loads the list from store. A store with nothing saved yields an
// empty list.
func Open(ctx context.Context, store Store) (*Bookmarks, error) {
	items, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}
	return &Bookmarks{store: store, items: items}, nil
}

// Toggle removes r if a bookmark with its id exists and appends it
// otherwise, then saves the list. It reports whether r is now bookmarked.
// On a save failure the in-memory list is left unchanged.
func (b *Bookmarks) Toggle(ctx context.Context, r types.Recipe) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var next []types.Recipe
	added := false
	if i := b.indexLocked(r.ID); i >= 0 {
		next = slices.Delete(slices.Clone(b.items), i, i+1)
	} else {
		next = append(slices.Clone(b.items), r)
		added = true
	}

	if err := b.store.Save(ctx, next); err != nil {
		return false, fmt.Errorf("saving bookmarks: %w", err)
	}
	b.items = next
	return added, nil
}

// Contains reports whether id is bookmarked.
func (b *Bookmarks) Contains(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indexLocked(id) >= 0
}

// List returns a copy of the bookmarks in insertion order.
func (b *Bookmarks) List() []types.Recipe {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.items)
}

// Len returns the number of bookmarks.
func (b *Bookmarks) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *Bookmarks) indexLocked(id string) int {
	return slices.IndexFunc(b.items, func(r types.Recipe) bool { return r.ID == id })
}
