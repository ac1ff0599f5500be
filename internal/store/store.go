// Package store implements the checklist engine: the category store, the
// item store with debounced persistence, and the persisted view state. All
// state is held in memory; the key-value layer underneath sees only whole
// serialized record lists.
//
// Mutation methods are not reentrant-safe in the aggregate: they are meant
// to be called from one logical execution context (the CLI command or a
// single UI loop). The internal mutexes exist only because the debounce
// flush runs on a timer goroutine.
package store

import (
	"fmt"
	"time"

	"github.com/ticklab/ticklist/internal/kvstore"
	"github.com/ticklab/ticklist/internal/search"
)

// Options configures Open.
type Options struct {
	// SaveDelay is the item persistence debounce window.
	// Zero means DefaultSaveDelay.
	SaveDelay time.Duration
	// SearchDelay is the search settle window.
	// Zero means search.DefaultDelay.
	SearchDelay time.Duration
}

// Store bundles the category and item stores over one key-value database,
// plus the search debouncer that view-state consumers filter through.
type Store struct {
	kv         *kvstore.Store
	Categories *CategoryStore
	Items      *ItemStore
	Search     *search.Debouncer
}

// Open opens the database in dataDir and loads both stores. First-ever
// open seeds the default category and starts with an empty item list.
func Open(dataDir string, opts Options) (*Store, error) {
	kv, err := kvstore.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{
		kv:         kv,
		Categories: NewCategoryStore(kv),
		Items:      NewItemStore(kv, opts.SaveDelay),
		Search:     search.New(opts.SearchDelay),
	}, nil
}

// SelectedCategory returns the persisted category filter, or "" when no
// filter is active.
func (s *Store) SelectedCategory() string {
	data, err := s.kv.Get(BlobSelectedCategory)
	if err != nil {
		return ""
	}
	return string(data)
}

// SetSelectedCategory persists the active category filter across launches.
// An empty ID clears the filter.
func (s *Store) SetSelectedCategory(id string) error {
	if id == "" {
		return s.kv.Delete(BlobSelectedCategory)
	}
	return s.kv.Set(BlobSelectedCategory, []byte(id))
}

// Close flushes pending item writes and releases the database. It returns
// the first persistence failure recorded by either store, so the caller
// can report that data did not persist.
func (s *Store) Close() error {
	flushErr := s.Items.Flush()
	if flushErr == nil {
		flushErr = s.Categories.SaveErr()
	}
	if err := s.kv.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	return flushErr
}
