package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ticklab/ticklist/internal/kvstore"
	"github.com/ticklab/ticklist/pkg/types"
)

// CategoryStore owns the ordered list of user-defined categories. Every
// mutation persists the full list synchronously; category edits are rare
// enough that no debounce is warranted.
type CategoryStore struct {
	kv *kvstore.Store

	mu      sync.Mutex
	cats    []types.Category
	saveErr error
}

// NewCategoryStore loads the persisted category list from the key-value
// layer. A missing or undecodable blob is treated as no data, and the
// default "General" category is seeded.
func NewCategoryStore(kv *kvstore.Store) *CategoryStore {
	cs := &CategoryStore{kv: kv}

	data, err := kv.Get(BlobCategories)
	if err == nil {
		if cats, derr := decodeCategories(data); derr == nil {
			cs.cats = cats
		}
	}
	if len(cs.cats) == 0 {
		cs.cats = []types.Category{types.DefaultCategory()}
		cs.persistLocked()
	}
	return cs
}

// List returns the categories in insertion order.
func (cs *CategoryStore) List() []types.Category {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	out := make([]types.Category, len(cs.cats))
	copy(out, cs.cats)
	return out
}

// Add creates a new category with a fresh ID. The name is trimmed; an
// empty trimmed name is rejected with ErrEmptyName. An empty color falls
// back to the default new-category color.
func (cs *CategoryStore) Add(name, color string) (types.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Category{}, types.ErrEmptyName
	}
	if color == "" {
		color = types.NewCategoryColor
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	cat := types.Category{ID: newID(), Name: name, Color: color}
	cs.cats = append(cs.cats, cat)
	cs.persistLocked()
	return cat, nil
}

// Update renames or recolors the category with the given ID. Unknown IDs
// are ignored. An empty trimmed name is rejected; an empty color keeps the
// current color.
func (cs *CategoryStore) Update(id, name, color string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ErrEmptyName
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.cats {
		if cs.cats[i].ID == id {
			cs.cats[i].Name = name
			if color != "" {
				cs.cats[i].Color = color
			}
			cs.persistLocked()
			return nil
		}
	}
	return nil
}

// Delete removes the category with the given ID. Deleting the default
// category is a guaranteed no-op, never an error. Items referencing a
// deleted category are not touched; they resolve to the default category
// at lookup time.
func (cs *CategoryStore) Delete(id string) {
	if id == types.DefaultCategoryID {
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.cats {
		if cs.cats[i].ID == id {
			cs.cats = append(cs.cats[:i], cs.cats[i+1:]...)
			cs.persistLocked()
			return
		}
	}
}

// Resolve returns the category with the given ID, or the default category
// for unknown or empty IDs. This covers dangling references left behind by
// category deletion.
func (cs *CategoryStore) Resolve(id string) types.Category {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	var def *types.Category
	for i := range cs.cats {
		if cs.cats[i].ID == id {
			return cs.cats[i]
		}
		if cs.cats[i].ID == types.DefaultCategoryID {
			def = &cs.cats[i]
		}
	}
	if def != nil {
		return *def
	}
	return types.DefaultCategory()
}

// SaveErr returns the most recent persistence failure, if any. Encode or
// write failures never interrupt a mutation; the in-memory list stays
// authoritative.
func (cs *CategoryStore) SaveErr() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.saveErr
}

// persistLocked writes the full category list. The caller holds cs.mu.
func (cs *CategoryStore) persistLocked() {
	data, err := encodeCategories(cs.cats)
	if err != nil {
		cs.saveErr = err
		return
	}
	if err := cs.kv.Set(BlobCategories, data); err != nil {
		cs.saveErr = err
		return
	}
	cs.saveErr = nil
}

// newID generates a UUID v7 string, falling back to v4 if the clock-based
// generator fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
