package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ticklab/ticklist/internal/debounce"
	"github.com/ticklab/ticklist/internal/kvstore"
	"github.com/ticklab/ticklist/internal/textutil"
	"github.com/ticklab/ticklist/pkg/types"
)

// DefaultSaveDelay is the persistence debounce window. A burst of
// mutations inside the window coalesces into a single blob write.
const DefaultSaveDelay = 100 * time.Millisecond

// ItemStore owns the flat list of checklist items. Mutations run to
// completion under a single mutex and return immediately; persistence
// happens on a debounced timer, so a process killed inside the window
// loses at most the last burst of edits.
type ItemStore struct {
	kv   *kvstore.Store
	exec *debounce.Executor

	mu        sync.Mutex
	items     []types.Item
	nextOrder int
	dirty     bool
	saveErr   error
}

// NewItemStore loads the persisted item list. A missing or undecodable
// blob is treated as no data. Legacy records whose IsChecked flag was
// written without a status are migrated on load; the migration itself is
// persisted on the next write, not eagerly.
func NewItemStore(kv *kvstore.Store, saveDelay time.Duration) *ItemStore {
	if saveDelay <= 0 {
		saveDelay = DefaultSaveDelay
	}
	is := &ItemStore{kv: kv, exec: debounce.New(saveDelay)}

	if data, err := kv.Get(BlobItems); err == nil {
		if items, derr := decodeItems(data); derr == nil {
			is.items = items
		}
	}
	migrateLegacyChecked(is.items)
	for _, it := range is.items {
		if it.Order >= is.nextOrder {
			is.nextOrder = it.Order + 1
		}
	}
	return is
}

// Items returns a snapshot of the full item list in storage order.
func (is *ItemStore) Items() []types.Item {
	is.mu.Lock()
	defer is.mu.Unlock()

	out := make([]types.Item, len(is.items))
	copy(out, is.items)
	return out
}

// Get returns the item with the given ID.
func (is *ItemStore) Get(id string) (types.Item, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for _, it := range is.items {
		if it.ID == id {
			return it, nil
		}
	}
	return types.Item{}, types.ErrNotFound
}

// Add appends a new active item. The text is trimmed; an empty trimmed
// text is rejected with ErrEmptyText and the store is unchanged. The order
// comes from the running counter, and an empty category resolves to the
// default category ID.
func (is *ItemStore) Add(text, categoryID string, priority types.Priority) (types.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.Item{}, types.ErrEmptyText
	}

	is.mu.Lock()
	defer is.mu.Unlock()

	it := is.newItemLocked(text, categoryID, priority)
	is.items = append(is.items, it)
	is.scheduleSaveLocked()
	return it, nil
}

// AddBulk adds one item per pasted line, in input order, with strictly
// increasing order values. Each line is cleaned of bullet, checkbox, and
// numbering prefixes; lines empty after cleaning are skipped. Returns the
// items actually added.
func (is *ItemStore) AddBulk(texts []string, categoryID string, priority types.Priority) []types.Item {
	is.mu.Lock()
	defer is.mu.Unlock()

	var added []types.Item
	for _, line := range texts {
		cleaned := textutil.CleanLine(line)
		if cleaned == "" {
			continue
		}
		it := is.newItemLocked(cleaned, categoryID, priority)
		is.items = append(is.items, it)
		added = append(added, it)
	}
	if len(added) > 0 {
		is.scheduleSaveLocked()
	}
	return added
}

// Update replaces the stored item with the same ID. The text is trimmed;
// an empty trimmed text is rejected with ErrEmptyText and the store is
// unchanged, same as Add. Unknown IDs are ignored. The creation timestamp
// is preserved from the stored record.
func (is *ItemStore) Update(item types.Item) error {
	item.Text = strings.TrimSpace(item.Text)
	if item.Text == "" {
		return types.ErrEmptyText
	}

	is.mu.Lock()
	defer is.mu.Unlock()

	for i := range is.items {
		if is.items[i].ID == item.ID {
			item.CreatedAt = is.items[i].CreatedAt
			is.items[i] = item
			is.scheduleSaveLocked()
			return nil
		}
	}
	return nil
}

// Toggle flips the item between active and completed. Unknown IDs are
// ignored. Archived items are rejected with ErrItemArchived: they must be
// unarchived explicitly first.
func (is *ItemStore) Toggle(id string) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	for i := range is.items {
		if is.items[i].ID == id {
			if err := is.items[i].Toggle(); err != nil {
				return err
			}
			is.scheduleSaveLocked()
			return nil
		}
	}
	return nil
}

// Archive sets the item's status to archived. The checked flag is left
// untouched. Unknown IDs are ignored.
func (is *ItemStore) Archive(id string) {
	is.setStatus(id, func(it *types.Item) { it.Archive() })
}

// Unarchive returns the item to the active status. Unknown IDs are ignored.
func (is *ItemStore) Unarchive(id string) {
	is.setStatus(id, func(it *types.Item) { it.Unarchive() })
}

func (is *ItemStore) setStatus(id string, apply func(*types.Item)) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for i := range is.items {
		if is.items[i].ID == id {
			apply(&is.items[i])
			is.scheduleSaveLocked()
			return
		}
	}
}

// Delete removes the item permanently. Order values of the remaining items
// are not renumbered; renumbering happens on the next reorder. Unknown IDs
// are ignored.
func (is *ItemStore) Delete(id string) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for i := range is.items {
		if is.items[i].ID == id {
			is.items = append(is.items[:i], is.items[i+1:]...)
			is.scheduleSaveLocked()
			return
		}
	}
}

// Reorder moves the items at the given positions in the full list to sit
// before the element currently at position to, then renumbers the order
// field of every item to the dense sequence 0..N-1 matching the new
// arrangement. Positions out of range are ignored.
func (is *ItemStore) Reorder(from []int, to int) {
	is.mu.Lock()
	defer is.mu.Unlock()

	n := len(is.items)
	if n == 0 {
		return
	}
	if to < 0 {
		to = 0
	}
	if to > n {
		to = n
	}

	moving := make(map[int]bool, len(from))
	for _, idx := range from {
		if idx >= 0 && idx < n {
			moving[idx] = true
		}
	}
	if len(moving) == 0 {
		return
	}

	indices := make([]int, 0, len(moving))
	for idx := range moving {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	moved := make([]types.Item, 0, len(indices))
	rest := make([]types.Item, 0, n-len(indices))
	for i, it := range is.items {
		if moving[i] {
			moved = append(moved, it)
		} else {
			rest = append(rest, it)
		}
	}

	// The destination was given in pre-removal coordinates; shift it left
	// by the number of moved items that sat before it.
	dest := to
	for _, idx := range indices {
		if idx < to {
			dest--
		}
	}

	is.items = append(rest[:dest:dest], append(moved, rest[dest:]...)...)
	is.renumberLocked()
	is.scheduleSaveLocked()
}

// Renumber explicitly packs the order values to the dense sequence 0..N-1
// in current list position order. Deletions leave gaps behind; this closes
// them without changing the visible arrangement.
func (is *ItemStore) Renumber() {
	is.mu.Lock()
	defer is.mu.Unlock()

	is.renumberLocked()
	is.scheduleSaveLocked()
}

// ClearCompleted removes every completed item, including legacy records
// where only the checked flag was written. Remaining order values are left
// untouched.
func (is *ItemStore) ClearCompleted() {
	is.mu.Lock()
	defer is.mu.Unlock()

	kept := is.items[:0]
	removed := false
	for _, it := range is.items {
		if it.Completed() {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	is.items = kept
	if removed {
		is.scheduleSaveLocked()
	}
}

// ClearAll removes every item and resets the running order counter.
func (is *ItemStore) ClearAll() {
	is.mu.Lock()
	defer is.mu.Unlock()

	is.items = nil
	is.nextOrder = 0
	is.scheduleSaveLocked()
}

// Restore merges previously exported items back into the list and returns
// how many were taken. With replace set, the current list is discarded
// first. Restored items are appended in input order with fresh order
// values; records whose ID collides with an existing item, or that have no
// usable text, are skipped. Legacy checked-only records are migrated the
// same way a loaded blob would be.
func (is *ItemStore) Restore(items []types.Item, replace bool) int {
	migrateLegacyChecked(items)

	is.mu.Lock()
	defer is.mu.Unlock()

	if replace {
		is.items = nil
		is.nextOrder = 0
	}

	existing := make(map[string]struct{}, len(is.items))
	for _, it := range is.items {
		existing[it.ID] = struct{}{}
	}

	taken := 0
	for _, it := range items {
		it.Text = strings.TrimSpace(it.Text)
		if it.Text == "" {
			continue
		}
		if _, dup := existing[it.ID]; dup {
			continue
		}
		if it.ID == "" {
			it.ID = newID()
		}
		if it.CategoryID == "" {
			it.CategoryID = types.DefaultCategoryID
		}
		if it.Priority == "" {
			it.Priority = types.PriorityNone
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = time.Now()
		}
		it.Order = is.nextOrder
		is.nextOrder++
		existing[it.ID] = struct{}{}
		is.items = append(is.items, it)
		taken++
	}
	if taken > 0 || replace {
		is.scheduleSaveLocked()
	}
	return taken
}

// Counts returns the completed and total item counts, used by the progress
// display. Archived items count toward the total.
func (is *ItemStore) Counts() (completed, total int) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for _, it := range is.items {
		if it.Completed() {
			completed++
		}
	}
	return completed, len(is.items)
}

// Flush writes any pending changes synchronously, canceling the debounce
// timer. Safe to call when nothing is pending.
func (is *ItemStore) Flush() error {
	is.exec.Cancel()

	is.mu.Lock()
	defer is.mu.Unlock()
	is.persistLocked()
	return is.saveErr
}

// SaveErr returns the most recent persistence failure, if any.
func (is *ItemStore) SaveErr() error {
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.saveErr
}

func (is *ItemStore) newItemLocked(text, categoryID string, priority types.Priority) types.Item {
	if categoryID == "" {
		categoryID = types.DefaultCategoryID
	}
	if priority == "" {
		priority = types.PriorityNone
	}
	it := types.Item{
		ID:         newID(),
		Text:       text,
		CategoryID: categoryID,
		Priority:   priority,
		Status:     types.StatusActive,
		CreatedAt:  time.Now(),
		Order:      is.nextOrder,
	}
	is.nextOrder++
	return it
}

// renumberLocked packs the order field to 0..N-1 in list position order
// and resets the running counter past the end.
func (is *ItemStore) renumberLocked() {
	for i := range is.items {
		is.items[i].Order = i
	}
	is.nextOrder = len(is.items)
}

// scheduleSaveLocked marks the store dirty and arms the debounce timer.
// The caller holds is.mu.
func (is *ItemStore) scheduleSaveLocked() {
	is.dirty = true
	is.exec.Trigger(func() {
		is.mu.Lock()
		defer is.mu.Unlock()
		is.persistLocked()
	})
}

// persistLocked writes the full item list if dirty. Encode or write
// failures are recorded and the write is skipped; in-memory state is
// unaffected. The caller holds is.mu.
func (is *ItemStore) persistLocked() {
	if !is.dirty {
		return
	}
	data, err := encodeItems(is.items)
	if err != nil {
		is.saveErr = err
		return
	}
	if err := is.kv.Set(BlobItems, data); err != nil {
		is.saveErr = err
		return
	}
	is.dirty = false
	is.saveErr = nil
}
