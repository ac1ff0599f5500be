// Blob codec for the item and category stores. The wire format is a JSON
// array of records under a well-known blob name; field names are frozen for
// compatibility with data written by earlier versions.
package store

import (
	"encoding/json"

	"github.com/ticklab/ticklist/pkg/types"
)

// Blob names in the key-value layer.
const (
	BlobItems            = "SavedChecklistItems"
	BlobCategories       = "SavedCategories"
	BlobSelectedCategory = "SelectedCategoryId"
)

func encodeItems(items []types.Item) ([]byte, error) {
	if items == nil {
		items = []types.Item{}
	}
	return json.Marshal(items)
}

func decodeItems(data []byte) ([]types.Item, error) {
	var items []types.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func encodeCategories(cats []types.Category) ([]byte, error) {
	if cats == nil {
		cats = []types.Category{}
	}
	return json.Marshal(cats)
}

func decodeCategories(data []byte) ([]types.Category, error) {
	var cats []types.Category
	if err := json.Unmarshal(data, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// migrateLegacyChecked upgrades records written by versions that only had
// the IsChecked boolean: a checked item still marked active gets the
// completed status. Runs once per load and is idempotent. Records that
// already carry a non-active status are left alone. Returns whether any
// record changed.
func migrateLegacyChecked(items []types.Item) bool {
	changed := false
	for i := range items {
		if items[i].Status == "" {
			// Pre-status records have no status field at all.
			if items[i].IsChecked {
				items[i].Status = types.StatusCompleted
			} else {
				items[i].Status = types.StatusActive
			}
			changed = true
			continue
		}
		if items[i].IsChecked && items[i].Status == types.StatusActive {
			items[i].Status = types.StatusCompleted
			changed = true
		}
	}
	return changed
}
