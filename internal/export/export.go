// Package export serializes the item list for sharing and restores it from
// previously exported data. The format is the same record shape the store
// persists, pretty-printed for human inspection.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/ticklab/ticklist/pkg/types"
)

// Items encodes the item list as indented JSON.
func Items(items []types.Item) ([]byte, error) {
	if items == nil {
		items = []types.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}
	return data, nil
}

// Import decodes a previously exported item list. A malformed payload is a
// recoverable error for the caller to report; it never panics.
func Import(data []byte) ([]types.Item, error) {
	var items []types.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	return items, nil
}
