// Shared lookup and parsing helpers for the ticklist commands.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ticklab/ticklist/pkg/types"
)

// shortID is the identifier prefix length shown in list output.
const shortID = 8

// findItem resolves an item by full ID or unique ID prefix.
func findItem(ref string) (types.Item, error) {
	if ref == "" {
		return types.Item{}, fmt.Errorf("item ID required")
	}

	var match types.Item
	found := 0
	for _, it := range checklist.Items.Items() {
		if it.ID == ref {
			return it, nil
		}
		if strings.HasPrefix(it.ID, ref) {
			match = it
			found++
		}
	}
	switch found {
	case 0:
		return types.Item{}, fmt.Errorf("no item matches %q", ref)
	case 1:
		return match, nil
	default:
		return types.Item{}, fmt.Errorf("%q is ambiguous (%d matches); use a longer prefix", ref, found)
	}
}

// findCategory resolves a category by name (case-insensitive), full ID, or
// unique ID prefix.
func findCategory(ref string) (types.Category, error) {
	if ref == "" {
		return types.Category{}, fmt.Errorf("category required")
	}

	cats := checklist.Categories.List()
	for _, c := range cats {
		if strings.EqualFold(c.Name, ref) || c.ID == ref {
			return c, nil
		}
	}

	var match types.Category
	found := 0
	for _, c := range cats {
		if strings.HasPrefix(c.ID, ref) {
			match = c
			found++
		}
	}
	switch found {
	case 1:
		return match, nil
	case 0:
		return types.Category{}, fmt.Errorf("no category matches %q", ref)
	default:
		return types.Category{}, fmt.Errorf("%q is ambiguous (%d matches); use a longer prefix", ref, found)
	}
}

// parseDue accepts "YYYY-MM-DD" or a full RFC 3339 timestamp.
func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid due date %q (want YYYY-MM-DD or RFC 3339)", s)
}

// truncateID shortens an ID for display.
func truncateID(id string) string {
	if len(id) <= shortID {
		return id
	}
	return id[:shortID]
}
