// Package query projects the raw item list into the filtered, sorted view.
// Project is a pure function over its inputs; it never mutates the item
// list, and it is recomputed from scratch on every state change.
package query

import (
	"sort"
	"strings"

	"github.com/ticklab/ticklist/pkg/types"
)

// CategoryResolver looks up a category by ID, falling back to the default
// category for unknown or empty IDs. Search matches against the resolved
// category name so items in a renamed or deleted category behave sanely.
type CategoryResolver func(id string) types.Category

// Params captures the view state a projection is computed for. SearchTerm
// must be the settled (debounced) term, never the raw keystroke value.
type Params struct {
	SelectedCategoryID string // empty keeps all categories
	Filter             types.StatusFilter
	SearchTerm         string
	Sort               types.SortOption
}

// Project applies, in fixed order: category filter, status filter, text
// search, and a stable sort. For equal sort keys the input order is
// preserved.
func Project(items []types.Item, resolve CategoryResolver, p Params) []types.Item {
	out := make([]types.Item, 0, len(items))
	term := strings.ToLower(p.SearchTerm)

	for _, it := range items {
		if p.SelectedCategoryID != "" && it.CategoryID != p.SelectedCategoryID {
			continue
		}
		if !p.Filter.Keep(it.Status, it.IsChecked) {
			continue
		}
		if term != "" && !matches(it, resolve, term) {
			continue
		}
		out = append(out, it)
	}

	sortItems(out, p.Sort)
	return out
}

// matches reports whether the item matches the lowercased search term in
// its text, notes, or resolved category name.
func matches(it types.Item, resolve CategoryResolver, term string) bool {
	if strings.Contains(strings.ToLower(it.Text), term) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Notes), term) {
		return true
	}
	if resolve != nil {
		cat := resolve(it.CategoryID)
		if strings.Contains(strings.ToLower(cat.Name), term) {
			return true
		}
	}
	return false
}

func sortItems(items []types.Item, opt types.SortOption) {
	switch opt {
	case types.SortCreationDate:
		// Newest first.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case types.SortDueDate:
		// Ascending; items without a due date sort after all dated items.
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].DueDate, items[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case types.SortPriority:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Priority.Rank() < items[j].Priority.Rank()
		})
	default:
		// Manual: ascending by order.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Order < items[j].Order
		})
	}
}
