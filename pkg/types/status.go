package types

import "strings"

// Item statuses. Completed and the legacy IsChecked flag describe the same
// fact; Archived is orthogonal to checking and is entered and left only
// through explicit archive and unarchive operations.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusArchived  = "Archived"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusActive:    true,
	StatusCompleted: true,
	StatusArchived:  true,
}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// StatusFilter selects which item statuses a projection keeps.
type StatusFilter string

// Status filter values. FilterCompleted also keeps legacy records whose
// IsChecked flag is set but whose status was never migrated.
const (
	FilterAll       StatusFilter = "All"
	FilterActive    StatusFilter = "Active"
	FilterCompleted StatusFilter = "Completed"
	FilterArchived  StatusFilter = "Archived"
)

// ParseStatusFilter converts a user-supplied token into a StatusFilter.
// Matching is case-insensitive. Returns ErrInvalidFilter for unknown tokens.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "archived":
		return FilterArchived, nil
	}
	return "", ErrInvalidFilter
}

// Keep reports whether an item with the given status and legacy checked
// flag passes this filter.
func (f StatusFilter) Keep(status string, isChecked bool) bool {
	switch f {
	case FilterActive:
		return status == StatusActive
	case FilterCompleted:
		return status == StatusCompleted || isChecked
	case FilterArchived:
		return status == StatusArchived
	default:
		return true
	}
}

// SortOption selects the ordering applied by a projection.
type SortOption string

// Sort options.
const (
	SortManual       SortOption = "Manual"
	SortCreationDate SortOption = "Created"
	SortDueDate      SortOption = "Due Date"
	SortPriority     SortOption = "Priority"
)

// ParseSortOption converts a user-supplied token into a SortOption.
// Matching is case-insensitive. Returns ErrInvalidSort for unknown tokens.
func ParseSortOption(s string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "manual":
		return SortManual, nil
	case "created", "creation":
		return SortCreationDate, nil
	case "due", "duedate", "due-date":
		return SortDueDate, nil
	case "priority":
		return SortPriority, nil
	}
	return "", ErrInvalidSort
}
