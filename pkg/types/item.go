package types

import "time"

// Item is a single checklist entry. IsChecked is the legacy completion flag
// kept for backward-compatible storage; Status is the authoritative
// tri-state. Toggle keeps the two in sync, and loading migrates records
// written by versions that only had the boolean.
type Item struct {
	ID         string     `json:"id"`                // UUID, immutable.
	Text       string     `json:"text"`              // Non-empty after trimming.
	IsChecked  bool       `json:"isChecked"`         // Legacy flag, mirrors Status == Completed.
	CategoryID string     `json:"categoryId"`        // Weak reference; resolves to General when stale.
	Priority   Priority   `json:"priority"`          // None, Low, Medium, High.
	Status     string     `json:"status"`            // Active, Completed, Archived.
	DueDate    *time.Time `json:"dueDate,omitempty"` // Optional due date.
	Notes      string     `json:"notes"`             // Free text, may be empty.
	CreatedAt  time.Time  `json:"createdAt"`         // Immutable creation timestamp.
	Order      int        `json:"order"`             // Manual sort position.
}

// Toggle flips the item between active and completed, keeping IsChecked in
// sync with Status. Archived items are rejected with ErrItemArchived; they
// must be unarchived explicitly before they can be toggled.
func (it *Item) Toggle() error {
	if it.Status == StatusArchived {
		return ErrItemArchived
	}
	if it.IsChecked {
		it.IsChecked = false
		it.Status = StatusActive
	} else {
		it.IsChecked = true
		it.Status = StatusCompleted
	}
	return nil
}

// Archive sets the status to archived. IsChecked is left untouched so the
// completion state survives a later unarchive.
func (it *Item) Archive() {
	it.Status = StatusArchived
}

// Unarchive returns the item to the active status. IsChecked is untouched.
func (it *Item) Unarchive() {
	it.Status = StatusActive
}

// Completed reports whether the item counts as done, tolerating legacy
// records where only the boolean was written.
func (it *Item) Completed() bool {
	return it.Status == StatusCompleted || it.IsChecked
}

// Overdue reports whether the item has a due date strictly in the past
// while still active.
func (it *Item) Overdue(now time.Time) bool {
	return it.DueDate != nil && it.DueDate.Before(now) && it.Status == StatusActive
}
