package types

import "strings"

// Priority is the urgency level attached to an item.
type Priority string

// Priority levels. PriorityNone is the zero value for new items.
const (
	PriorityNone   Priority = "None"
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// priorityRank maps each priority to its sort rank. High sorts first.
var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
	PriorityNone:   3,
}

// Rank returns the sort rank of the priority, lowest first. Unknown values
// rank after PriorityNone so malformed records never float to the top.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Valid reports whether p is one of the recognized priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// ParsePriority converts a user-supplied token into a Priority.
// Matching is case-insensitive. Returns ErrInvalidPriority for unknown tokens.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", ErrInvalidPriority
}
