// Package types defines the checklist entity types (Item, Category), the
// enumerations used to filter and sort them (Status, Priority, StatusFilter,
// SortOption), and the standard error values shared by the stores.
package types
