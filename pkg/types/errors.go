package types

import "errors"

// Validation errors. Store operations that receive these inputs reject them
// synchronously and leave the store unchanged.
var (
	ErrEmptyText = errors.New("item text must not be empty")
	ErrEmptyName = errors.New("category name must not be empty")
)

// Lookup and state errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrItemArchived    = errors.New("item is archived")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidFilter   = errors.New("invalid status filter")
	ErrInvalidSort     = errors.New("invalid sort option")
	ErrInvalidPriority = errors.New("invalid priority value")
)
