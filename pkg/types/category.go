package types

// DefaultCategoryID is the well-known identifier of the permanent "General"
// category. It is seeded on first load and can never be deleted; items whose
// category no longer exists resolve to it at read time.
const DefaultCategoryID = "00000000-0000-4000-8000-000000000001"

// Default colors, as hex triplets matching the persisted format.
const (
	DefaultCategoryColor = "#8E8E93"
	NewCategoryColor     = "#007AFF"
)

// Category is a user-defined grouping for checklist items: a display name
// and a hex color. Items hold a weak reference to a category by ID and
// never own or duplicate category data.
type Category struct {
	ID    string `json:"id"`    // UUID, immutable after creation.
	Name  string `json:"name"`  // Display name (required, non-empty).
	Color string `json:"color"` // Hex color string, "#RRGGBB" or "#RRGGBBAA".
}

// DefaultCategory returns the permanent fallback category.
func DefaultCategory() Category {
	return Category{
		ID:    DefaultCategoryID,
		Name:  "General",
		Color: DefaultCategoryColor,
	}
}
