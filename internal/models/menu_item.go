package models

// MenuItem represents a single dish on a card's menu.
// Item IDs are unique within a card, not globally.
type MenuItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the dish name (e.g., "Biryani"). Never blank.
	Name string `json:"name"`

	// Category groups items for display (e.g., "Main", "Drinks").
	Category string `json:"category"`

	// Price is the per-unit price. Non-negative.
	Price float64 `json:"price"`

	// ImageURL is an optional picture of the dish.
	ImageURL string `json:"imageUrl"`
}

// MenuItemDraft carries the caller-supplied fields of a menu item before the
// store assigns an ID.
type MenuItemDraft struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}
