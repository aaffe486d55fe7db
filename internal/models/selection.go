package models

// Selection represents one user's cart for one card.
//
// There is at most one selection per (card, user) pair; the user ID is the
// natural key. Writes replace the whole Items map, there is no merge.
type Selection struct {
	// UserID identifies the user who submitted this selection.
	UserID string `json:"userId"`

	// Items maps menu item ID -> quantity. Quantities are always >= 1;
	// an item the user does not want is absent from the map, never stored
	// with quantity 0.
	Items map[string]int `json:"items"`
}
