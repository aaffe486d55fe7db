package models

// Card represents one lunch-ordering event.
// A card is immutable after creation except for deletion.
type Card struct {
	// ID is the unique identifier for the card (UUID format).
	ID string `json:"id"`

	// Title is the human-readable name of the event (e.g., "Friday Lunch").
	Title string `json:"title"`

	// CreatedBy is the user ID of the card's creator. Only the creator may
	// mutate the card's menu, view its aggregated summary, or delete it.
	CreatedBy string `json:"createdBy"`

	// CreatedAt is the Unix timestamp when the card was created.
	CreatedAt int64 `json:"createdAt"`
}
