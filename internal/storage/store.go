// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/funfriday/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Callers that treat absence as a normal outcome (selection reads, deletes)
// branch on it with errors.Is.
var ErrNotFound = errors.New("record not found")

// CardStore owns the card records.
type CardStore interface {
	// CreateCard persists a new card. The card.ID and card.CreatedAt fields
	// are populated by the store if unset.
	CreateCard(ctx context.Context, card *models.Card) error

	// GetCard retrieves a card by ID. Returns ErrNotFound if absent.
	GetCard(ctx context.Context, cardID string) (*models.Card, error)

	// ListCards returns all cards. Order is unspecified.
	ListCards(ctx context.Context) ([]models.Card, error)

	// DeleteCard removes a card and everything scoped to it: menu items and
	// selections. Deleting a non-existent card is not an error, and re-running
	// the cascade after a partial failure converges.
	DeleteCard(ctx context.Context, cardID string) error
}

// CatalogStore owns the menu items of a card.
type CatalogStore interface {
	// AddMenuItem persists a new item under the card. The item.ID field is
	// populated by the store.
	AddMenuItem(ctx context.Context, cardID string, item *models.MenuItem) error

	// ListMenuItems returns the card's menu. Order is unspecified. A deleted
	// or unknown card yields an empty slice, not an error.
	ListMenuItems(ctx context.Context, cardID string) ([]models.MenuItem, error)

	// DeleteMenuItem removes one item. Idempotent: deleting a non-existent
	// item is not an error.
	DeleteMenuItem(ctx context.Context, cardID, itemID string) error
}

// SelectionStore owns one quantity map per (card, user) pair.
type SelectionStore interface {
	// UpsertSelection replaces the user's entire prior map for the card.
	// Last write wins; no merge. Precondition: items contains no quantity
	// <= 0 entries (the cart protocol removes rather than zeroes).
	UpsertSelection(ctx context.Context, cardID, userID string, items map[string]int) error

	// GetSelection retrieves one user's selection for a card.
	// Returns ErrNotFound if the user has not submitted a cart yet.
	GetSelection(ctx context.Context, cardID, userID string) (*models.Selection, error)

	// ListSelections returns one entry per distinct user who has submitted a
	// cart for the card. A deleted or unknown card yields an empty slice.
	ListSelections(ctx context.Context, cardID string) ([]models.Selection, error)
}

// UserStore owns the user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store is the full persistence surface of the backend. The split into
// per-collection interfaces lets services and tests depend on only the slice
// they use, and allows swapping backends without touching the service layer.
type Store interface {
	CardStore
	CatalogStore
	SelectionStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
