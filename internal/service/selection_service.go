package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// SelectionService owns the per-user carts of a card. Any member may submit a
// selection, but only under their own user ID.
type SelectionService struct {
	store  storage.Store
	policy access.Policy
}

// NewSelectionService creates a SelectionService with the given storage
// backend and access policy.
func NewSelectionService(store storage.Store, policy access.Policy) *SelectionService {
	return &SelectionService{store: store, policy: policy}
}

// Upsert replaces the target user's entire selection for the card. Last write
// wins; nothing from a previous map survives. Precondition: items contains no
// quantity <= 0 entries — the cart protocol removes keys instead of zeroing
// them, so this is documented rather than re-validated here.
func (s *SelectionService) Upsert(ctx context.Context, cardID, actorID, targetUserID string, items map[string]int) error {
	if !s.policy.CanWriteSelection(actorID, targetUserID) {
		return ErrAccessDenied
	}

	if _, err := s.store.GetCard(ctx, cardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return backendErr("get card", err)
	}

	if items == nil {
		items = map[string]int{}
	}
	if err := s.store.UpsertSelection(ctx, cardID, targetUserID, items); err != nil {
		return backendErr("upsert selection", err)
	}

	slog.Info("selection saved", "card_id", cardID, "user_id", targetUserID, "items", len(items))
	return nil
}

// Get retrieves one user's selection. Returns ErrNotFound if the user has not
// submitted a cart for this card yet.
func (s *SelectionService) Get(ctx context.Context, cardID, userID string) (*models.Selection, error) {
	sel, err := s.store.GetSelection(ctx, cardID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backendErr("get selection", err)
	}
	return sel, nil
}

// List returns every selection submitted for the card.
func (s *SelectionService) List(ctx context.Context, cardID string) ([]models.Selection, error) {
	selections, err := s.store.ListSelections(ctx, cardID)
	if err != nil {
		return nil, backendErr("list selections", err)
	}
	return selections, nil
}
