package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// CardService owns the card lifecycle: creation, listing, and deletion with
// its cascading cleanup.
type CardService struct {
	store  storage.Store
	policy access.Policy
}

// NewCardService creates a CardService with the given storage backend and
// access policy.
func NewCardService(store storage.Store, policy access.Policy) *CardService {
	return &CardService{store: store, policy: policy}
}

// Create opens a new card owned by creatorID. A blank title is rejected.
func (s *CardService) Create(ctx context.Context, title, creatorID string) (*models.Card, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationErr(CodeBlankTitle, "card title cannot be blank")
	}

	card := &models.Card{
		Title:     title,
		CreatedBy: creatorID,
	}
	if err := s.store.CreateCard(ctx, card); err != nil {
		return nil, backendErr("create card", err)
	}

	slog.Info("card created", "card_id", card.ID, "created_by", creatorID)
	return card, nil
}

// Get retrieves one card. Returns ErrNotFound for a deleted or unknown card.
func (s *CardService) Get(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := s.store.GetCard(ctx, cardID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backendErr("get card", err)
	}
	return card, nil
}

// List returns every card. Any authenticated user sees every card's
// existence; only mutation and summary are gated.
func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, backendErr("list cards", err)
	}
	return cards, nil
}

// Delete removes a card and everything scoped to it. Only the creator may
// delete. Deleting an already-deleted card is a successful no-op. The cascade
// is idempotent, so re-running it after a partial failure converges.
func (s *CardService) Delete(ctx context.Context, cardID, actorID string) error {
	card, err := s.store.GetCard(ctx, cardID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return backendErr("delete card", err)
	}

	if !s.policy.CanDeleteCard(card, actorID) {
		return ErrAccessDenied
	}

	if err := s.store.DeleteCard(ctx, cardID); err != nil {
		return backendErr("delete card", err)
	}

	slog.Info("card deleted", "card_id", cardID, "actor", actorID)
	return nil
}
