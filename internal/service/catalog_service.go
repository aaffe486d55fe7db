package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// CatalogService owns a card's menu: manual adds, JSON bulk import, deletes,
// and listing. All mutations are creator-only.
type CatalogService struct {
	store  storage.Store
	policy access.Policy
}

// NewCatalogService creates a CatalogService with the given storage backend
// and access policy.
func NewCatalogService(store storage.Store, policy access.Policy) *CatalogService {
	return &CatalogService{store: store, policy: policy}
}

// ImportResult reports the outcome of a bulk import: how many items were
// added and which elements were skipped.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// AddItem appends one item to the card's menu. A blank name is rejected.
func (s *CatalogService) AddItem(ctx context.Context, cardID, actorID string, draft models.MenuItemDraft) (*models.MenuItem, error) {
	card, err := s.cardForMutation(ctx, cardID, actorID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, validationErr(CodeBlankName, "menu item name cannot be blank")
	}
	if draft.Price < 0 {
		draft.Price = 0
	}

	item := &models.MenuItem{
		Name:     draft.Name,
		Category: draft.Category,
		Price:    draft.Price,
		ImageURL: draft.ImageURL,
	}
	if err := s.store.AddMenuItem(ctx, card.ID, item); err != nil {
		return nil, backendErr("add menu item", err)
	}

	slog.Info("menu item added", "card_id", cardID, "item_id", item.ID, "name", item.Name)
	return item, nil
}

// BulkImport decodes a JSON array of menu item drafts and adds each element
// with a fresh ID. The whole batch fails if the payload is not a JSON array
// of objects or decodes to an empty array; individual malformed elements are
// skipped and reported without aborting the rest. A malformed or missing
// price defaults to 0, unrecognized fields are ignored.
func (s *CatalogService) BulkImport(ctx context.Context, cardID, actorID string, raw []byte) (*ImportResult, error) {
	card, err := s.cardForMutation(ctx, cardID, actorID)
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, validationErr(CodeInvalidFormat, "bulk import payload must be a JSON array of objects")
	}
	if len(elements) == 0 {
		return nil, validationErr(CodeEmptyBatch, "bulk import payload contains no menu items")
	}

	// A non-object element fails the whole batch before anything is
	// persisted; per-element leniency only covers malformed fields inside
	// an object.
	objects := make([]map[string]json.RawMessage, len(elements))
	for i, element := range elements {
		if err := json.Unmarshal(element, &objects[i]); err != nil {
			return nil, validationErr(CodeInvalidFormat, "bulk import payload must be a JSON array of objects")
		}
	}

	result := &ImportResult{}
	for i, fields := range objects {
		draft, err := decodeDraft(fields)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("element %d: %v", i, err))
			continue
		}

		item := &models.MenuItem{
			Name:     draft.Name,
			Category: draft.Category,
			Price:    draft.Price,
			ImageURL: draft.ImageURL,
		}
		if err := s.store.AddMenuItem(ctx, card.ID, item); err != nil {
			return nil, backendErr("bulk import", err)
		}
		result.Imported++
	}

	slog.Info("menu bulk import",
		"card_id", cardID,
		"imported", result.Imported,
		"skipped", len(result.Errors),
	)
	return result, nil
}

// DeleteItem removes one menu item. Idempotent: deleting a non-existent item
// succeeds.
func (s *CatalogService) DeleteItem(ctx context.Context, cardID, actorID, itemID string) error {
	card, err := s.cardForMutation(ctx, cardID, actorID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteMenuItem(ctx, card.ID, itemID); err != nil {
		return backendErr("delete menu item", err)
	}
	return nil
}

// ListItems returns the card's menu. Readable by any member.
func (s *CatalogService) ListItems(ctx context.Context, cardID string) ([]models.MenuItem, error) {
	items, err := s.store.ListMenuItems(ctx, cardID)
	if err != nil {
		return nil, backendErr("list menu items", err)
	}
	return items, nil
}

func (s *CatalogService) cardForMutation(ctx context.Context, cardID, actorID string) (*models.Card, error) {
	card, err := s.store.GetCard(ctx, cardID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backendErr("get card", err)
	}
	if !s.policy.CanMutateCatalog(card, actorID) {
		return nil, ErrAccessDenied
	}
	return card, nil
}

// decodeDraft converts the fields of one bulk-import object into a draft,
// tolerating a malformed price by coercing it to 0. Only the name is
// mandatory.
func decodeDraft(fields map[string]json.RawMessage) (models.MenuItemDraft, error) {
	draft := models.MenuItemDraft{}
	if raw, ok := fields["name"]; ok {
		_ = json.Unmarshal(raw, &draft.Name)
	}
	if strings.TrimSpace(draft.Name) == "" {
		return models.MenuItemDraft{}, fmt.Errorf("missing or blank name")
	}

	if raw, ok := fields["category"]; ok {
		_ = json.Unmarshal(raw, &draft.Category)
	}
	if raw, ok := fields["imageUrl"]; ok {
		_ = json.Unmarshal(raw, &draft.ImageURL)
	}
	if raw, ok := fields["price"]; ok {
		// A price that is not a number defaults to 0, matching the
		// default-on-missing-field policy
		_ = json.Unmarshal(raw, &draft.Price)
	}
	if draft.Price < 0 {
		draft.Price = 0
	}

	return draft, nil
}
