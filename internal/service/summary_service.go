package service

import (
	"context"
	"errors"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/aggregate"
	"github.com/funfriday/backend/internal/storage"
)

// SummaryService produces the organizer's aggregated view of a card. The
// aggregation itself is pure; this service only fans in the menu and the
// selections and resolves display names.
type SummaryService struct {
	store  storage.Store
	policy access.Policy
	names  *aggregate.NameCache
}

// NewSummaryService creates a SummaryService with the given storage backend,
// access policy, and name cache.
func NewSummaryService(store storage.Store, policy access.Policy, names *aggregate.NameCache) *SummaryService {
	return &SummaryService{store: store, policy: policy, names: names}
}

// Summary returns per-item totals, per-user totals, and the grand total for a
// card. Creator-only.
func (s *SummaryService) Summary(ctx context.Context, cardID, actorID string) (*aggregate.Summary, error) {
	card, err := s.store.GetCard(ctx, cardID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backendErr("get card", err)
	}

	if !s.policy.CanViewSummary(card, actorID) {
		return nil, ErrAccessDenied
	}

	menu, err := s.store.ListMenuItems(ctx, cardID)
	if err != nil {
		return nil, backendErr("list menu items", err)
	}
	selections, err := s.store.ListSelections(ctx, cardID)
	if err != nil {
		return nil, backendErr("list selections", err)
	}

	summary := aggregate.BuildSummary(menu, selections, func(userID string) string {
		return s.names.Name(ctx, userID)
	})
	return &summary, nil
}
