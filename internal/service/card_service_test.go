package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateCard(t *testing.T) {
	cards, _, _, _ := newTestServices(t)
	ctx := context.Background()

	card, err := cards.Create(ctx, "Friday Lunch", "u1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if card.ID == "" {
		t.Error("expected a generated card ID")
	}
	if card.CreatedBy != "u1" {
		t.Errorf("CreatedBy = %q, want u1", card.CreatedBy)
	}
	if card.CreatedAt == 0 {
		t.Error("expected a creation timestamp")
	}
}

func TestCreateCardBlankTitle(t *testing.T) {
	cards, _, _, _ := newTestServices(t)

	for _, title := range []string{"", "   "} {
		_, err := cards.Create(context.Background(), title, "u1")
		verr, ok := IsValidation(err)
		if !ok {
			t.Fatalf("title %q: expected ValidationError, got %v", title, err)
		}
		if verr.Code != CodeBlankTitle {
			t.Errorf("title %q: code = %q, want %q", title, verr.Code, CodeBlankTitle)
		}
	}
}

func TestListCardsVisibleToEveryone(t *testing.T) {
	cards, _, _, _ := newTestServices(t)
	ctx := context.Background()

	mustCreateCard(t, cards, "Friday Lunch", "u1")
	mustCreateCard(t, cards, "Team Treat", "u2")

	// No actor parameter: every authenticated user sees every card
	all, err := cards.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 cards, got %d", len(all))
	}
}

func TestDeleteCardAccess(t *testing.T) {
	cards, _, _, _ := newTestServices(t)
	ctx := context.Background()

	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	if err := cards.Delete(ctx, card.ID, "u2"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-creator delete: expected ErrAccessDenied, got %v", err)
	}
	if err := cards.Delete(ctx, card.ID, "u1"); err != nil {
		t.Errorf("creator delete failed: %v", err)
	}
	// Deleting an already-deleted card is a successful no-op
	if err := cards.Delete(ctx, card.ID, "u2"); err != nil {
		t.Errorf("repeat delete: expected no-op, got %v", err)
	}
}

func TestDeleteCardCascades(t *testing.T) {
	cards, catalog, selections, _ := newTestServices(t)
	ctx := context.Background()

	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	item, err := catalog.AddItem(ctx, card.ID, "u1", draft("Biryani", 180))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := selections.Upsert(ctx, card.ID, "u2", "u2", map[string]int{item.ID: 2}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if err := cards.Delete(ctx, card.ID, "u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	items, err := catalog.ListItems(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no menu items after cascade, got %d", len(items))
	}

	sels, err := selections.List(ctx, card.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sels) != 0 {
		t.Errorf("expected no selections after cascade, got %d", len(sels))
	}
}
