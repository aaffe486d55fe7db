package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/funfriday/backend/internal/access"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage/sqlite"
)

// newTestServices wires every service against a temp SQLite store, the way
// the server does at startup.
func newTestServices(t *testing.T) (*CardService, *CatalogService, *SelectionService, *sqlite.SQLiteStore) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "funfriday-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	policy := access.CreatorOnly{}
	return NewCardService(store, policy),
		NewCatalogService(store, policy),
		NewSelectionService(store, policy),
		store
}

func draft(name string, price float64) models.MenuItemDraft {
	return models.MenuItemDraft{Name: name, Price: price}
}

func mustCreateCard(t *testing.T, cards *CardService, title, creatorID string) *models.Card {
	t.Helper()
	card, err := cards.Create(context.Background(), title, creatorID)
	if err != nil {
		t.Fatalf("failed to create card: %v", err)
	}
	return card
}
