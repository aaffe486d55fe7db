package service

import (
	"context"
	"errors"
	"testing"
)

func TestAddItem(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	item, err := catalog.AddItem(ctx, card.ID, "u1", draft("Biryani", 180))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated item ID")
	}

	items, err := catalog.ListItems(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Biryani" {
		t.Errorf("got %v, want one Biryani", items)
	}
}

func TestAddItemValidation(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	_, err := catalog.AddItem(ctx, card.ID, "u1", draft("  ", 10))
	verr, ok := IsValidation(err)
	if !ok || verr.Code != CodeBlankName {
		t.Errorf("expected blank_name validation error, got %v", err)
	}
}

func TestAddItemAccessDenied(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	// u2 is not the creator
	_, err := catalog.AddItem(ctx, card.ID, "u2", draft("Biryani", 180))
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}

func TestAddItemUnknownCard(t *testing.T) {
	_, catalog, _, _ := newTestServices(t)

	_, err := catalog.AddItem(context.Background(), "no-such-card", "u1", draft("Biryani", 180))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBulkImport(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantImported int
		wantSkipped  int
		wantCode     string
	}{
		{
			name:         "single item with defaults",
			payload:      `[{"name":"Tea","price":20}]`,
			wantImported: 1,
		},
		{
			name:     "empty array",
			payload:  `[]`,
			wantCode: CodeEmptyBatch,
		},
		{
			name:     "not json",
			payload:  `not json`,
			wantCode: CodeInvalidFormat,
		},
		{
			name:     "object instead of array",
			payload:  `{"name":"Tea"}`,
			wantCode: CodeInvalidFormat,
		},
		{
			name:     "array of numbers",
			payload:  `[1, 2]`,
			wantCode: CodeInvalidFormat,
		},
		{
			name:     "non-object element fails the whole batch",
			payload:  `[{"name":"Tea","price":20}, 2]`,
			wantCode: CodeInvalidFormat,
		},
		{
			name:         "malformed price defaults to zero",
			payload:      `[{"name":"Tea","price":"twenty"}]`,
			wantImported: 1,
		},
		{
			name:         "blank name element skipped, rest imported",
			payload:      `[{"name":""},{"name":"Coffee","price":40}]`,
			wantImported: 1,
			wantSkipped:  1,
		},
		{
			name:         "unrecognized fields ignored",
			payload:      `[{"name":"Juice","price":30,"spicy":true}]`,
			wantImported: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, catalog, _, _ := newTestServices(t)
			ctx := context.Background()
			card := mustCreateCard(t, cards, "Friday Lunch", "u1")

			result, err := catalog.BulkImport(ctx, card.ID, "u1", []byte(tt.payload))

			if tt.wantCode != "" {
				verr, ok := IsValidation(err)
				if !ok {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", verr.Code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("BulkImport failed: %v", err)
			}
			if result.Imported != tt.wantImported {
				t.Errorf("imported = %d, want %d", result.Imported, tt.wantImported)
			}
			if len(result.Errors) != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", len(result.Errors), tt.wantSkipped)
			}
		})
	}
}

func TestBulkImportFieldDefaults(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()
	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	_, err := catalog.BulkImport(ctx, card.ID, "u1", []byte(`[{"name":"Tea","price":20}]`))
	if err != nil {
		t.Fatalf("BulkImport failed: %v", err)
	}

	items, err := catalog.ListItems(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Name != "Tea" || got.Price != 20 {
		t.Errorf("item = %+v, want Tea at 20", got)
	}
	if got.Category != "" || got.ImageURL != "" {
		t.Errorf("expected empty category and imageUrl defaults, got %+v", got)
	}
}

func TestBulkImportRejectedBatchPersistsNothing(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()
	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	// The valid first element must not survive the rejected batch
	_, err := catalog.BulkImport(ctx, card.ID, "u1", []byte(`[{"name":"Tea","price":20}, 2]`))
	if verr, ok := IsValidation(err); !ok || verr.Code != CodeInvalidFormat {
		t.Fatalf("expected invalid_format validation error, got %v", err)
	}

	items, err := catalog.ListItems(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items after rejected batch, got %d", len(items))
	}
}

func TestDeleteItemIdempotent(t *testing.T) {
	cards, catalog, _, _ := newTestServices(t)
	ctx := context.Background()
	card := mustCreateCard(t, cards, "Friday Lunch", "u1")

	item, err := catalog.AddItem(ctx, card.ID, "u1", draft("Biryani", 180))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := catalog.DeleteItem(ctx, card.ID, "u1", item.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if err := catalog.DeleteItem(ctx, card.ID, "u1", item.ID); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}

	if err := catalog.DeleteItem(ctx, card.ID, "u2", item.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-creator delete: expected ErrAccessDenied, got %v", err)
	}
}
