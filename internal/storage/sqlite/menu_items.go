package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/funfriday/backend/internal/models"
)

// AddMenuItem persists a new menu item under the given card.
func (s *SQLiteStore) AddMenuItem(ctx context.Context, cardID string, item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items (id, card_id, name, category, price, image_url) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, cardID, item.Name, item.Category, item.Price, item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// ListMenuItems returns all menu items of a card.
func (s *SQLiteStore) ListMenuItems(ctx context.Context, cardID string) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, price, image_url FROM menu_items WHERE card_id = ?",
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

// DeleteMenuItem removes one menu item. Deleting a non-existent item is a no-op.
func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, cardID, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM menu_items WHERE card_id = ? AND id = ?",
		cardID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
