package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// UpsertSelection replaces the user's entire selection for a card.
// The previous quantity map is discarded wholesale (last write wins).
func (s *SQLiteStore) UpsertSelection(ctx context.Context, cardID, userID string, items map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO selections (card_id, user_id, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (card_id, user_id) DO UPDATE SET updated_at = excluded.updated_at`,
		cardID, userID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert selection: %w", err)
	}

	// Full replacement, never a merge
	_, err = tx.ExecContext(ctx,
		"DELETE FROM selection_items WHERE card_id = ? AND user_id = ?",
		cardID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear selection items: %w", err)
	}

	for itemID, qty := range items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO selection_items (card_id, user_id, menu_item_id, quantity) VALUES (?, ?, ?, ?)",
			cardID, userID, itemID, qty,
		)
		if err != nil {
			return fmt.Errorf("failed to insert selection item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSelection retrieves one user's selection for a card.
// Returns storage.ErrNotFound if the user has not submitted a cart yet.
func (s *SQLiteStore) GetSelection(ctx context.Context, cardID, userID string) (*models.Selection, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM selections WHERE card_id = ? AND user_id = ?",
		cardID, userID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}

	items, err := s.selectionItems(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}
	return &models.Selection{UserID: userID, Items: items}, nil
}

// ListSelections returns one selection per distinct user who has submitted a
// cart for the card.
func (s *SQLiteStore) ListSelections(ctx context.Context, cardID string) ([]models.Selection, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM selections WHERE card_id = ?",
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selections: %w", err)
	}

	selections := []models.Selection{}
	for _, userID := range userIDs {
		items, err := s.selectionItems(ctx, cardID, userID)
		if err != nil {
			return nil, err
		}
		selections = append(selections, models.Selection{UserID: userID, Items: items})
	}
	return selections, nil
}

func (s *SQLiteStore) selectionItems(ctx context.Context, cardID, userID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT menu_item_id, quantity FROM selection_items WHERE card_id = ? AND user_id = ?",
		cardID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get selection items: %w", err)
	}
	defer rows.Close()

	items := make(map[string]int)
	for rows.Next() {
		var itemID string
		var qty int
		if err := rows.Scan(&itemID, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan selection item: %w", err)
		}
		items[itemID] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selection items: %w", err)
	}
	return items, nil
}
