package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// CreateCard persists a new card to the database.
func (s *SQLiteStore) CreateCard(ctx context.Context, card *models.Card) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if card.CreatedAt == 0 {
		card.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cards (id, title, created_by, created_at) VALUES (?, ?, ?, ?)",
		card.ID, card.Title, card.CreatedBy, card.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

// GetCard retrieves a card by ID.
func (s *SQLiteStore) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	card := &models.Card{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, created_by, created_at FROM cards WHERE id = ?",
		cardID,
	).Scan(&card.ID, &card.Title, &card.CreatedBy, &card.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// ListCards returns all cards.
func (s *SQLiteStore) ListCards(ctx context.Context) ([]models.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, created_by, created_at FROM cards",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.Title, &card.CreatedBy, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}
	return cards, nil
}

// DeleteCard removes a card and cascades to its menu items and selections.
// Sub-records are deleted explicitly before the card row so that a re-run
// after a partial failure still removes every orphan; the schema-level
// ON DELETE CASCADE is a backstop. Idempotent.
func (s *SQLiteStore) DeleteCard(ctx context.Context, cardID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM selection_items WHERE card_id = ?",
		"DELETE FROM selections WHERE card_id = ?",
		"DELETE FROM menu_items WHERE card_id = ?",
		"DELETE FROM cards WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, cardID); err != nil {
			return fmt.Errorf("failed to cascade card delete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
