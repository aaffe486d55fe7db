// Package access decides who may perform catalog, selection, and summary
// operations. Predicates are pure: no I/O, no clock, no hidden state.
package access

import "github.com/funfriday/backend/internal/models"

// Policy answers access questions for card-scoped operations.
// The default implementation is CreatorOnly; a richer role model can replace
// it without touching the aggregation engine or the services.
type Policy interface {
	CanMutateCatalog(card *models.Card, actorID string) bool
	CanViewSummary(card *models.Card, actorID string) bool
	CanDeleteCard(card *models.Card, actorID string) bool
	CanWriteSelection(actorID, targetUserID string) bool
}

// CreatorOnly is the binary creator-vs-member policy: the card's creator may
// mutate its catalog, view its summary, and delete it; every member (creator
// included) may write only their own selection.
type CreatorOnly struct{}

var _ Policy = CreatorOnly{}

// CanMutateCatalog reports whether the actor may add, import, or delete menu items.
func (CreatorOnly) CanMutateCatalog(card *models.Card, actorID string) bool {
	return card.CreatedBy == actorID
}

// CanViewSummary reports whether the actor may view the aggregated summary.
func (CreatorOnly) CanViewSummary(card *models.Card, actorID string) bool {
	return card.CreatedBy == actorID
}

// CanDeleteCard reports whether the actor may delete the card.
func (CreatorOnly) CanDeleteCard(card *models.Card, actorID string) bool {
	return card.CreatedBy == actorID
}

// CanWriteSelection reports whether the actor may write the selection stored
// under targetUserID. A member never writes another user's selection.
func (CreatorOnly) CanWriteSelection(actorID, targetUserID string) bool {
	return actorID == targetUserID
}
