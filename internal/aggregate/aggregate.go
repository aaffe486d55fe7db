// Package aggregate turns a card's menu and its selections into per-item and
// per-user totals. Every function is a pure computation over its inputs.
package aggregate

import (
	"sort"

	"github.com/funfriday/backend/internal/models"
)

// UnknownItemName labels summary rows whose menu item has been deleted or
// was never part of this card's menu. A dangling reference prices at 0 and is
// never an error.
const UnknownItemName = "Unknown Item"

// PerItemTotals sums quantities across all selections, grouped by menu item ID.
// An item absent from every selection is absent from the result, never
// zero-valued. The result is independent of the order of selections.
func PerItemTotals(selections []models.Selection) map[string]int {
	totals := make(map[string]int)
	for _, sel := range selections {
		for itemID, qty := range sel.Items {
			totals[itemID] += qty
		}
	}
	return totals
}

// LineTotal computes price(itemID) * qty against the given menu.
// An item not on the menu prices at 0.
func LineTotal(itemID string, qty int, menu []models.MenuItem) float64 {
	return priceOf(itemID, menu) * float64(qty)
}

// GrandTotal sums line totals over all selections against the menu.
func GrandTotal(selections []models.Selection, menu []models.MenuItem) float64 {
	total := 0.0
	for itemID, qty := range PerItemTotals(selections) {
		total += LineTotal(itemID, qty, menu)
	}
	return total
}

// PerUserTotal sums line totals over a single selection's map.
func PerUserTotal(sel models.Selection, menu []models.MenuItem) float64 {
	total := 0.0
	for itemID, qty := range sel.Items {
		total += LineTotal(itemID, qty, menu)
	}
	return total
}

// ItemRow is one aggregated menu-item line of a card summary.
type ItemRow struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// UserRow is one user's aggregated order within a card summary.
type UserRow struct {
	UserID      string         `json:"userId"`
	DisplayName string         `json:"displayName"`
	Items       map[string]int `json:"items"`
	Total       float64        `json:"total"`
}

// Summary is the organizer's aggregated view of a card.
type Summary struct {
	Items      []ItemRow `json:"items"`
	Users      []UserRow `json:"users"`
	GrandTotal float64   `json:"grandTotal"`
}

// NameLookup resolves a user ID to a display name.
type NameLookup func(userID string) string

// BuildSummary assembles the full aggregated view: per-item rows, per-user
// rows, and the grand total. Totals are order-independent; rows are sorted
// (items by name, users by display name, IDs as tie-breakers) only so the
// output is stable for callers.
func BuildSummary(menu []models.MenuItem, selections []models.Selection, nameOf NameLookup) Summary {
	byID := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	itemRows := []ItemRow{}
	for itemID, qty := range PerItemTotals(selections) {
		row := ItemRow{ItemID: itemID, Name: UnknownItemName, Quantity: qty}
		if item, ok := byID[itemID]; ok {
			row.Name = item.Name
			row.Price = item.Price
		}
		row.Subtotal = row.Price * float64(qty)
		itemRows = append(itemRows, row)
	}
	sort.Slice(itemRows, func(i, j int) bool {
		if itemRows[i].Name != itemRows[j].Name {
			return itemRows[i].Name < itemRows[j].Name
		}
		return itemRows[i].ItemID < itemRows[j].ItemID
	})

	userRows := []UserRow{}
	grand := 0.0
	for _, sel := range selections {
		row := UserRow{
			UserID: sel.UserID,
			Items:  sel.Items,
			Total:  PerUserTotal(sel, menu),
		}
		if nameOf != nil {
			row.DisplayName = nameOf(sel.UserID)
		}
		grand += row.Total
		userRows = append(userRows, row)
	}
	sort.Slice(userRows, func(i, j int) bool {
		if userRows[i].DisplayName != userRows[j].DisplayName {
			return userRows[i].DisplayName < userRows[j].DisplayName
		}
		return userRows[i].UserID < userRows[j].UserID
	})

	return Summary{Items: itemRows, Users: userRows, GrandTotal: grand}
}

func priceOf(itemID string, menu []models.MenuItem) float64 {
	for _, item := range menu {
		if item.ID == itemID {
			return item.Price
		}
	}
	return 0
}
