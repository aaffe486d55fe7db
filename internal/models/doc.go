// Package models defines the core domain models for the FunFriday backend.
//
// # Models
//
//   - Card: one lunch-ordering event with a title, an owner, and a creation time
//   - MenuItem: a dish on a card's menu, scoped to exactly one card
//   - Selection: one user's chosen items and quantities for one card
//   - User: a registered account, created once at registration
//
// # Design Principles
//
//  1. **ID strings, not pointers**: relationships are expressed through ID
//     strings to avoid circular references between models.
//  2. **One selection per (card, user)**: the user ID is the natural key of a
//     selection; a later write fully replaces the earlier one.
//  3. **Quantity maps**: a selection stores menu item ID -> quantity. A
//     quantity of zero is expressed by removing the key, never by storing 0.
package models
