package aggregate

// Cart is the quantity map a user builds incrementally before submitting a
// selection. It holds the one invariant the rest of the system relies on: the
// map never contains a zero or negative quantity. Items are removed, not
// zeroed.
type Cart map[string]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// Increment adds one unit of the item.
func (c Cart) Increment(itemID string) {
	c[itemID]++
}

// Decrement removes one unit of the item, deleting the key when the quantity
// would drop to zero. Decrementing an absent item is a no-op: the quantity is
// clamped at zero and never goes negative.
func (c Cart) Decrement(itemID string) {
	qty, ok := c[itemID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, itemID)
		return
	}
	c[itemID] = qty - 1
}

// Quantity returns the current quantity of the item, 0 if absent.
func (c Cart) Quantity(itemID string) int {
	return c[itemID]
}

// Items returns a copy of the quantity map, suitable for a selection upsert.
func (c Cart) Items() map[string]int {
	items := make(map[string]int, len(c))
	for itemID, qty := range c {
		items[itemID] = qty
	}
	return items
}
