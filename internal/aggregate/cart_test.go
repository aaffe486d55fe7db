package aggregate

import (
	"math/rand"
	"testing"
)

func TestCartIncrementDecrement(t *testing.T) {
	cart := NewCart()

	cart.Increment("m1")
	cart.Increment("m1")
	if cart.Quantity("m1") != 2 {
		t.Errorf("quantity = %d, want 2", cart.Quantity("m1"))
	}

	cart.Decrement("m1")
	if cart.Quantity("m1") != 1 {
		t.Errorf("quantity = %d, want 1", cart.Quantity("m1"))
	}

	// Dropping to zero removes the key entirely
	cart.Decrement("m1")
	if _, ok := cart["m1"]; ok {
		t.Error("expected key to be removed at zero, not stored as 0")
	}

	// Decrement on an absent key is a no-op
	cart.Decrement("m1")
	if cart.Quantity("m1") != 0 {
		t.Errorf("quantity = %d, want 0 after decrementing absent key", cart.Quantity("m1"))
	}
}

func TestCartNeverStoresNonPositiveQuantity(t *testing.T) {
	items := []string{"m1", "m2", "m3"}
	rng := rand.New(rand.NewSource(7))

	cart := NewCart()
	for i := 0; i < 1000; i++ {
		itemID := items[rng.Intn(len(items))]
		if rng.Intn(2) == 0 {
			cart.Increment(itemID)
		} else {
			cart.Decrement(itemID)
		}

		for id, qty := range cart.Items() {
			if qty <= 0 {
				t.Fatalf("step %d: item %s has quantity %d", i, id, qty)
			}
		}
	}
}

func TestCartItemsIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Increment("m1")

	items := cart.Items()
	items["m1"] = 99

	if cart.Quantity("m1") != 1 {
		t.Error("mutating the snapshot must not affect the cart")
	}
}
