package cart

import (
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
)

// Snapshot is the persisted state of one device.
type Snapshot struct {
	Entries  []Entry
	Wishlist []product.Product
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Entries) == 0 && len(s.Wishlist) == 0
}

func TakeSnapshot(c *Cart, w *Wishlist) Snapshot {
	return Snapshot{Entries: c.Entries(), Wishlist: w.Items()}
}

// Rehydrate rebuilds a cart and wishlist from stored state. Entries with
// quantity below MinQuantity are dropped, quantities above MaxQuantity are
// capped, repeated products are merged into the first occurrence and missing
// rental days are recomputed.
func Rehydrate(s Snapshot, calc rental.DurationCalculator) (*Cart, *Wishlist) {
	c := NewCart(calc)
	for _, e := range s.Entries {
		if e.product.ID() == "" || e.quantity < MinQuantity {
			continue
		}
		e.quantity = min(e.quantity, MaxQuantity)
		if i := c.index(e.product.ID()); i >= 0 {
			c.entries[i].quantity = mergeQuantity(c.entries[i].quantity, e.quantity)
			continue
		}
		if e.rentalDays < rental.MinimumBillableDays {
			e.rentalDays = c.defaultDays(e.product, e.dates)
		}
		c.entries = append(c.entries, e)
	}

	w := NewWishlist()
	for _, p := range s.Wishlist {
		if p.ID() == "" {
			continue
		}
		w.Add(p)
	}
	return c, w
}
