package cart

import (
	"slices"

	"rent-elegance/internal/domain/product"
)

// Wishlist holds products without quantity. Each id appears at most once.
type Wishlist struct {
	items []product.Product
}

func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Add reports whether the product was added. Adding a present product is a no-op.
func (w *Wishlist) Add(p product.Product) bool {
	if w.Contains(p.ID()) {
		return false
	}
	w.items = append(w.items, p)
	return true
}

func (w *Wishlist) Remove(productID string) (product.Product, bool) {
	i := w.index(productID)
	if i < 0 {
		return product.Product{}, false
	}
	removed := w.items[i]
	w.items = slices.Delete(w.items, i, i+1)
	return removed, true
}

func (w *Wishlist) Contains(productID string) bool {
	return w.index(productID) >= 0
}

func (w *Wishlist) Items() []product.Product {
	return slices.Clone(w.items)
}

func (w *Wishlist) Len() int {
	return len(w.items)
}

func (w *Wishlist) index(productID string) int {
	return slices.IndexFunc(w.items, func(p product.Product) bool {
		return p.ID() == productID
	})
}
