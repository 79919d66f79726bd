package cart

import (
	"slices"

	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Entry is one product in the cart. quantity stays within [MinQuantity, MaxQuantity].
type Entry struct {
	product    product.Product
	quantity   int
	dates      *rental.DateRange
	rentalDays int
}

// ReconstructEntry restores an entry from storage without enforcing invariants.
// Use Rehydrate to obtain a valid cart from reconstructed entries.
func ReconstructEntry(p product.Product, quantity int, dates *rental.DateRange, rentalDays int) Entry {
	return Entry{product: p, quantity: quantity, dates: copyRange(dates), rentalDays: rentalDays}
}

func (e Entry) Product() product.Product { return e.product }
func (e Entry) ProductID() string        { return e.product.ID() }
func (e Entry) Quantity() int            { return e.quantity }
func (e Entry) RentalDays() int          { return e.rentalDays }

func (e Entry) RentalDates() (rental.DateRange, bool) {
	if e.dates == nil {
		return rental.DateRange{}, false
	}
	return *e.dates, true
}

type Cart struct {
	entries []Entry
	calc    rental.DurationCalculator
}

func NewCart(calc rental.DurationCalculator) *Cart {
	if calc == nil {
		calc = rental.NewDefaultDurationCalculator()
	}
	return &Cart{calc: calc}
}

// Add merges into an existing entry for the same product, otherwise appends.
// Quantities are clamped to [MinQuantity, MaxQuantity], merged totals included.
// A supplied date range replaces the entry's range. Reports whether an existing
// entry was updated.
func (c *Cart) Add(p product.Product, quantity int, dates *rental.DateRange) bool {
	quantity = clampQuantity(quantity)

	if i := c.index(p.ID()); i >= 0 {
		e := &c.entries[i]
		e.quantity = mergeQuantity(e.quantity, quantity)
		if dates != nil {
			e.dates = copyRange(dates)
			e.rentalDays = c.calc.BillableDays(*dates)
		}
		return true
	}

	c.entries = append(c.entries, Entry{
		product:    p,
		quantity:   quantity,
		dates:      copyRange(dates),
		rentalDays: c.defaultDays(p, dates),
	})
	return false
}

func (c *Cart) Remove(productID string) (Entry, bool) {
	i := c.index(productID)
	if i < 0 {
		return Entry{}, false
	}
	removed := c.entries[i]
	c.entries = slices.Delete(c.entries, i, i+1)
	return removed, true
}

// Update sets the quantity of an entry, removing it when quantity drops below
// MinQuantity. Quantities above MaxQuantity are capped and rentalDays below 1
// are ignored.
func (c *Cart) Update(productID string, quantity int, rentalDays *int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if quantity < MinQuantity {
		c.entries = slices.Delete(c.entries, i, i+1)
		return true
	}
	c.entries[i].quantity = min(quantity, MaxQuantity)
	if rentalDays != nil && *rentalDays >= rental.MinimumBillableDays {
		c.entries[i].rentalDays = *rentalDays
	}
	return true
}

func (c *Cart) Clear() int {
	n := len(c.entries)
	c.entries = nil
	return n
}

func (c *Cart) Find(productID string) (Entry, bool) {
	i := c.index(productID)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Cart) Entries() []Entry {
	return slices.Clone(c.entries)
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c *Cart) index(productID string) int {
	return slices.IndexFunc(c.entries, func(e Entry) bool {
		return e.product.ID() == productID
	})
}

func (c *Cart) defaultDays(p product.Product, dates *rental.DateRange) int {
	if dates != nil {
		return c.calc.BillableDays(*dates)
	}
	return p.RentalDuration()
}

func clampQuantity(q int) int {
	return max(MinQuantity, min(q, MaxQuantity))
}

// mergeQuantity adds two in-range quantities without leaving the range.
func mergeQuantity(a, b int) int {
	if b > MaxQuantity-a {
		return MaxQuantity
	}
	return a + b
}

func copyRange(r *rental.DateRange) *rental.DateRange {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}
