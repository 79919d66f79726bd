package product

import (
	"errors"
	"slices"
	"strings"

	"rent-elegance/internal/domain/rental"
)

var (
	ErrMissingID       = errors.New("product id is required")
	ErrMissingName     = errors.New("product name is required")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeDeposit = errors.New("deposit cannot be negative")
)

const DefaultRentalDuration = 1

type Product struct {
	id             string
	name           string
	description    string
	category       string
	price          Money
	originalPrice  Money
	size           string
	sizes          []string
	condition      Condition
	brand          string
	material       string
	color          string
	images         []string
	owner          Owner
	availability   Availability
	tags           []string
	rentalDuration int
	deposit        Money
}

// FromRecord validates a catalog or storage record and normalizes it.
func FromRecord(r Record) (Product, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = strings.TrimSpace(r.LegacyID)
	}
	if id == "" {
		return Product{}, ErrMissingID
	}
	if strings.TrimSpace(r.Name) == "" {
		return Product{}, ErrMissingName
	}
	if r.Price < 0 {
		return Product{}, ErrNegativePrice
	}
	if r.Deposit < 0 {
		return Product{}, ErrNegativeDeposit
	}
	condition, err := ParseCondition(r.Condition)
	if err != nil {
		return Product{}, err
	}

	sizes := slices.Clone(r.Sizes)
	if len(sizes) == 0 && r.Size != "" {
		sizes = []string{r.Size}
	}
	duration := r.RentalDuration
	if duration < 1 {
		duration = DefaultRentalDuration
	}

	p := Product{
		id:             id,
		name:           r.Name,
		description:    r.Description,
		category:       r.Category,
		price:          NewMoney(r.Price),
		originalPrice:  NewMoney(r.OriginalPrice),
		size:           r.Size,
		sizes:          sizes,
		condition:      condition,
		brand:          r.Brand,
		material:       r.Material,
		color:          r.Color,
		images:         slices.Clone(r.Images),
		tags:           slices.Clone(r.Tags),
		rentalDuration: duration,
		deposit:        NewMoney(r.Deposit),
	}
	if r.Owner != nil {
		p.owner = Owner{
			Name:         r.Owner.Name,
			Rating:       r.Owner.Rating,
			TotalRentals: r.Owner.TotalRentals,
			Location:     r.Owner.Location,
			JoinDate:     r.Owner.JoinDate,
		}
	}
	if r.Availability != nil {
		p.availability = Availability{
			StartDate:   r.Availability.StartDate,
			EndDate:     r.Availability.EndDate,
			IsAvailable: r.Availability.IsAvailable,
		}
	}
	return p, nil
}

func (p Product) ID() string                 { return p.id }
func (p Product) Name() string               { return p.name }
func (p Product) Description() string        { return p.description }
func (p Product) Category() string           { return p.category }
func (p Product) Price() Money               { return p.price }
func (p Product) OriginalPrice() Money       { return p.originalPrice }
func (p Product) Size() string               { return p.size }
func (p Product) Sizes() []string            { return slices.Clone(p.sizes) }
func (p Product) Condition() Condition       { return p.condition }
func (p Product) Brand() string              { return p.brand }
func (p Product) Material() string           { return p.material }
func (p Product) Color() string              { return p.color }
func (p Product) Images() []string           { return slices.Clone(p.images) }
func (p Product) Owner() Owner               { return p.owner }
func (p Product) Availability() Availability { return p.availability }
func (p Product) Tags() []string             { return slices.Clone(p.tags) }
func (p Product) RentalDuration() int        { return p.rentalDuration }
func (p Product) Deposit() Money             { return p.deposit }

func (p Product) HasSize(size string) bool {
	return slices.ContainsFunc(p.sizes, func(s string) bool {
		return strings.EqualFold(s, size)
	})
}

// Window returns the parsed availability window. Products without dates
// have no window.
func (p Product) Window() (rental.Window, bool) {
	w, err := rental.NewWindow(p.availability.StartDate, p.availability.EndDate, p.availability.IsAvailable)
	if err != nil {
		return rental.Window{}, false
	}
	return w, true
}

// Matches reports whether the query appears in the name, description, brand or tags.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.name), q) ||
		strings.Contains(strings.ToLower(p.description), q) ||
		strings.Contains(strings.ToLower(p.brand), q) {
		return true
	}
	return slices.ContainsFunc(p.tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

func (p Product) Record() Record {
	r := Record{
		ID:             p.id,
		Name:           p.name,
		Description:    p.description,
		Category:       p.category,
		Price:          p.price.Amount(),
		OriginalPrice:  p.originalPrice.Amount(),
		Size:           p.size,
		Sizes:          slices.Clone(p.sizes),
		Condition:      p.condition.String(),
		Brand:          p.brand,
		Material:       p.material,
		Color:          p.color,
		Images:         slices.Clone(p.images),
		Tags:           slices.Clone(p.tags),
		RentalDuration: p.rentalDuration,
		Deposit:        p.deposit.Amount(),
	}
	if p.owner != (Owner{}) {
		r.Owner = &OwnerRecord{
			Name:         p.owner.Name,
			Rating:       p.owner.Rating,
			TotalRentals: p.owner.TotalRentals,
			Location:     p.owner.Location,
			JoinDate:     p.owner.JoinDate,
		}
	}
	if p.availability != (Availability{}) {
		r.Availability = &AvailabilityRecord{
			StartDate:   p.availability.StartDate,
			EndDate:     p.availability.EndDate,
			IsAvailable: p.availability.IsAvailable,
		}
	}
	return r
}
