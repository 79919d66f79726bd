//go:build unit || e2e

package builder

import (
	"rent-elegance/internal/domain/product"
)

type ProductBuilder struct {
	Record product.Record
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Record: product.Record{
			ID:            "dress-001",
			Name:          "Emerald Silk Gown",
			Description:   "Floor length silk gown with a sweetheart neckline",
			Category:      "evening-wear",
			Price:         1500,
			OriginalPrice: 18000,
			Size:          "M",
			Sizes:         []string{"S", "M", "L"},
			Condition:     "Excellent",
			Brand:         "Sabyasachi",
			Material:      "Silk",
			Color:         "Emerald",
			Images:        []string{"/images/emerald-gown.jpg"},
			Owner: &product.OwnerRecord{
				Name:         "Priya",
				Rating:       4.8,
				TotalRentals: 32,
				Location:     "Mumbai",
				JoinDate:     "2023-01-15",
			},
			Availability: &product.AvailabilityRecord{
				StartDate:   "2024-01-01",
				EndDate:     "2024-12-31",
				IsAvailable: true,
			},
			Tags:           []string{"wedding", "party"},
			RentalDuration: 3,
			Deposit:        2000,
		},
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.Record.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Record.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	b.Record.Price = price
	return b
}

func (b *ProductBuilder) WithDeposit(deposit int64) *ProductBuilder {
	b.Record.Deposit = deposit
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.Record.Category = category
	return b
}

func (b *ProductBuilder) WithCondition(condition string) *ProductBuilder {
	b.Record.Condition = condition
	return b
}

func (b *ProductBuilder) WithRentalDuration(days int) *ProductBuilder {
	b.Record.RentalDuration = days
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() (product.Product, error) {
	return product.FromRecord(b.Record)
}

func (b *ProductBuilder) MustBuild() product.Product {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *ProductBuilder) BuildRecord() product.Record {
	return b.Record
}
