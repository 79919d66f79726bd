package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/rental_mock.go -package=queriesmock

import (
	"context"

	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/usecase/shared"
)

type RentalQuote struct {
	Dates        rental.DateRange
	RawDays      int
	BillableDays int
	// Set when the quote was requested for a product.
	Product   *product.Product
	Price     product.Money
	Deposit   product.Money
	Total     product.Money
	Available bool
}

type RentalQueries interface {
	Quote(ctx context.Context, dates rental.DateRange, productID string) (*RentalQuote, error)
}

type rentalQueriesImpl struct {
	calc    rental.DurationCalculator
	catalog shared.CatalogReader
}

func NewRentalQueries(calc rental.DurationCalculator, catalog shared.CatalogReader) RentalQueries {
	return &rentalQueriesImpl{calc: calc, catalog: catalog}
}

// Quote computes billable days. With a productID it also prices one rental
// of that product and checks the product's availability window.
func (q *rentalQueriesImpl) Quote(ctx context.Context, dates rental.DateRange, productID string) (*RentalQuote, error) {
	quote := &RentalQuote{
		Dates:        dates,
		RawDays:      dates.RawDays(),
		BillableDays: q.calc.BillableDays(dates),
	}
	if productID == "" {
		return quote, nil
	}

	p, err := q.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	quote.Product = &p
	quote.Price = p.Price()
	quote.Deposit = p.Deposit()
	quote.Total = p.Price().Add(p.Deposit())
	if w, ok := p.Window(); ok {
		quote.Available = w.Admits(dates)
	}
	return quote, nil
}
