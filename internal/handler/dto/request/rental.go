package request

import (
	"rent-elegance/internal/domain/rental"
)

type RentalQuoteQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	ProductID string `form:"product_id"`
}

func (q *RentalQuoteQuery) ToDateRange() (rental.DateRange, error) {
	return rental.ParseDateRange(q.StartDate, q.EndDate)
}
