package response

import (
	"rent-elegance/internal/usecase/queries"
)

type RentalQuoteResponse struct {
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	RawDays      int              `json:"rawDays"`
	BillableDays int              `json:"billableDays"`
	Product      *ProductResponse `json:"product,omitempty"`
	Price        int64            `json:"price,omitempty"`
	Deposit      int64            `json:"deposit,omitempty"`
	Total        int64            `json:"total,omitempty"`
	Available    bool             `json:"available"`
}

func FromRentalQuote(q *queries.RentalQuote) (*RentalQuoteResponse, error) {
	res := &RentalQuoteResponse{
		StartDate:    q.Dates.StartString(),
		EndDate:      q.Dates.EndString(),
		RawDays:      q.RawDays,
		BillableDays: q.BillableDays,
		Price:        q.Price.Amount(),
		Deposit:      q.Deposit.Amount(),
		Total:        q.Total.Amount(),
		Available:    q.Available,
	}
	if q.Product != nil {
		p, err := FromProduct(*q.Product)
		if err != nil {
			return nil, err
		}
		res.Product = &p
	}
	return res, nil
}
