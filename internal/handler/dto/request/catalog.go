package request

import (
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/queries"
)

var ErrIncompleteAvailability = errs.New("available_from and available_to must be given together")

// ListProductsQuery takes condition, size, color and price_band as repeated
// parameters, e.g. ?size=S&size=M.
type ListProductsQuery struct {
	Search        string   `form:"search"`
	Category      string   `form:"category"`
	Conditions    []string `form:"condition" binding:"omitempty,dive,oneof=Excellent Good Fair"`
	Sizes         []string `form:"size" binding:"omitempty,dive,required"`
	Colors        []string `form:"color" binding:"omitempty,dive,required"`
	PriceBands    []string `form:"price_band" binding:"omitempty,dive,oneof=under-1000 1000-2000 2000-3000 above-3000"`
	MinPrice      *int64   `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice      *int64   `form:"max_price" binding:"omitempty,min=0"`
	AvailableFrom string   `form:"available_from"`
	AvailableTo   string   `form:"available_to"`
	Sort          string   `form:"sort" binding:"omitempty,oneof=featured price name deposit rating newest"`
	Order         string   `form:"order" binding:"omitempty,oneof=asc desc"`
	Page          int      `form:"page" binding:"omitempty,min=1"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListProductsQuery) ToFilters() (queries.ProductFilters, error) {
	filters := queries.ProductFilters{
		Search:     q.Search,
		Category:   q.Category,
		Conditions: q.Conditions,
		Sizes:      q.Sizes,
		Colors:     q.Colors,
		PriceBands: q.PriceBands,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Sort:       q.Sort,
		Order:      q.Order,
		Page:       q.Page,
		Limit:      q.Limit,
	}

	switch {
	case q.AvailableFrom == "" && q.AvailableTo == "":
	case q.AvailableFrom == "" || q.AvailableTo == "":
		return queries.ProductFilters{}, ErrIncompleteAvailability
	default:
		dates, err := rental.ParseDateRange(q.AvailableFrom, q.AvailableTo)
		if err != nil {
			return queries.ProductFilters{}, err
		}
		filters.Available = &dates
	}
	return filters, nil
}
