package response

import (
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID             string                      `json:"id"`
	Name           string                      `json:"name"`
	Description    string                      `json:"description,omitempty"`
	Category       string                      `json:"category"`
	Price          int64                       `json:"price"`
	PriceLabel     string                      `json:"priceLabel"`
	OriginalPrice  int64                       `json:"originalPrice,omitempty"`
	Size           string                      `json:"size,omitempty"`
	Sizes          []string                    `json:"sizes"`
	Condition      string                      `json:"condition"`
	Brand          string                      `json:"brand,omitempty"`
	Material       string                      `json:"material,omitempty"`
	Color          string                      `json:"color,omitempty"`
	Images         []string                    `json:"images"`
	Owner          *product.OwnerRecord        `json:"owner,omitempty"`
	Availability   *product.AvailabilityRecord `json:"availability,omitempty"`
	Tags           []string                    `json:"tags"`
	RentalDuration int                         `json:"rentalDuration"`
	Deposit        int64                       `json:"deposit"`
}

func FromProduct(p product.Product) (ProductResponse, error) {
	var res ProductResponse
	rec := p.Record()
	if err := copier.CopyWithOption(&res, &rec, copier.Option{DeepCopy: true}); err != nil {
		return ProductResponse{}, err
	}
	res.PriceLabel = p.Price().String()
	return res, nil
}

func FromProducts(items []product.Product) ([]ProductResponse, error) {
	res := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		r, err := FromProduct(p)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type ProductListResponse struct {
	Items      []ProductResponse  `json:"items"`
	Pagination queries.Pagination `json:"pagination"`
}

func FromProductPage(page *queries.ProductPage) (*ProductListResponse, error) {
	items, err := FromProducts(page.Items)
	if err != nil {
		return nil, err
	}
	return &ProductListResponse{Items: items, Pagination: page.Pagination}, nil
}

// CategoryResponse is filled from the category getters.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}

func FromCategory(c product.Category) (CategoryResponse, error) {
	var res CategoryResponse
	if err := copier.Copy(&res, c); err != nil {
		return CategoryResponse{}, err
	}
	return res, nil
}

func FromCategories(items []product.Category) ([]CategoryResponse, error) {
	res := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		r, err := FromCategory(c)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
