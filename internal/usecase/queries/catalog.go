package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/shared"
)

const (
	SortFeatured = "featured"
	SortPrice    = "price"
	SortName     = "name"
	SortDeposit  = "deposit"
	SortRating   = "rating"
	SortNewest   = "newest"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Price bands offered by the storefront's price filter, in rupees.
const (
	PriceUnder1000  = "under-1000"
	Price1000To2000 = "1000-2000"
	Price2000To3000 = "2000-3000"
	PriceAbove3000  = "above-3000"
)

var (
	ErrInvalidSort      = errs.New("invalid sort option")
	ErrInvalidPriceBand = errs.New("invalid price band")
)

// ProductFilters combine with AND; each multi-value filter matches any of its values.
type ProductFilters struct {
	Search     string
	Category   string
	Conditions []string
	Sizes      []string
	Colors     []string
	PriceBands []string
	MinPrice   *int64
	MaxPrice   *int64
	Available  *rental.DateRange
	Sort       string
	Order      string
	Page       int
	Limit      int
}

type ProductPage struct {
	Items      []product.Product
	Pagination Pagination
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, filters ProductFilters) (*ProductPage, error)
	GetProduct(ctx context.Context, id string) (product.Product, error)
	ListCategories(ctx context.Context) ([]product.Category, error)
	GetCategory(ctx context.Context, id string) (product.Category, error)
}

type catalogQueriesImpl struct {
	catalog shared.CatalogReader
}

func NewCatalogQueries(catalog shared.CatalogReader) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filters ProductFilters) (*ProductPage, error) {
	less, err := productOrdering(filters.Sort, filters.Order)
	if err != nil {
		return nil, err
	}
	for _, band := range filters.PriceBands {
		if _, ok := priceBands[band]; !ok {
			return nil, ErrInvalidPriceBand
		}
	}

	all, err := q.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}

	matched := make([]product.Product, 0, len(all))
	for _, p := range all {
		if filters.matches(p) {
			matched = append(matched, p)
		}
	}
	if less != nil {
		slices.SortStableFunc(matched, less)
	}

	start, end, page := Paginate(len(matched), filters.Page, filters.Limit)
	return &ProductPage{Items: matched[start:end], Pagination: page}, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id string) (product.Product, error) {
	return q.catalog.GetProductByID(ctx, id)
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]product.Category, error) {
	return q.catalog.ListCategories(ctx)
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id string) (product.Category, error) {
	return q.catalog.GetCategoryByID(ctx, id)
}

func (f ProductFilters) matches(p product.Product) bool {
	if !p.Matches(f.Search) {
		return false
	}
	if f.Category != "" && p.Category() != f.Category {
		return false
	}
	if len(f.Conditions) > 0 && !containsFold(f.Conditions, p.Condition().String()) {
		return false
	}
	if len(f.Sizes) > 0 && !slices.ContainsFunc(f.Sizes, p.HasSize) {
		return false
	}
	if len(f.Colors) > 0 && !containsFold(f.Colors, p.Color()) {
		return false
	}
	price := p.Price().Amount()
	if len(f.PriceBands) > 0 && !slices.ContainsFunc(f.PriceBands, func(band string) bool {
		return priceBands[band](price)
	}) {
		return false
	}
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if f.Available != nil {
		w, ok := p.Window()
		if !ok || !w.Admits(*f.Available) {
			return false
		}
	}
	return true
}

var priceBands = map[string]func(price int64) bool{
	PriceUnder1000:  func(price int64) bool { return price < 1000 },
	Price1000To2000: func(price int64) bool { return price >= 1000 && price <= 2000 },
	Price2000To3000: func(price int64) bool { return price > 2000 && price <= 3000 },
	PriceAbove3000:  func(price int64) bool { return price > 3000 },
}

func containsFold(values []string, s string) bool {
	return slices.ContainsFunc(values, func(v string) bool { return strings.EqualFold(v, s) })
}

// productOrdering returns nil for the catalog's own order. Rating and newest
// default to descending, the other sorts to ascending.
func productOrdering(sortBy, order string) (func(a, b product.Product) int, error) {
	var less func(a, b product.Product) int
	descByDefault := false
	switch sortBy {
	case "", SortFeatured:
		return nil, nil
	case SortPrice:
		less = func(a, b product.Product) int { return cmp.Compare(a.Price().Amount(), b.Price().Amount()) }
	case SortName:
		less = func(a, b product.Product) int { return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name())) }
	case SortDeposit:
		less = func(a, b product.Product) int { return cmp.Compare(a.Deposit().Amount(), b.Deposit().Amount()) }
	case SortRating:
		less = func(a, b product.Product) int { return cmp.Compare(a.Owner().Rating, b.Owner().Rating) }
		descByDefault = true
	case SortNewest:
		// the catalog carries no creation date; later ids are newer
		less = func(a, b product.Product) int { return strings.Compare(a.ID(), b.ID()) }
		descByDefault = true
	default:
		return nil, ErrInvalidSort
	}

	if order == "" {
		order = OrderAsc
		if descByDefault {
			order = OrderDesc
		}
	}
	switch order {
	case OrderAsc:
		return less, nil
	case OrderDesc:
		return func(a, b product.Product) int { return less(b, a) }, nil
	default:
		return nil, ErrInvalidSort
	}
}
