package response

import (
	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RentalDatesResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func fromDates(d *rental.DateRange) *RentalDatesResponse {
	if d == nil {
		return nil
	}
	return &RentalDatesResponse{StartDate: d.StartString(), EndDate: d.EndString()}
}

type CartItemResponse struct {
	Product     ProductResponse      `json:"product"`
	Quantity    int                  `json:"quantity"`
	RentalDates *RentalDatesResponse `json:"rentalDates,omitempty"`
	RentalDays  int                  `json:"rentalDays,omitempty"`
	LineTotal   int64                `json:"lineTotal"`
}

type TotalsResponse struct {
	Subtotal      int64 `json:"subtotal"`
	Deposit       int64 `json:"deposit"`
	Total         int64 `json:"total"`
	DistinctItems int   `json:"distinctItems"`
	TotalQuantity int   `json:"totalQuantity"`
}

func fromTotals(t cart.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:      t.Subtotal.Amount(),
		Deposit:       t.Deposit.Amount(),
		Total:         t.Total.Amount(),
		DistinctItems: t.DistinctItems,
		TotalQuantity: t.TotalQuantity,
	}
}

type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
}

func fromLines(lines []queries.CartLineView) ([]CartItemResponse, error) {
	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		p, err := FromProduct(l.Product)
		if err != nil {
			return nil, err
		}
		items = append(items, CartItemResponse{
			Product:     p,
			Quantity:    l.Quantity,
			RentalDates: fromDates(l.RentalDates),
			RentalDays:  l.RentalDays,
			LineTotal:   l.LineTotal.Amount(),
		})
	}
	return items, nil
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	items, err := fromLines(v.Items)
	if err != nil {
		return nil, err
	}
	return &CartResponse{Items: items, Totals: fromTotals(v.Totals)}, nil
}

type WishlistResponse struct {
	Items []ProductResponse `json:"items"`
	Count int               `json:"count"`
}

func FromWishlistView(v *queries.WishlistView) (*WishlistResponse, error) {
	items, err := FromProducts(v.Items)
	if err != nil {
		return nil, err
	}
	return &WishlistResponse{Items: items, Count: v.Count}, nil
}

type CountsResponse struct {
	CartItemCount int `json:"cartItemCount"`
	WishlistCount int `json:"wishlistCount"`
}

func FromCountsView(v *queries.CountsView) (CountsResponse, error) {
	var res CountsResponse
	if err := copier.Copy(&res, v); err != nil {
		return CountsResponse{}, err
	}
	return res, nil
}

type CheckoutSummaryResponse struct {
	Items         []CartItemResponse `json:"items"`
	ItemCount     int                `json:"itemCount"`
	TotalQuantity int                `json:"totalQuantity"`
	Subtotal      int64              `json:"subtotal"`
	Delivery      int64              `json:"delivery"`
	DeliveryLabel string             `json:"deliveryLabel"`
	Deposit       int64              `json:"deposit"`
	Total         int64              `json:"total"`
	TotalLabel    string             `json:"totalLabel"`
}

func FromCheckoutSummary(s *queries.CheckoutSummary) (*CheckoutSummaryResponse, error) {
	items, err := fromLines(s.Items)
	if err != nil {
		return nil, err
	}
	deliveryLabel := s.Delivery.String()
	if s.Delivery.IsZero() {
		deliveryLabel = "Free"
	}
	return &CheckoutSummaryResponse{
		Items:         items,
		ItemCount:     s.ItemCount,
		TotalQuantity: s.TotalQuantity,
		Subtotal:      s.Subtotal.Amount(),
		Delivery:      s.Delivery.Amount(),
		DeliveryLabel: deliveryLabel,
		Deposit:       s.Deposit.Amount(),
		Total:         s.Total.Amount(),
		TotalLabel:    s.Total.String(),
	}, nil
}

type NotificationResponse struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Origin   string `json:"origin,omitempty"`
	Visible  bool   `json:"visible"`
}

func FromNotification(n notification.Notification) (NotificationResponse, error) {
	var res NotificationResponse
	if err := copier.Copy(&res, &n); err != nil {
		return NotificationResponse{}, err
	}
	return res, nil
}
