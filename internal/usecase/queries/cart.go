package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/cart_mock.go -package=queriesmock

import (
	"context"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/shared"
	"rent-elegance/internal/usecase/store"

	"github.com/google/uuid"
)

var ErrEmptyCart = errs.ErrEmptyCart

type CartLineView struct {
	Product     product.Product
	Quantity    int
	RentalDates *rental.DateRange
	RentalDays  int
	LineTotal   product.Money
}

type CartView struct {
	Items  []CartLineView
	Totals cart.Totals
}

type WishlistView struct {
	Items []product.Product
	Count int
}

type CountsView struct {
	CartItemCount int
	WishlistCount int
}

// CheckoutSummary is the order summary shown before placing an order.
// Delivery is always free.
type CheckoutSummary struct {
	Items         []CartLineView
	ItemCount     int
	TotalQuantity int
	Subtotal      product.Money
	Delivery      product.Money
	Deposit       product.Money
	Total         product.Money
}

type CartQueries interface {
	GetCart(ctx context.Context, deviceID uuid.UUID) (*CartView, error)
	GetWishlist(ctx context.Context, deviceID uuid.UUID) (*WishlistView, error)
	GetCounts(ctx context.Context, deviceID uuid.UUID) (*CountsView, error)
	GetCheckoutSummary(ctx context.Context, deviceID uuid.UUID) (*CheckoutSummary, error)
	GetNotification(ctx context.Context, deviceID uuid.UUID) (notification.Notification, bool)
}

type cartQueriesImpl struct {
	stores store.Provider
	board  shared.NotificationBoard
}

func NewCartQueries(stores store.Provider, board shared.NotificationBoard) CartQueries {
	return &cartQueriesImpl{stores: stores, board: board}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, deviceID uuid.UUID) (*CartView, error) {
	entries := q.stores.View(ctx, deviceID).CartItems()
	return &CartView{
		Items:  toLineViews(entries),
		Totals: cart.Summarize(entries),
	}, nil
}

func (q *cartQueriesImpl) GetWishlist(ctx context.Context, deviceID uuid.UUID) (*WishlistView, error) {
	items := q.stores.View(ctx, deviceID).WishlistItems()
	return &WishlistView{Items: items, Count: len(items)}, nil
}

func (q *cartQueriesImpl) GetCounts(ctx context.Context, deviceID uuid.UUID) (*CountsView, error) {
	st := q.stores.View(ctx, deviceID)
	return &CountsView{
		CartItemCount: st.CartItemCount(),
		WishlistCount: st.WishlistCount(),
	}, nil
}

func (q *cartQueriesImpl) GetCheckoutSummary(ctx context.Context, deviceID uuid.UUID) (*CheckoutSummary, error) {
	entries := q.stores.View(ctx, deviceID).CartItems()
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	totals := cart.Summarize(entries)
	return &CheckoutSummary{
		Items:         toLineViews(entries),
		ItemCount:     totals.DistinctItems,
		TotalQuantity: totals.TotalQuantity,
		Subtotal:      totals.Subtotal,
		Delivery:      product.NewMoney(0),
		Deposit:       totals.Deposit,
		Total:         totals.Total,
	}, nil
}

func (q *cartQueriesImpl) GetNotification(_ context.Context, deviceID uuid.UUID) (notification.Notification, bool) {
	return q.board.Current(deviceID)
}

func toLineViews(entries []cart.Entry) []CartLineView {
	out := make([]CartLineView, 0, len(entries))
	for _, e := range entries {
		line := CartLineView{
			Product:    e.Product(),
			Quantity:   e.Quantity(),
			RentalDays: e.RentalDays(),
			LineTotal:  cart.LineTotal(e),
		}
		if dates, ok := e.RentalDates(); ok {
			line.RentalDates = &dates
		}
		out = append(out, line)
	}
	return out
}
