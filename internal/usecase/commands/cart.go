package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

import (
	"context"

	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/shared"
	"rent-elegance/internal/usecase/store"

	"github.com/google/uuid"
)

type AddToCartRequest struct {
	ProductID   string
	Quantity    int
	RentalDates *rental.DateRange
}

type UpdateCartItemRequest struct {
	Quantity   int
	RentalDays *int
}

type CartCommands interface {
	AddToCart(ctx context.Context, deviceID uuid.UUID, req AddToCartRequest) error
	UpdateCartItem(ctx context.Context, deviceID uuid.UUID, productID string, req UpdateCartItemRequest) error
	RemoveFromCart(ctx context.Context, deviceID uuid.UUID, productID string) error
	ClearCart(ctx context.Context, deviceID uuid.UUID) error
	AddToWishlist(ctx context.Context, deviceID uuid.UUID, productID string) error
	RemoveFromWishlist(ctx context.Context, deviceID uuid.UUID, productID string) error
	DismissNotification(ctx context.Context, deviceID uuid.UUID) error
}

type cartCommandsImpl struct {
	stores  store.Provider
	catalog shared.CatalogReader
	board   shared.NotificationBoard
}

func NewCartCommands(stores store.Provider, catalog shared.CatalogReader, board shared.NotificationBoard) CartCommands {
	return &cartCommandsImpl{stores: stores, catalog: catalog, board: board}
}

// AddToCart resolves the product from the catalog so stored entries always
// carry the canonical product record.
func (uc *cartCommandsImpl) AddToCart(ctx context.Context, deviceID uuid.UUID, req AddToCartRequest) error {
	p, err := uc.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return errs.Wrap(err, "add to cart")
	}
	uc.stores.Get(ctx, deviceID).AddToCart(ctx, p, req.Quantity, req.RentalDates)
	return nil
}

func (uc *cartCommandsImpl) UpdateCartItem(ctx context.Context, deviceID uuid.UUID, productID string, req UpdateCartItemRequest) error {
	uc.stores.Get(ctx, deviceID).UpdateCartItem(ctx, productID, req.Quantity, req.RentalDays)
	return nil
}

func (uc *cartCommandsImpl) RemoveFromCart(ctx context.Context, deviceID uuid.UUID, productID string) error {
	uc.stores.Get(ctx, deviceID).RemoveFromCart(ctx, productID)
	return nil
}

func (uc *cartCommandsImpl) ClearCart(ctx context.Context, deviceID uuid.UUID) error {
	uc.stores.Get(ctx, deviceID).ClearCart(ctx)
	return nil
}

func (uc *cartCommandsImpl) AddToWishlist(ctx context.Context, deviceID uuid.UUID, productID string) error {
	p, err := uc.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return errs.Wrap(err, "add to wishlist")
	}
	uc.stores.Get(ctx, deviceID).AddToWishlist(ctx, p)
	return nil
}

func (uc *cartCommandsImpl) RemoveFromWishlist(ctx context.Context, deviceID uuid.UUID, productID string) error {
	uc.stores.Get(ctx, deviceID).RemoveFromWishlist(ctx, productID)
	return nil
}

func (uc *cartCommandsImpl) DismissNotification(_ context.Context, deviceID uuid.UUID) error {
	uc.board.Dismiss(deviceID)
	return nil
}
