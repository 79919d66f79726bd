package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.ErrProductNotFound
	ErrCategoryNotFound = errs.ErrCategoryNotFound
)

// SnapshotRepository persists the cart and wishlist of one device.
// Load returns an empty snapshot for unknown devices.
type SnapshotRepository interface {
	Load(ctx context.Context, deviceID uuid.UUID) (cart.Snapshot, error)
	Save(ctx context.Context, deviceID uuid.UUID, snap cart.Snapshot) error
}

// NotificationSink receives user-facing messages. Notify must not block.
type NotificationSink interface {
	Notify(deviceID uuid.UUID, n notification.Notification)
}

type CatalogReader interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	ListCategories(ctx context.Context) ([]product.Category, error)
	GetProductByID(ctx context.Context, id string) (product.Product, error)
	GetCategoryByID(ctx context.Context, id string) (product.Category, error)
}

// NotificationBoard exposes the latest notification of each device.
type NotificationBoard interface {
	NotificationSink
	Current(deviceID uuid.UUID) (notification.Notification, bool)
	Dismiss(deviceID uuid.UUID)
}
