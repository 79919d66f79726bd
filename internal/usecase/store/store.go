package store

import (
	"context"
	"log/slog"
	"sync"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store owns the cart and wishlist of one device. Operations are serialized
// and every mutation is written through to the repository in order.
type Store struct {
	mu       sync.Mutex
	deviceID uuid.UUID
	repo     shared.SnapshotRepository
	sink     shared.NotificationSink
	calc     rental.DurationCalculator
	logger   *slog.Logger

	cart        *cart.Cart
	wishlist    *cart.Wishlist
	initialized bool
	closed      bool
}

func New(deviceID uuid.UUID, repo shared.SnapshotRepository, sink shared.NotificationSink, calc rental.DurationCalculator, logger *slog.Logger) *Store {
	if calc == nil {
		calc = rental.NewDefaultDurationCalculator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		deviceID: deviceID,
		repo:     repo,
		sink:     sink,
		calc:     calc,
		logger:   logger,
		cart:     cart.NewCart(calc),
		wishlist: cart.NewWishlist(),
	}
}

func (s *Store) DeviceID() uuid.UUID {
	return s.deviceID
}

// Init rehydrates the store once. A load failure leaves the store empty.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true

	snap, err := s.repo.Load(ctx, s.deviceID)
	if err != nil {
		s.logger.Warn("failed to load device snapshot, starting empty",
			"device_id", s.deviceID,
			"error", err)
		return
	}
	s.cart, s.wishlist = cart.Rehydrate(snap, s.calc)
}

// Dispose flushes the current state and closes the store. Later mutations are ignored.
func (s *Store) Dispose(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.initialized {
		s.persist(ctx)
	}
	s.closed = true
}

func (s *Store) AddToCart(ctx context.Context, p product.Product, quantity int, dates *rental.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.cart.Add(p, quantity, dates) {
		s.emit(notification.QuantityUpdated(p.Name()))
	} else {
		s.emit(notification.AddedToCart(p.Name()))
	}
	s.persist(ctx)
}

func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	removed, ok := s.cart.Remove(productID)
	if !ok {
		return
	}
	s.emit(notification.RemovedFromCart(removed.Product().Name()))
	s.persist(ctx)
}

// UpdateCartItem sets an entry's quantity. A quantity below one removes the entry.
func (s *Store) UpdateCartItem(ctx context.Context, productID string, quantity int, rentalDays *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if !s.cart.Update(productID, quantity, rentalDays) {
		return
	}
	s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.cart.Clear() > 0 {
		s.emit(notification.CartCleared())
	}
	s.persist(ctx)
}

func (s *Store) AddToWishlist(ctx context.Context, p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if !s.wishlist.Add(p) {
		return
	}
	s.emit(notification.AddedToWishlist(p.Name()))
	s.persist(ctx)
}

func (s *Store) RemoveFromWishlist(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	removed, ok := s.wishlist.Remove(productID)
	if !ok {
		return
	}
	s.emit(notification.RemovedFromWishlist(removed.Name()))
	s.persist(ctx)
}

func (s *Store) CartItems() []cart.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

func (s *Store) WishlistItems() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}

func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

func (s *Store) CartTotal() product.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Subtotal(s.cart.Entries())
}

// CartItemCount is the sum of quantities, not the number of entries.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.TotalQuantity(s.cart.Entries())
}

func (s *Store) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Len()
}

func (s *Store) Totals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Summarize(s.cart.Entries())
}

// persist must be called with mu held. Failures are logged and dropped so the
// in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	snap := cart.TakeSnapshot(s.cart, s.wishlist)
	if err := s.repo.Save(context.WithoutCancel(ctx), s.deviceID, snap); err != nil {
		s.logger.Error("failed to persist device snapshot",
			"device_id", s.deviceID,
			"error", err)
	}
}

func (s *Store) emit(n notification.Notification) {
	if s.sink == nil {
		return
	}
	s.sink.Notify(s.deviceID, n)
}
