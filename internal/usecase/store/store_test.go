//go:build unit

package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/infra/notify"
	"rent-elegance/internal/infra/repository"
	"rent-elegance/internal/infra/storage"
	"rent-elegance/internal/pkg/clock"
	"rent-elegance/internal/usecase/store"
	"rent-elegance/tests/common/builder"
	sharedmock "rent-elegance/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *sharedmock.MockSnapshotRepository
	sink     *sharedmock.MockNotificationSink
	logger   *slog.Logger
	deviceID uuid.UUID
	gown     product.Product
	dress    product.Product
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = sharedmock.NewMockSnapshotRepository(s.ctrl)
	s.sink = sharedmock.NewMockNotificationSink(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.deviceID = uuid.New()
	s.gown = builder.NewProductBuilder().WithID("p1").WithName("Emerald Gown").WithPrice(1000).MustBuild()
	s.dress = builder.NewProductBuilder().WithID("p2").WithName("Velvet Dress").WithPrice(500).MustBuild()
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) newStore() *store.Store {
	s.repo.EXPECT().Load(gomock.Any(), s.deviceID).Return(cart.Snapshot{}, nil)
	st := store.New(s.deviceID, s.repo, s.sink, nil, s.logger)
	st.Init(context.Background())
	return st
}

func (s *StoreTestSuite) TestAddToCart_WritesThroughAndNotifies() {
	st := s.newStore()
	ctx := context.Background()

	gomock.InOrder(
		s.sink.EXPECT().Notify(s.deviceID, notification.AddedToCart("Emerald Gown")),
		s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, snap cart.Snapshot) error {
				s.Len(snap.Entries, 1)
				s.Equal(2, snap.Entries[0].Quantity())
				return nil
			}),
		s.sink.EXPECT().Notify(s.deviceID, notification.QuantityUpdated("Emerald Gown")),
		s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, snap cart.Snapshot) error {
				s.Equal(3, snap.Entries[0].Quantity())
				return nil
			}),
	)

	st.AddToCart(ctx, s.gown, 2, nil)
	st.AddToCart(ctx, s.gown, 1, nil)

	s.Equal(int64(3000), st.CartTotal().Amount())
	s.Equal(3, st.CartItemCount())
}

func (s *StoreTestSuite) TestSaveFailureIsSwallowed() {
	st := s.newStore()
	s.sink.EXPECT().Notify(gomock.Any(), gomock.Any())
	s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).Return(errors.New("disk full"))

	st.AddToCart(context.Background(), s.gown, 1, nil)

	s.Equal(1, st.CartItemCount())
}

func (s *StoreTestSuite) TestLoadFailureStartsEmpty() {
	s.repo.EXPECT().Load(gomock.Any(), s.deviceID).Return(cart.Snapshot{}, errors.New("timeout"))
	st := store.New(s.deviceID, s.repo, s.sink, nil, s.logger)
	st.Init(context.Background())
	st.Init(context.Background())

	s.Equal(0, st.CartItemCount())
	s.Equal(0, st.WishlistCount())
}

func (s *StoreTestSuite) TestNoOpsDoNotPersist() {
	st := s.newStore()
	ctx := context.Background()

	st.RemoveFromCart(ctx, "missing")
	st.UpdateCartItem(ctx, "missing", 3, nil)
	st.RemoveFromWishlist(ctx, "missing")

	s.Empty(st.CartItems())
}

func (s *StoreTestSuite) TestWishlistNotifications() {
	st := s.newStore()
	ctx := context.Background()

	s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		s.sink.EXPECT().Notify(s.deviceID, notification.AddedToWishlist("Velvet Dress")),
		s.sink.EXPECT().Notify(s.deviceID, notification.RemovedFromWishlist("Velvet Dress")),
	)

	st.AddToWishlist(ctx, s.dress)
	st.AddToWishlist(ctx, s.dress)
	s.Equal(1, st.WishlistCount())
	s.True(st.IsInWishlist("p2"))

	st.RemoveFromWishlist(ctx, "p2")
	s.Equal(0, st.WishlistCount())
}

func (s *StoreTestSuite) TestRemoveUpdateAndClear() {
	st := s.newStore()
	ctx := context.Background()
	s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).Return(nil).AnyTimes()

	gomock.InOrder(
		s.sink.EXPECT().Notify(s.deviceID, notification.AddedToCart("Emerald Gown")),
		s.sink.EXPECT().Notify(s.deviceID, notification.AddedToCart("Velvet Dress")),
		s.sink.EXPECT().Notify(s.deviceID, notification.RemovedFromCart("Emerald Gown")),
		s.sink.EXPECT().Notify(s.deviceID, notification.CartCleared()),
	)

	st.AddToCart(ctx, s.gown, 1, nil)
	st.AddToCart(ctx, s.dress, 1, nil)

	days := 4
	st.UpdateCartItem(ctx, "p2", 5, &days)
	items := st.CartItems()
	s.Require().Len(items, 2)
	s.Equal(5, items[1].Quantity())
	s.Equal(4, items[1].RentalDays())

	st.RemoveFromCart(ctx, "p1")
	s.Equal(5, st.CartItemCount())

	st.ClearCart(ctx)
	s.Equal(0, st.CartItemCount())
	s.Equal(int64(0), st.CartTotal().Amount())

	// clearing an empty cart stays silent
	st.ClearCart(ctx)
}

func (s *StoreTestSuite) TestDisposeFlushesAndIgnoresLaterMutations() {
	st := s.newStore()
	ctx := context.Background()

	s.repo.EXPECT().Save(gomock.Any(), s.deviceID, gomock.Any()).Return(nil).Times(1)
	st.Dispose(ctx)
	st.Dispose(ctx)

	st.AddToCart(ctx, s.gown, 1, nil)
	s.Equal(0, st.CartItemCount())
}

// Memory-backed stores exercise the full persistence path.

func newMemoryRegistry(opts ...store.Option) (*store.Registry, *notify.Board) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewSnapshotRepository(storage.NewMemory(), logger)
	board := notify.NewBoard(logger)
	opts = append([]store.Option{store.WithLogger(logger)}, opts...)
	return store.NewRegistry(repo, board, rental.NewDefaultDurationCalculator(), opts...), board
}

func TestRegistry_RehydratesAfterClose(t *testing.T) {
	ctx := context.Background()
	reg, board := newMemoryRegistry()
	deviceID := uuid.New()
	p := builder.NewProductBuilder().WithID("p1").WithPrice(1000).MustBuild()

	st := reg.Get(ctx, deviceID)
	assert.Same(t, st, reg.Get(ctx, deviceID))
	st.AddToCart(ctx, p, 2, nil)
	st.AddToWishlist(ctx, p)

	n, ok := board.Current(deviceID)
	require.True(t, ok)
	assert.Equal(t, "Emerald Silk Gown added to wishlist", n.Message)

	require.NoError(t, reg.Close(ctx))
	assert.Equal(t, 0, reg.Len())

	restored := reg.Get(ctx, deviceID)
	assert.NotSame(t, st, restored)
	assert.Equal(t, 2, restored.CartItemCount())
	assert.Equal(t, int64(2000), restored.CartTotal().Amount())
	assert.Equal(t, 1, restored.WishlistCount())
}

func TestRegistry_IsolatesDevices(t *testing.T) {
	ctx := context.Background()
	reg, _ := newMemoryRegistry()
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	reg.Get(ctx, uuid.New()).AddToCart(ctx, p, 1, nil)

	assert.Equal(t, 0, reg.Get(ctx, uuid.New()).CartItemCount())
	assert.Equal(t, 2, reg.Len())
}

func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	reg, _ := newMemoryRegistry()
	deviceID := uuid.New()
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Get(ctx, deviceID).AddToCart(ctx, p, 1, nil)
		}()
	}
	wg.Wait()

	st := reg.Get(ctx, deviceID)
	assert.Equal(t, 50, st.CartItemCount())
	assert.Len(t, st.CartItems(), 1)
}

func TestRegistry_ViewDoesNotRegister(t *testing.T) {
	ctx := context.Background()
	reg, _ := newMemoryRegistry()
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	for range 100 {
		st := reg.View(ctx, uuid.New())
		assert.Equal(t, 0, st.CartItemCount())
	}
	assert.Equal(t, 0, reg.Len())

	deviceID := uuid.New()
	live := reg.Get(ctx, deviceID)
	live.AddToCart(ctx, p, 2, nil)
	assert.Same(t, live, reg.View(ctx, deviceID))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ViewReadsStoredState(t *testing.T) {
	ctx := context.Background()
	reg, _ := newMemoryRegistry()
	deviceID := uuid.New()
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	reg.Get(ctx, deviceID).AddToCart(ctx, p, 3, nil)
	require.NoError(t, reg.Close(ctx))

	assert.Equal(t, 3, reg.View(ctx, deviceID).CartItemCount())
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_EvictIdle(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	reg, board := newMemoryRegistry(store.WithClock(clk), store.WithIdleTTL(30*time.Minute))
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	idle, active := uuid.New(), uuid.New()
	reg.Get(ctx, idle).AddToCart(ctx, p, 2, nil)
	clk.Add(20 * time.Minute)
	reg.Get(ctx, active).AddToWishlist(ctx, p)
	clk.Add(15 * time.Minute)

	assert.Equal(t, 1, reg.EvictIdle(ctx))
	assert.Equal(t, 1, reg.Len())
	_, ok := board.Current(idle)
	assert.False(t, ok)
	_, ok = board.Current(active)
	assert.True(t, ok)

	// the evicted device comes back from storage
	assert.Equal(t, 2, reg.Get(ctx, idle).CartItemCount())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_EvictIdleDisabledWithoutTTL(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	reg, _ := newMemoryRegistry(store.WithClock(clk))

	reg.Get(ctx, uuid.New())
	clk.Add(24 * time.Hour)

	assert.Equal(t, 0, reg.EvictIdle(ctx))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_MaxStoresBoundsMemory(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	reg, _ := newMemoryRegistry(store.WithClock(clk), store.WithMaxStores(10))
	p := builder.NewProductBuilder().WithID("p1").MustBuild()

	first := uuid.New()
	reg.Get(ctx, first).AddToCart(ctx, p, 1, nil)
	for range 500 {
		clk.Add(time.Second)
		reg.Get(ctx, uuid.New())
		assert.LessOrEqual(t, reg.Len(), 10)
	}
	assert.Equal(t, 10, reg.Len())

	// the oldest store was flushed before eviction
	assert.Equal(t, 1, reg.View(ctx, first).CartItemCount())
}

func TestRegistry_RunStopsWithContext(t *testing.T) {
	reg, _ := newMemoryRegistry(store.WithIdleTTL(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		reg.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
