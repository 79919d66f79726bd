//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/infra/notify"
	"rent-elegance/internal/infra/repository"
	"rent-elegance/internal/infra/storage"
	"rent-elegance/internal/usecase/queries"
	"rent-elegance/internal/usecase/shared"
	"rent-elegance/internal/usecase/store"
	"rent-elegance/tests/common/builder"
	sharedmock "rent-elegance/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRegistry() (*store.Registry, *notify.Board) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := notify.NewBoard(logger)
	repo := repository.NewSnapshotRepository(storage.NewMemory(), logger)
	return store.NewRegistry(repo, board, rental.NewDefaultDurationCalculator()), board
}

func TestCartQueries(t *testing.T) {
	ctx := context.Background()
	reg, board := newRegistry()
	q := queries.NewCartQueries(reg, board)
	deviceID := uuid.New()

	t.Run("empty cart", func(t *testing.T) {
		view, err := q.GetCart(ctx, deviceID)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, int64(0), view.Totals.Total.Amount())

		_, err = q.GetCheckoutSummary(ctx, deviceID)
		assert.ErrorIs(t, err, queries.ErrEmptyCart)

		_, ok := q.GetNotification(ctx, deviceID)
		assert.False(t, ok)

		_, err = q.GetCounts(ctx, deviceID)
		require.NoError(t, err)
		_, err = q.GetWishlist(ctx, deviceID)
		require.NoError(t, err)
		assert.Equal(t, 0, reg.Len(), "reads must not register a store")
	})

	p1 := builder.NewProductBuilder().WithID("p1").WithPrice(1000).WithDeposit(500).MustBuild()
	p2 := builder.NewProductBuilder().WithID("p2").WithName("Pearl Clutch").WithPrice(400).WithDeposit(100).MustBuild()
	dates, _ := rental.ParseDateRange("2024-01-01", "2024-01-04")

	st := reg.Get(ctx, deviceID)
	st.AddToCart(ctx, p1, 2, &dates)
	st.AddToCart(ctx, p2, 1, nil)
	st.AddToWishlist(ctx, p2)

	t.Run("cart view", func(t *testing.T) {
		view, err := q.GetCart(ctx, deviceID)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)

		first := view.Items[0]
		assert.Equal(t, int64(2000), first.LineTotal.Amount())
		require.NotNil(t, first.RentalDates)
		assert.Equal(t, 2, first.RentalDays)
		assert.Nil(t, view.Items[1].RentalDates)

		assert.Equal(t, int64(2400), view.Totals.Subtotal.Amount())
		assert.Equal(t, 3, view.Totals.TotalQuantity)
	})

	t.Run("counts and wishlist", func(t *testing.T) {
		counts, err := q.GetCounts(ctx, deviceID)
		require.NoError(t, err)
		assert.Equal(t, 3, counts.CartItemCount)
		assert.Equal(t, 1, counts.WishlistCount)

		wl, err := q.GetWishlist(ctx, deviceID)
		require.NoError(t, err)
		assert.Equal(t, 1, wl.Count)
		assert.Equal(t, "p2", wl.Items[0].ID())

		n, ok := q.GetNotification(ctx, deviceID)
		require.True(t, ok)
		assert.Equal(t, "Pearl Clutch added to wishlist", n.Message)
	})

	t.Run("checkout summary", func(t *testing.T) {
		summary, err := q.GetCheckoutSummary(ctx, deviceID)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.ItemCount)
		assert.Equal(t, 3, summary.TotalQuantity)
		assert.Equal(t, int64(2400), summary.Subtotal.Amount())
		assert.True(t, summary.Delivery.IsZero())
		assert.Equal(t, int64(600), summary.Deposit.Amount())
		assert.Equal(t, int64(3000), summary.Total.Amount())
	})
}

func TestRentalQueries_Quote(t *testing.T) {
	ctx := context.Background()
	dates, _ := rental.ParseDateRange("2024-03-01", "2024-03-08")

	t.Run("days only", func(t *testing.T) {
		q := queries.NewRentalQueries(rental.NewDefaultDurationCalculator(), nil)
		quote, err := q.Quote(ctx, dates, "")
		require.NoError(t, err)
		assert.Equal(t, 7, quote.RawDays)
		assert.Equal(t, 6, quote.BillableDays)
		assert.Nil(t, quote.Product)
	})

	t.Run("with product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := builder.NewProductBuilder().WithID("p1").WithPrice(1500).WithDeposit(2000).MustBuild()
		catalog := sharedmock.NewMockCatalogReader(ctrl)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(p, nil)

		quote, err := queries.NewRentalQueries(rental.NewDefaultDurationCalculator(), catalog).Quote(ctx, dates, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(3500), quote.Total.Amount())
		assert.True(t, quote.Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := sharedmock.NewMockCatalogReader(ctrl)
		catalog.EXPECT().GetProductByID(gomock.Any(), "nope").Return(builder.NewProductBuilder().MustBuild(), shared.ErrProductNotFound)

		_, err := queries.NewRentalQueries(rental.NewDefaultDurationCalculator(), catalog).Quote(ctx, dates, "nope")
		assert.ErrorIs(t, err, shared.ErrProductNotFound)
	})
}
