//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/infra/notify"
	"rent-elegance/internal/infra/repository"
	"rent-elegance/internal/infra/storage"
	"rent-elegance/internal/usecase/commands"
	"rent-elegance/internal/usecase/shared"
	"rent-elegance/internal/usecase/store"
	"rent-elegance/tests/common/builder"
	sharedmock "rent-elegance/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	catalog  *sharedmock.MockCatalogReader
	registry *store.Registry
	board    *notify.Board
	uc       commands.CartCommands
	deviceID uuid.UUID
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = sharedmock.NewMockCatalogReader(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.board = notify.NewBoard(logger)
	repo := repository.NewSnapshotRepository(storage.NewMemory(), logger)
	s.registry = store.NewRegistry(repo, s.board, rental.NewDefaultDurationCalculator())

	s.uc = commands.NewCartCommands(s.registry, s.catalog, s.board)
	s.deviceID = uuid.New()
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) TestAddToCart() {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithID("p1").WithPrice(1000).MustBuild()
	dates, _ := rental.ParseDateRange("2024-01-01", "2024-01-08")

	s.catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(p, nil)

	err := s.uc.AddToCart(ctx, s.deviceID, commands.AddToCartRequest{ProductID: "p1", Quantity: 2, RentalDates: &dates})
	s.Require().NoError(err)

	st := s.registry.Get(ctx, s.deviceID)
	s.Equal(2, st.CartItemCount())
	s.Equal(6, st.CartItems()[0].RentalDays())
}

func (s *CartCommandsTestSuite) TestAddToCart_UnknownProduct() {
	s.catalog.EXPECT().GetProductByID(gomock.Any(), "missing").Return(builder.NewProductBuilder().MustBuild(), shared.ErrProductNotFound)

	err := s.uc.AddToCart(context.Background(), s.deviceID, commands.AddToCartRequest{ProductID: "missing", Quantity: 1})

	s.ErrorIs(err, shared.ErrProductNotFound)
	s.Equal(0, s.registry.Len())
}

func (s *CartCommandsTestSuite) TestUpdateRemoveAndClear() {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithID("p1").MustBuild()
	s.catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(p, nil)
	s.Require().NoError(s.uc.AddToCart(ctx, s.deviceID, commands.AddToCartRequest{ProductID: "p1", Quantity: 1}))

	days := 5
	s.Require().NoError(s.uc.UpdateCartItem(ctx, s.deviceID, "p1", commands.UpdateCartItemRequest{Quantity: 4, RentalDays: &days}))
	st := s.registry.Get(ctx, s.deviceID)
	s.Equal(4, st.CartItemCount())
	s.Equal(5, st.CartItems()[0].RentalDays())

	s.Require().NoError(s.uc.RemoveFromCart(ctx, s.deviceID, "unknown"))
	s.Equal(4, st.CartItemCount())

	s.Require().NoError(s.uc.ClearCart(ctx, s.deviceID))
	s.Equal(0, st.CartItemCount())
	n, ok := s.board.Current(s.deviceID)
	s.Require().True(ok)
	s.Equal("Cart cleared", n.Message)
}

func (s *CartCommandsTestSuite) TestWishlistAndDismiss() {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithID("p1").WithName("Kundan Choker").MustBuild()
	s.catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(p, nil).Times(2)

	s.Require().NoError(s.uc.AddToWishlist(ctx, s.deviceID, "p1"))
	s.Require().NoError(s.uc.AddToWishlist(ctx, s.deviceID, "p1"))
	s.Equal(1, s.registry.Get(ctx, s.deviceID).WishlistCount())

	s.Require().NoError(s.uc.DismissNotification(ctx, s.deviceID))
	n, _ := s.board.Current(s.deviceID)
	s.False(n.Visible)
	s.Equal("Kundan Choker added to wishlist", n.Message)

	s.Require().NoError(s.uc.RemoveFromWishlist(ctx, s.deviceID, "p1"))
	s.Equal(0, s.registry.Get(ctx, s.deviceID).WishlistCount())
}
