//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rent-elegance/internal/domain/cart"
	"rent-elegance/internal/domain/notification"
	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/handler/api"
	resdto "rent-elegance/internal/handler/dto/response"
	"rent-elegance/internal/handler/middleware"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/commands"
	"rent-elegance/internal/usecase/queries"
	"rent-elegance/tests/common/builder"
	"rent-elegance/tests/common/httptest"
	"rent-elegance/tests/common/testutil"
	commandsmock "rent-elegance/tests/mock/commands"
	queriesmock "rent-elegance/tests/mock/queries"
	usecasemock "rent-elegance/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const deviceToken = "device-token"

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	mockTokens   *usecasemock.MockDeviceTokens
	deviceID     uuid.UUID
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.mockTokens = usecasemock.NewMockDeviceTokens(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	s.deviceID = uuid.New()
	s.mockTokens.EXPECT().Validate(deviceToken).Return(s.deviceID, nil).AnyTimes()
	device := middleware.NewDeviceMiddleware(s.mockTokens, config.CookieConfig{SameSite: "Lax"}, time.Hour)

	g := s.router.Group("", device.RequireDevice())
	g.GET("/cart", s.handler.GetCart)
	g.DELETE("/cart", s.handler.ClearCart)
	g.POST("/cart/items", s.handler.AddItem)
	g.PATCH("/cart/items/:productId", s.handler.UpdateItem)
	g.DELETE("/cart/items/:productId", s.handler.RemoveItem)
	g.GET("/wishlist", s.handler.GetWishlist)
	g.PUT("/wishlist/:productId", s.handler.AddToWishlist)
	g.DELETE("/wishlist/:productId", s.handler.RemoveFromWishlist)
	g.GET("/counts", s.handler.GetCounts)
	g.GET("/checkout/summary", s.handler.GetCheckoutSummary)
	g.GET("/notification", s.handler.GetNotification)
	g.DELETE("/notification", s.handler.DismissNotification)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type testCaseCart struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CartHandlerTestSuite) cartView(qty int) *queries.CartView {
	p := builder.NewProductBuilder().MustBuild()
	entries := []cart.Entry{cart.ReconstructEntry(p, qty, nil, 2)}
	return &queries.CartView{
		Items: []queries.CartLineView{{
			Product:    p,
			Quantity:   qty,
			RentalDays: 2,
			LineTotal:  p.Price().Multiply(qty),
		}},
		Totals: cart.Summarize(entries),
	}
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	reqBody := map[string]any{
		"productId": "dress-001",
		"quantity":  2,
		"rentalDates": map[string]any{
			"startDate": "2024-06-01",
			"endDate":   "2024-06-05",
		},
	}

	s.Run("success: adds item and returns cart with totals", func() {
		s.mockCommands.EXPECT().
			AddToCart(gomock.Any(), s.deviceID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.AddToCartRequest) error {
				s.Equal("dress-001", req.ProductID)
				s.Equal(2, req.Quantity)
				s.Require().NotNil(req.RentalDates)
				s.Equal("2024-06-01", req.RentalDates.StartString())
				s.Equal(4, req.RentalDates.RawDays())
				return nil
			})
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.deviceID).Return(s.cartView(2), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, deviceToken)

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Items, 1)
		s.Equal(int64(3000), res.Totals.Subtotal)
		s.Equal(int64(2000), res.Totals.Deposit)
		s.Equal(int64(5000), res.Totals.Total)
		s.Equal("₹1,500", res.Items[0].Product.PriceLabel)
	})

	s.Run("success: quantity defaults to one when omitted", func() {
		s.mockCommands.EXPECT().
			AddToCart(gomock.Any(), s.deviceID, commands.AddToCartRequest{ProductID: "dress-001", Quantity: 1}).
			Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.deviceID).Return(s.cartView(1), nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil), testutil.Field("rentalDates", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, deviceToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	invalid := []testCaseCart{
		{name: "missing field: productId (required)", mutate: testutil.Field("productId", nil), expectCode: http.StatusBadRequest},
		{name: "invalid start date", mutate: testutil.Field("rentalDates", map[string]any{"startDate": "06/01/2024", "endDate": "2024-06-05"}), expectCode: http.StatusBadRequest},
		{name: "missing end date", mutate: testutil.Field("rentalDates", map[string]any{"startDate": "2024-06-01"}), expectCode: http.StatusBadRequest},
		{name: "quantity above the cart maximum", mutate: testutil.Field("quantity", 100), expectCode: http.StatusBadRequest},
		{name: "quantity near int overflow", mutate: testutil.Field("quantity", int64(9223372036854775807)), expectCode: http.StatusBadRequest},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, deviceToken)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: unknown product returns 404", func() {
		s.mockCommands.EXPECT().
			AddToCart(gomock.Any(), s.deviceID, gomock.Any()).
			Return(errs.Wrap(errs.ErrProductNotFound, "add to cart"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, deviceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: unexpected failure returns 500", func() {
		s.mockCommands.EXPECT().
			AddToCart(gomock.Any(), s.deviceID, gomock.Any()).
			Return(errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, deviceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Add to cart failed")
	})
}

// ================================================================================
// TestUpdateItem
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateItem() {
	url := "/cart/items/dress-001"

	s.Run("success: forwards quantity and rental days", func() {
		days := 5
		s.mockCommands.EXPECT().
			UpdateCartItem(gomock.Any(), s.deviceID, "dress-001", commands.UpdateCartItemRequest{Quantity: 3, RentalDays: &days}).
			Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.deviceID).Return(s.cartView(3), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3, "rentalDays": 5}, deviceToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: zero quantity is accepted", func() {
		s.mockCommands.EXPECT().
			UpdateCartItem(gomock.Any(), s.deviceID, "dress-001", commands.UpdateCartItemRequest{Quantity: 0}).
			Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.deviceID).Return(&queries.CartView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 0}, deviceToken)

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Empty(res.Items)
	})

	invalid := []struct {
		name string
		body map[string]any
	}{
		{name: "missing field: quantity (required)", body: map[string]any{"rentalDays": 2}},
		{name: "rentalDays below one", body: map[string]any{"quantity": 1, "rentalDays": 0}},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, tc.body, deviceToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}
}

// ================================================================================
// TestRemoveAndClear
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveAndClear() {
	s.Run("success: remove returns the remaining cart", func() {
		s.mockCommands.EXPECT().RemoveFromCart(gomock.Any(), s.deviceID, "dress-001").Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.deviceID).Return(&queries.CartView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/dress-001", nil, deviceToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: clear returns 204", func() {
		s.mockCommands.EXPECT().ClearCart(gomock.Any(), s.deviceID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, deviceToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestWishlist
// ================================================================================

func (s *CartHandlerTestSuite) TestWishlist() {
	p := builder.NewProductBuilder().MustBuild()
	view := &queries.WishlistView{Items: []product.Product{p}, Count: 1}

	s.Run("success: add returns wishlist", func() {
		s.mockCommands.EXPECT().AddToWishlist(gomock.Any(), s.deviceID, "dress-001").Return(nil)
		s.mockQueries.EXPECT().GetWishlist(gomock.Any(), s.deviceID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/wishlist/dress-001", nil, deviceToken)

		var res resdto.WishlistResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(1, res.Count)
		s.Equal("dress-001", res.Items[0].ID)
	})

	s.Run("error: unknown product returns 404", func() {
		s.mockCommands.EXPECT().AddToWishlist(gomock.Any(), s.deviceID, "missing").
			Return(errs.Wrap(errs.ErrProductNotFound, "add to wishlist"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/wishlist/missing", nil, deviceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("success: remove returns wishlist", func() {
		s.mockCommands.EXPECT().RemoveFromWishlist(gomock.Any(), s.deviceID, "dress-001").Return(nil)
		s.mockQueries.EXPECT().GetWishlist(gomock.Any(), s.deviceID).Return(&queries.WishlistView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/wishlist/dress-001", nil, deviceToken)

		var res resdto.WishlistResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Zero(res.Count)
	})
}

// ================================================================================
// TestCountsAndCheckout
// ================================================================================

func (s *CartHandlerTestSuite) TestCountsAndCheckout() {
	s.Run("success: counts", func() {
		s.mockQueries.EXPECT().GetCounts(gomock.Any(), s.deviceID).
			Return(&queries.CountsView{CartItemCount: 3, WishlistCount: 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/counts", nil, deviceToken)

		var res resdto.CountsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.CountsResponse{CartItemCount: 3, WishlistCount: 1}, res)
	})

	s.Run("success: checkout summary with free delivery", func() {
		view := s.cartView(1)
		s.mockQueries.EXPECT().GetCheckoutSummary(gomock.Any(), s.deviceID).Return(&queries.CheckoutSummary{
			Items:         view.Items,
			ItemCount:     1,
			TotalQuantity: 1,
			Subtotal:      product.NewMoney(1500),
			Delivery:      product.NewMoney(0),
			Deposit:       product.NewMoney(2000),
			Total:         product.NewMoney(3500),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/summary", nil, deviceToken)

		var res resdto.CheckoutSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Free", res.DeliveryLabel)
		s.Equal(int64(3500), res.Total)
		s.Equal("₹3,500", res.TotalLabel)
	})

	s.Run("error: empty cart returns 409", func() {
		s.mockQueries.EXPECT().GetCheckoutSummary(gomock.Any(), s.deviceID).Return(nil, queries.ErrEmptyCart)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/summary", nil, deviceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cart is empty")
	})
}

// ================================================================================
// TestNotification
// ================================================================================

func (s *CartHandlerTestSuite) TestNotification() {
	s.Run("success: returns current notification", func() {
		s.mockQueries.EXPECT().GetNotification(gomock.Any(), s.deviceID).
			Return(notification.AddedToCart("Emerald Silk Gown"), true)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notification", nil, deviceToken)

		var res resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("success", res.Severity)
		s.Equal("cart", res.Origin)
		s.True(res.Visible)
		s.Contains(res.Message, "Emerald Silk Gown")
	})

	s.Run("success: nothing shown yet returns 204", func() {
		s.mockQueries.EXPECT().GetNotification(gomock.Any(), s.deviceID).Return(notification.Notification{}, false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notification", nil, deviceToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: dismiss returns 204", func() {
		s.mockCommands.EXPECT().DismissNotification(gomock.Any(), s.deviceID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notification", nil, deviceToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
