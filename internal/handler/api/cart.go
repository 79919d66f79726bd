package api

import (
	"net/http"

	reqdto "rent-elegance/internal/handler/dto/request"
	resdto "rent-elegance/internal/handler/dto/response"
	"rent-elegance/internal/handler/httperr"
	"rent-elegance/internal/handler/middleware"
	"rent-elegance/internal/usecase/commands"
	"rent-elegance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Cart entries of the current device with subtotal, deposit and total
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	h.respondCart(c, deviceID)
}

// @Summary Add to cart
// @Description Adds a product or merges it into the existing entry
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add to cart request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err, "Invalid request")
		return
	}
	if err := h.cmds.AddToCart(c.Request.Context(), deviceID, cmd); err != nil {
		abortWithUsecaseError(c, err, "Add to cart failed")
		return
	}
	h.respondCart(c, deviceID)
}

// @Summary Update cart item
// @Description Sets the quantity (zero or less removes the entry) and optionally the billable days
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Update cart item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateCartItem(c.Request.Context(), deviceID, c.Param("productId"), req.ToCommand()); err != nil {
		abortWithUsecaseError(c, err, "Update cart item failed")
		return
	}
	h.respondCart(c, deviceID)
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	if err := h.cmds.RemoveFromCart(c.Request.Context(), deviceID, c.Param("productId")); err != nil {
		abortWithUsecaseError(c, err, "Remove from cart failed")
		return
	}
	h.respondCart(c, deviceID)
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	if err := h.cmds.ClearCart(c.Request.Context(), deviceID); err != nil {
		abortWithUsecaseError(c, err, "Clear cart failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} resdto.WishlistResponse
// @Router /api/wishlist [get]
func (h *CartHandler) GetWishlist(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	h.respondWishlist(c, deviceID)
}

// @Summary Add to wishlist
// @Description Adding a product that is already saved is a no-op
// @Tags wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.WishlistResponse
// @Failure 404 {object} httperr.Response
// @Router /api/wishlist/{productId} [put]
func (h *CartHandler) AddToWishlist(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	if err := h.cmds.AddToWishlist(c.Request.Context(), deviceID, c.Param("productId")); err != nil {
		abortWithUsecaseError(c, err, "Add to wishlist failed")
		return
	}
	h.respondWishlist(c, deviceID)
}

// @Summary Remove from wishlist
// @Tags wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.WishlistResponse
// @Router /api/wishlist/{productId} [delete]
func (h *CartHandler) RemoveFromWishlist(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	if err := h.cmds.RemoveFromWishlist(c.Request.Context(), deviceID, c.Param("productId")); err != nil {
		abortWithUsecaseError(c, err, "Remove from wishlist failed")
		return
	}
	h.respondWishlist(c, deviceID)
}

// @Summary Header counts
// @Description Cart item count is the sum of quantities
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CountsResponse
// @Router /api/counts [get]
func (h *CartHandler) GetCounts(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	counts, err := h.q.GetCounts(c.Request.Context(), deviceID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load counts")
		return
	}
	res, err := resdto.FromCountsView(counts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode counts", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Checkout summary
// @Description Order summary with free delivery and the refundable deposit
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/summary [get]
func (h *CartHandler) GetCheckoutSummary(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	summary, err := h.q.GetCheckoutSummary(c.Request.Context(), deviceID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load checkout summary")
		return
	}
	res, err := resdto.FromCheckoutSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode checkout summary", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Current notification
// @Tags notification
// @Produce json
// @Success 200 {object} resdto.NotificationResponse
// @Success 204 "No Content"
// @Router /api/notification [get]
func (h *CartHandler) GetNotification(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	n, found := h.q.GetNotification(c.Request.Context(), deviceID)
	if !found {
		c.Status(http.StatusNoContent)
		return
	}
	res, err := resdto.FromNotification(n)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode notification", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Dismiss notification
// @Tags notification
// @Success 204 "No Content"
// @Router /api/notification [delete]
func (h *CartHandler) DismissNotification(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	if err := h.cmds.DismissNotification(c.Request.Context(), deviceID); err != nil {
		abortWithUsecaseError(c, err, "Dismiss notification failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCart(c *gin.Context, deviceID uuid.UUID) {
	view, err := h.q.GetCart(c.Request.Context(), deviceID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load cart")
		return
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode cart", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) respondWishlist(c *gin.Context, deviceID uuid.UUID) {
	view, err := h.q.GetWishlist(c.Request.Context(), deviceID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load wishlist")
		return
	}
	res, err := resdto.FromWishlistView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode wishlist", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
