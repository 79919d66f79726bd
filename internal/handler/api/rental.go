package api

import (
	"net/http"

	reqdto "rent-elegance/internal/handler/dto/request"
	resdto "rent-elegance/internal/handler/dto/response"
	"rent-elegance/internal/handler/httperr"
	"rent-elegance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	q queries.RentalQueries
}

func NewRentalHandler(q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{q: q}
}

// @Summary Rental quote
// @Description Billable days for a date range. With product_id the quote also carries price, deposit and availability.
// @Tags rental
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param product_id query string false "Product ID"
// @Success 200 {object} resdto.RentalQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rental/quote [get]
func (h *RentalHandler) Quote(c *gin.Context) {
	var req reqdto.RentalQuoteQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	dates, err := req.ToDateRange()
	if err != nil {
		abortWithUsecaseError(c, err, "Invalid dates")
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), dates, req.ProductID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to quote rental")
		return
	}
	res, err := resdto.FromRentalQuote(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode quote", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
