package api

import (
	"net/http"

	"rent-elegance/internal/domain/rental"
	reqdto "rent-elegance/internal/handler/dto/request"
	"rent-elegance/internal/handler/httperr"
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase and domain errors onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, errs.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
	case errs.Is(err, queries.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cart is empty", nil)
	case errs.Is(err, rental.ErrInvalidDate),
		errs.Is(err, reqdto.ErrIncompleteAvailability),
		errs.Is(err, queries.ErrInvalidSort),
		errs.Is(err, queries.ErrInvalidPriceBand):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}

func abortMissingDevice(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrDeviceTokenInvalid, "Device not resolved", nil)
}
