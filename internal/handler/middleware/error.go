package middleware

import (
	"log/slog"
	"net/http"

	"rent-elegance/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{"error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c)}
				if deviceID, ok := GetDeviceID(c); ok {
					attrs = append(attrs, "device_id", deviceID.String())
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
