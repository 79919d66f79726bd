package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rent-elegance/internal/handler/httperr"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/pkg/cookie"
	"rent-elegance/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceTokenHeader lets non-browser clients carry the device token without cookies.
const DeviceTokenHeader = "X-Device-Token"

const ctxDeviceIDKey = "device_id"

type DeviceMiddleware struct {
	tokens    usecase.DeviceTokens
	cookieCfg config.CookieConfig
	ttl       time.Duration
}

func NewDeviceMiddleware(tokens usecase.DeviceTokens, cookieCfg config.CookieConfig, ttl time.Duration) *DeviceMiddleware {
	return &DeviceMiddleware{
		tokens:    tokens,
		cookieCfg: cookieCfg,
		ttl:       ttl,
	}
}

// RequireDevice resolves the device id for the request. A missing or invalid
// token is replaced by a freshly issued one, so a device always ends up with
// its own storage partition.
func (m *DeviceMiddleware) RequireDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetDeviceToken(c)
		if token == "" {
			token = strings.TrimSpace(c.GetHeader(DeviceTokenHeader))
		}

		if token != "" {
			deviceID, err := m.tokens.Validate(token)
			if err == nil {
				c.Set(ctxDeviceIDKey, deviceID)
				c.Next()
				return
			}
			slog.Info("Device token rejected, issuing a new one", "error", err.Error())
		}

		deviceID, issued, err := m.tokens.Issue()
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue device token", nil)
			return
		}

		cookie.SetDeviceCookie(c, m.cookieCfg, issued, m.ttl)
		c.Header(DeviceTokenHeader, issued)
		c.Set(ctxDeviceIDKey, deviceID)
		c.Next()
	}
}

func GetDeviceID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxDeviceIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
