package middleware

import (
	"log/slog"
	"slices"

	"rent-elegance/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows and exposes the device token header, since
// cross-origin clients without cookies depend on reading it back.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, DeviceTokenHeader),
		ExposeHeaders:    withHeader(withHeader(cfg.ExposeHeaders, DeviceTokenHeader), RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"AllowOrigins", corsCfg.AllowOrigins,
		"ExposeHeaders", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withHeader(headers []string, header string) []string {
	if slices.Contains(headers, header) {
		return headers
	}
	return append(slices.Clone(headers), header)
}
