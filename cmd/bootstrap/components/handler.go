package components

import (
	"rent-elegance/internal/handler"
	"rent-elegance/internal/handler/api"
	"rent-elegance/internal/handler/middleware"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/pkg/jwt"
	"rent-elegance/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewRentalHandler,
		api.NewDeviceHandler,
		NewHandlers,
		NewDeviceMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(catalog *api.CatalogHandler, cart *api.CartHandler, rental *api.RentalHandler, device *api.DeviceHandler) handler.Handlers {
	return handler.Handlers{
		Catalog: catalog,
		Cart:    cart,
		Rental:  rental,
		Device:  device,
	}
}

// NewDeviceMiddleware keeps the cookie lifetime in step with the token lifetime.
func NewDeviceMiddleware(tokens usecase.DeviceTokens, cfg config.Config, jwtService *jwt.Service) *middleware.DeviceMiddleware {
	return middleware.NewDeviceMiddleware(tokens, cfg.Device.Cookie, jwtService.TokenDuration())
}
