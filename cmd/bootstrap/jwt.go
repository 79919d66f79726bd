package bootstrap

import (
	"fmt"
	"time"

	"rent-elegance/internal/pkg/clock"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.Device.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_TOKEN_DURATION: %w", err)
	}
	if tokenDuration <= 0 {
		return nil, fmt.Errorf("DEVICE_TOKEN_DURATION must be positive, got %s", tokenDuration)
	}

	return jwt.NewService(cfg.Device.TokenSecret, tokenDuration, clk), nil
}
