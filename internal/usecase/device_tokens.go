package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/device_tokens_mock.go -package=usecasemock

import (
	"rent-elegance/internal/pkg/errs"
	"rent-elegance/internal/pkg/jwt"

	"github.com/google/uuid"
)

// DeviceTokens issues and validates the tokens that identify a device's storage.
type DeviceTokens interface {
	Issue() (uuid.UUID, string, error)
	Validate(token string) (uuid.UUID, error)
}

type deviceTokensImpl struct {
	jwtService *jwt.Service
}

func NewDeviceTokens(jwtService *jwt.Service) DeviceTokens {
	return &deviceTokensImpl{
		jwtService: jwtService,
	}
}

func (d *deviceTokensImpl) Issue() (uuid.UUID, string, error) {
	deviceID := uuid.New()
	token, err := d.jwtService.GenerateToken(deviceID)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "failed to sign device token")
	}
	return deviceID, token, nil
}

func (d *deviceTokensImpl) Validate(token string) (uuid.UUID, error) {
	claims, err := d.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDeviceTokenInvalid)
	}
	return claims.DeviceID, nil
}
