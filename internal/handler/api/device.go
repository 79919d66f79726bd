package api

import (
	"net/http"

	"rent-elegance/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct{}

func NewDeviceHandler() *DeviceHandler {
	return &DeviceHandler{}
}

type deviceResponse struct {
	DeviceID string `json:"deviceId"`
}

// @Summary Current device
// @Description Device id the cart and wishlist are stored under. Issues a device token when none is sent.
// @Tags device
// @Produce json
// @Success 200 {object} api.deviceResponse
// @Router /api/device [get]
func (h *DeviceHandler) Current(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		abortMissingDevice(c)
		return
	}
	c.JSON(http.StatusOK, deviceResponse{DeviceID: deviceID.String()})
}
