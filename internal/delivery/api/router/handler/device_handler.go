package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "locust/internal/domain/errors"
	"locust/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderEnrollmentURL exposes the URL encoded in the enrollment QR code.
const HeaderEnrollmentURL = "X-Enrollment-Url"

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// GetTrack handles GET /api/devices/:deviceId/track.
func (h *DeviceHandler) GetTrack(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return domainerrors.ErrInvalidPayload.WithDetails("limit must be a positive integer")
		}
		limit = parsed
	}

	feature, err := h.deviceUC.GetTrack(c.Request().Context(), c.Param("deviceId"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feature)
}

// GetEnrollmentQR handles GET /api/devices/enroll/qrcode.
func (h *DeviceHandler) GetEnrollmentQR(c echo.Context) error {
	qr, err := h.deviceUC.GetEnrollmentQR(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(HeaderEnrollmentURL, qr.URL)
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
