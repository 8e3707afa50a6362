// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IngestHandlerParams holds dependencies for IngestHandler, injected by Fx.
type IngestHandlerParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// IngestHandler receives location fixes from devices.
type IngestHandler struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler
func NewIngestHandler(params IngestHandlerParams) *IngestHandler {
	return &IngestHandler{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}
}

// IngestRequest is one location fix as reported by the tracking app.
type IngestRequest struct {
	DeviceID     string   `json:"deviceId" validate:"required"`
	DeviceName   string   `json:"deviceName" validate:"required"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	OSVersion    string   `json:"osVersion"`
	Latitude     *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Accuracy     *float64 `json:"accuracy" validate:"required"`
	Altitude     *float64 `json:"altitude"`
	Speed        *float64 `json:"speed"`
	Heading      *float64 `json:"heading"`
	Battery      *int     `json:"battery" validate:"omitempty,min=0,max=100"`
	Timestamp    string   `json:"timestamp" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// IngestResponse reports how the fix was classified.
type IngestResponse struct {
	OK           bool                  `json:"ok"`
	Geofence     entity.GeofenceResult `json:"geofence"`
	AlertCreated bool                  `json:"alertCreated"`
}

// Ingest handles POST /api/ingest.
func (h *IngestHandler) Ingest(c echo.Context) error {
	var req IngestRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidPayload.WithDetails("request body must be a JSON fix")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	fix, err := req.toFix()
	if err != nil {
		return err
	}

	output, err := h.ingestUC.IngestFix(c.Request().Context(), fix)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, IngestResponse{
		OK:           true,
		Geofence:     output.Geofence,
		AlertCreated: output.AlertCreated,
	})
}

func (req *IngestRequest) toFix() (*entity.Fix, error) {
	fix := &entity.Fix{
		DeviceID:     req.DeviceID,
		DeviceName:   req.DeviceName,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		OSVersion:    req.OSVersion,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		Accuracy:     *req.Accuracy,
		Altitude:     req.Altitude,
		Speed:        req.Speed,
		Heading:      req.Heading,
		Battery:      req.Battery,
	}

	if req.Timestamp != "" {
		timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, domainerrors.ErrInvalidPayload.WithDetails("timestamp must be an RFC 3339 timestamp")
		}
		fix.Timestamp = timestamp
	}

	return fix, nil
}
