package repository

import (
	"context"

	"locust/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertRepository defines the interface for geofence entry alerts.
type AlertRepository interface {
	// CreateAlert persists a new alert with both delivery flags false.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// UpdateDeliveryStatus records the outcome of both channels. Called once per alert.
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, emailSent, pushSent bool) error

	// FindRecentAlerts returns up to limit alerts, newest first.
	FindRecentAlerts(ctx context.Context, limit int) ([]*entity.Alert, error)
}
