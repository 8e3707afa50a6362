// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"locust/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice inserts the device on first contact or refreshes its profile and lastSeen.
	// The returned device carries the transition state (LastGeofenceInside, LastAlertAt)
	// as it was before this call. Inside a transaction the row stays locked until commit.
	UpsertDevice(ctx context.Context, profile *entity.DeviceProfile) (*entity.Device, error)

	// ClaimEntryAlert atomically marks the device inside and stamps lastAlertAt = now,
	// but only while the device is not already inside and the cooldown has elapsed.
	// It reports whether this caller won the claim.
	ClaimEntryAlert(ctx context.Context, deviceID string, now time.Time, cooldown time.Duration) (bool, error)

	// SetGeofenceState persists the last known membership without touching lastAlertAt.
	SetGeofenceState(ctx context.Context, deviceID string, inside bool) error

	// FindDeviceByID retrieves a device by its client-assigned ID.
	FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindActiveDevices retrieves active devices, most recently seen first.
	FindActiveDevices(ctx context.Context) ([]*entity.Device, error)
}
