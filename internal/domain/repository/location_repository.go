package repository

import (
	"context"

	"locust/internal/domain/entity"
)

// LocationRepository defines the append-only store of device fixes.
type LocationRepository interface {
	// AppendLocation persists a fix exactly once. Records are never updated or deleted.
	AppendLocation(ctx context.Context, record *entity.LocationRecord) error

	// FindLatestPerDevice returns the newest fix of every device, newest first.
	FindLatestPerDevice(ctx context.Context) ([]*entity.LocationRecord, error)

	// FindRecentByDevice returns up to limit of the newest fixes of a device, newest first.
	FindRecentByDevice(ctx context.Context, deviceID string, limit int) ([]*entity.LocationRecord, error)
}
