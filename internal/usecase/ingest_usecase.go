package usecase

import (
	"context"

	"locust/internal/domain/entity"
)

// IngestOutput is the result of processing one location fix.
type IngestOutput struct {
	Geofence     entity.GeofenceResult
	AlertCreated bool
	Alert        *entity.Alert // Nil unless AlertCreated.
}

// IngestUsecase defines the location ingestion and geofence alerting use case.
type IngestUsecase interface {
	// IngestFix records a fix, updates the device's geofence state and fires an entry
	// alert when the device entered the geofence outside the cooldown window.
	IngestFix(ctx context.Context, fix *entity.Fix) (*IngestOutput, error)
}
