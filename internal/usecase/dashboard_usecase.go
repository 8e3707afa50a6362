package usecase

import (
	"context"

	"locust/internal/domain/entity"
)

// Dashboard is the aggregated snapshot polled by the map client.
type Dashboard struct {
	Geofence        entity.Geofence          `json:"geofence"`
	Devices         []*entity.Device         `json:"devices"`
	LatestLocations []*entity.LocationRecord `json:"latestLocations"`
	RecentAlerts    []*entity.Alert          `json:"recentAlerts"`
}

// DashboardUsecase defines the read side used by the dashboard.
type DashboardUsecase interface {
	// GetDashboard returns active devices, each device's latest fix and the most recent alerts.
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
