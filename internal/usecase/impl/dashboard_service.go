package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"locust/config"
	deliverycontext "locust/internal/delivery/context"
	"locust/internal/domain/constants"
	"locust/internal/domain/entity"
	"locust/internal/domain/repository"
	"locust/internal/domain/service"
	"locust/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	deviceRepo   repository.DeviceRepository
	locationRepo repository.LocationRepository
	alertRepo    repository.AlertRepository
	cache        service.Cache
	fence        entity.Geofence
	cacheTTL     time.Duration
	queryTimeout time.Duration
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	LocationRepo repository.LocationRepository
	AlertRepo    repository.AlertRepository
	Cache        service.Cache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	var ttl time.Duration
	if params.Config.Redis != nil {
		ttl = params.Config.Redis.DashboardTTL
	}

	return &dashboardService{
		deviceRepo:   params.DeviceRepo,
		locationRepo: params.LocationRepo,
		alertRepo:    params.AlertRepo,
		cache:        params.Cache,
		fence:        GeofenceFromConfig(params.Config.Geofence),
		cacheTTL:     ttl,
		queryTimeout: QueryTimeoutFromConfig(params.Config),
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboard serves the snapshot from cache when present, otherwise reads it
// from the database and caches it. Cache failures only cost a database read.
func (srv *dashboardService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	defer cancel()

	if dashboard, ok := srv.fromCache(ctx); ok {
		return dashboard, nil
	}

	devices, err := srv.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active devices")
	}

	latest, err := srv.locationRepo.FindLatestPerDevice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest locations")
	}

	alerts, err := srv.alertRepo.FindRecentAlerts(ctx, constants.RecentAlertsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent alerts")
	}

	dashboard := &usecase.Dashboard{
		Geofence:        srv.fence,
		Devices:         nonNil(devices),
		LatestLocations: nonNil(latest),
		RecentAlerts:    nonNil(alerts),
	}

	srv.toCache(ctx, dashboard)

	return dashboard, nil
}

func (srv *dashboardService) fromCache(ctx context.Context) (*usecase.Dashboard, bool) {
	if srv.cacheTTL <= 0 {
		return nil, false
	}

	raw, err := srv.cache.Get(ctx, constants.CacheKeyDashboard)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Failed to read dashboard cache", slog.Any("error", err))
		}

		return nil, false
	}

	var cached cachedDashboard
	if err := json.Unmarshal(raw, &cached); err != nil {
		srv.log(ctx).Warn("Discarding malformed dashboard cache entry", slog.Any("error", err))

		return nil, false
	}

	return &usecase.Dashboard{
		Geofence:        srv.fence,
		Devices:         nonNil(cached.Devices),
		LatestLocations: nonNil(cached.LatestLocations),
		RecentAlerts:    nonNil(cached.RecentAlerts),
	}, true
}

func (srv *dashboardService) toCache(ctx context.Context, dashboard *usecase.Dashboard) {
	if srv.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(cachedDashboard{
		Devices:         dashboard.Devices,
		LatestLocations: dashboard.LatestLocations,
		RecentAlerts:    dashboard.RecentAlerts,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to encode dashboard for cache", slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, constants.CacheKeyDashboard, raw, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Failed to write dashboard cache", slog.Any("error", err))
	}
}

// cachedDashboard omits the geofence, which comes from configuration.
type cachedDashboard struct {
	Devices         []*entity.Device         `json:"devices"`
	LatestLocations []*entity.LocationRecord `json:"latestLocations"`
	RecentAlerts    []*entity.Alert          `json:"recentAlerts"`
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
