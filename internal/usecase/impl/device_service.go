package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "locust/internal/delivery/context"
	"locust/internal/domain/constants"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/geofence"
	"locust/internal/domain/repository"
	"locust/internal/domain/service"
	"locust/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo   repository.DeviceRepository
	locationRepo repository.LocationRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	LocationRepo repository.LocationRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:   params.DeviceRepo,
		locationRepo: params.LocationRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetTrack returns the device's recent path, oldest fix first.
func (srv *deviceService) GetTrack(ctx context.Context, deviceID string, limit int) (*geojson.Feature, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	switch {
	case limit <= 0:
		limit = constants.DefaultTrackLimit
	case limit > constants.MaxTrackLimit:
		limit = constants.MaxTrackLimit
	}

	records, err := srv.locationRepo.FindRecentByDevice(ctx, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device track")
	}

	line := make(orb.LineString, 0, len(records))
	for _, record := range records {
		line = append(line, geofence.NewPoint(record.Latitude, record.Longitude))
	}
	slices.Reverse(line)

	feature := geojson.NewFeature(line)
	feature.Properties["deviceId"] = device.DeviceID
	feature.Properties["deviceName"] = device.DeviceName
	feature.Properties["points"] = len(line)
	if len(records) > 0 {
		feature.Properties["from"] = records[len(records)-1].Timestamp
		feature.Properties["to"] = records[0].Timestamp
	}

	srv.log(ctx).Debug("Track loaded", slog.String("deviceId", deviceID), slog.Int("points", len(line)))

	return feature, nil
}

// GetEnrollmentQR renders the QR code pointing phones at the ingest endpoint.
func (srv *deviceService) GetEnrollmentQR(ctx context.Context) (*usecase.EnrollmentQR, error) {
	png, err := srv.qrService.GenerateEnrollmentQR()
	if err != nil {
		srv.log(ctx).Error("Failed to generate enrollment QR code", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate enrollment QR code")
	}

	return &usecase.EnrollmentQR{
		URL: srv.qrService.EnrollmentURL(),
		PNG: png,
	}, nil
}
