// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/repository"
	"locust/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// upsertDeviceSQL refreshes the profile columns only. last_geofence_inside and
// last_alert_at are left untouched, so RETURNING yields their pre-update values.
// ON CONFLICT DO UPDATE holds the row lock until the surrounding transaction ends.
const upsertDeviceSQL = `
INSERT INTO devices (
	device_id, device_name, manufacturer, model, os_version,
	registered_at, last_seen, is_active, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, TRUE, ?, ?)
ON CONFLICT (device_id) DO UPDATE SET
	device_name  = EXCLUDED.device_name,
	manufacturer = COALESCE(NULLIF(EXCLUDED.manufacturer, ''), devices.manufacturer),
	model        = COALESCE(NULLIF(EXCLUDED.model, ''), devices.model),
	os_version   = COALESCE(NULLIF(EXCLUDED.os_version, ''), devices.os_version),
	last_seen    = EXCLUDED.last_seen,
	updated_at   = EXCLUDED.updated_at
RETURNING device_id, device_name, manufacturer, model, os_version,
	registered_at, last_seen, is_active, last_geofence_inside, last_alert_at,
	created_at, updated_at`

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice inserts or refreshes a device and returns its previous transition state.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, profile *entity.DeviceProfile) (*entity.Device, error) {
	now := time.Now().UTC()
	var deviceM model.DeviceModel

	// Raw statements are routed as reads by dbresolver unless pinned.
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(upsertDeviceSQL,
			profile.DeviceID,
			profile.DeviceName,
			profile.Manufacturer,
			profile.Model,
			profile.OSVersion,
			now,
			profile.LastSeen,
			now,
			now,
		).
		Scan(&deviceM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, errors.Wrap(domainerrors.ErrDeviceStateUpdateFailed, "missing required device information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert device")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.NewDatabaseExecuteError(gorm.ErrRecordNotFound, "device upsert returned no row")
	}

	return toDeviceDomain(&deviceM), nil
}

// ClaimEntryAlert marks the device inside and stamps lastAlertAt, only when the claim is still open.
func (repo *deviceRepository) ClaimEntryAlert(ctx context.Context, deviceID string, now time.Time, cooldown time.Duration) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Where("last_geofence_inside IS NOT TRUE").
		Where("(last_alert_at IS NULL OR last_alert_at <= ?)", now.Add(-cooldown)).
		Updates(map[string]any{
			"last_geofence_inside": true,
			"last_alert_at":        now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim entry alert")
	}

	return result.RowsAffected == 1, nil
}

// SetGeofenceState persists the device's membership without touching lastAlertAt.
func (repo *deviceRepository) SetGeofenceState(ctx context.Context, deviceID string, inside bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("last_geofence_inside", inside)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update geofence state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// FindDeviceByID retrieves a device by its client-assigned ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDevices retrieves active devices, most recently seen first.
func (repo *deviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("last_seen DESC NULLS LAST").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		DeviceID:           data.DeviceID,
		DeviceName:         data.DeviceName,
		Manufacturer:       data.Manufacturer,
		Model:              data.Model,
		OSVersion:          data.OSVersion,
		RegisteredAt:       data.RegisteredAt,
		LastSeen:           data.LastSeen,
		IsActive:           data.IsActive,
		LastGeofenceInside: data.LastGeofenceInside,
		LastAlertAt:        data.LastAlertAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
