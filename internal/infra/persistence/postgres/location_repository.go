package postgres

import (
	"context"

	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/repository"
	"locust/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// AppendLocation persists a fix. Records are never updated afterwards.
func (repo *locationRepository) AppendLocation(ctx context.Context, record *entity.LocationRecord) error {
	if record.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate location ID")
		}
		record.ID = id
	}

	locationM := fromLocationDomain(record)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrInvalidPayload, "location violates a column constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append location")
	}

	record.CreatedAt = locationM.CreatedAt

	return nil
}

// FindLatestPerDevice returns each device's newest fix, newest first.
func (repo *locationRepository) FindLatestPerDevice(ctx context.Context) ([]*entity.LocationRecord, error) {
	var locationModels []*model.LocationModel

	latest := repo.db.
		Model(&model.LocationModel{}).
		Select("DISTINCT ON (device_id) *").
		Order("device_id, timestamp DESC, id DESC")

	if err := repo.db.WithContext(ctx).
		Table("(?) AS latest", latest).
		Order("timestamp DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest locations")
	}

	return toLocationDomains(locationModels), nil
}

// FindRecentByDevice returns up to limit of a device's newest fixes, newest first.
func (repo *locationRepository) FindRecentByDevice(ctx context.Context, deviceID string, limit int) ([]*entity.LocationRecord, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device locations")
	}

	return toLocationDomains(locationModels), nil
}

// --- Mapper Functions ---

func toLocationDomains(locationModels []*model.LocationModel) []*entity.LocationRecord {
	records := make([]*entity.LocationRecord, 0, len(locationModels))
	for _, locationM := range locationModels {
		records = append(records, toLocationDomain(locationM))
	}

	return records
}

// toLocationDomain converts a GORM LocationModel to a domain LocationRecord entity.
func toLocationDomain(data *model.LocationModel) *entity.LocationRecord {
	if data == nil {
		return nil
	}

	return &entity.LocationRecord{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Accuracy:             data.Accuracy,
		Altitude:             data.Altitude,
		Speed:                data.Speed,
		Heading:              data.Heading,
		Battery:              data.Battery,
		Timestamp:            data.Timestamp,
		IsInGeofence:         data.IsInGeofence,
		DistanceFromCenterKm: data.DistanceFromCenterKm,
		CreatedAt:            data.CreatedAt,
	}
}

// fromLocationDomain converts a domain LocationRecord entity to a GORM LocationModel.
func fromLocationDomain(data *entity.LocationRecord) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Accuracy:             data.Accuracy,
		Altitude:             data.Altitude,
		Speed:                data.Speed,
		Heading:              data.Heading,
		Battery:              data.Battery,
		Timestamp:            data.Timestamp,
		IsInGeofence:         data.IsInGeofence,
		DistanceFromCenterKm: data.DistanceFromCenterKm,
		CreatedAt:            data.CreatedAt,
	}
}
