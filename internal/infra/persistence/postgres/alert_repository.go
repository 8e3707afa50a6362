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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert with both delivery flags false.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	if alert.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate alert ID")
		}
		alert.ID = id
	}

	alert.EmailSent = false
	alert.PushSent = false
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrAlertCreationFailed, "alert already recorded")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrAlertCreationFailed, "missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// UpdateDeliveryStatus records the outcome of both notification channels.
func (repo *alertRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, emailSent, pushSent bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email_sent": emailSent,
			"push_sent":  pushSent,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alert delivery status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// FindRecentAlerts returns up to limit alerts, newest first.
func (repo *alertRepository) FindRecentAlerts(ctx context.Context, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		DeviceName:           data.DeviceName,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		DistanceFromCenterKm: data.DistanceFromCenterKm,
		Timestamp:            data.Timestamp,
		EmailSent:            data.EmailSent,
		PushSent:             data.PushSent,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		DeviceName:           data.DeviceName,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		DistanceFromCenterKm: data.DistanceFromCenterKm,
		Timestamp:            data.Timestamp,
		EmailSent:            data.EmailSent,
		PushSent:             data.PushSent,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
