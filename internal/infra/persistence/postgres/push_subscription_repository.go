package postgres

import (
	"context"

	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/repository"
	"locust/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// UpsertSubscription inserts a subscription or replaces the keys of an existing endpoint.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromPushSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "updated_at"}),
		}).
		Create(subscriptionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrInvalidSubscription, "missing subscription keys")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindAllSubscriptions returns every stored subscription, oldest first.
func (repo *pushSubscriptionRepository) FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toPushSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// --- Mapper Functions ---

func toPushSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		Endpoint: data.Endpoint,
		Keys: entity.PushSubscriptionKeys{
			P256dh: data.P256dh,
			Auth:   data.Auth,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		Endpoint:  data.Endpoint,
		P256dh:    data.Keys.P256dh,
		Auth:      data.Keys.Auth,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
