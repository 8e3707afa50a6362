package repository

import (
	"context"

	"locust/internal/domain/entity"
)

// PushSubscriptionRepository defines the broadcast list of browser push subscriptions.
type PushSubscriptionRepository interface {
	// UpsertSubscription inserts or replaces the keys of a subscription, keyed by endpoint.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// FindAllSubscriptions returns every stored subscription.
	FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error)
}
