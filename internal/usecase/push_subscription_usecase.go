package usecase

import (
	"context"

	"locust/internal/domain/entity"
)

// PushSubscriptionUsecase defines browser push registration.
type PushSubscriptionUsecase interface {
	// Subscribe stores the subscription, replacing the keys of a known endpoint.
	Subscribe(ctx context.Context, subscription *entity.PushSubscription) error

	// PublicKey returns the VAPID public key, empty when push is not configured.
	PublicKey() string
}
