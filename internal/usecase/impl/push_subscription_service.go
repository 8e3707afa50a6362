package impl

import (
	"context"
	"log/slog"

	deliverycontext "locust/internal/delivery/context"
	"locust/internal/domain/entity"
	"locust/internal/domain/repository"
	"locust/internal/domain/service"
	"locust/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pushSubscriptionService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	webPush          service.WebPushSender
	logger           *slog.Logger
}

// PushSubscriptionServiceParams holds dependencies for PushSubscriptionService, injected by Fx.
type PushSubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.PushSubscriptionRepository
	WebPush          service.WebPushSender
	Logger           *slog.Logger
}

// NewPushSubscriptionService is the constructor for pushSubscriptionService.
func NewPushSubscriptionService(params PushSubscriptionServiceParams) usecase.PushSubscriptionUsecase {
	return &pushSubscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		webPush:          params.WebPush,
		logger:           params.Logger,
	}
}

// Subscribe stores the subscription even when push is not configured, so browsers
// registered early start receiving alerts once VAPID keys are set.
func (srv *pushSubscriptionService) Subscribe(ctx context.Context, subscription *entity.PushSubscription) error {
	if err := srv.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return errors.Wrap(err, "failed to store push subscription")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Push subscription stored",
		slog.String("endpoint", subscription.Endpoint),
	)

	return nil
}

func (srv *pushSubscriptionService) PublicKey() string {
	return srv.webPush.PublicKey()
}
