package impl

import (
	"context"
	"testing"

	"locust/internal/domain/entity"
	mockRepo "locust/internal/mocks/repository"
	mockSvc "locust/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSubscriptionService_Subscribe(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewPushSubscriptionService(PushSubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		WebPush:          mockSvc.NewMockWebPushSender(t),
		Logger:           testLogger(),
	})
	ctx := context.Background()
	subscription := &entity.PushSubscription{
		Endpoint: "https://push.example.com/sub/1",
		Keys:     entity.PushSubscriptionKeys{P256dh: "p256dh-key", Auth: "auth-secret"},
	}

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, subscription).Return(nil)

	require.NoError(t, svc.Subscribe(ctx, subscription))
}

func TestPushSubscriptionService_Subscribe_Error(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewPushSubscriptionService(PushSubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		WebPush:          mockSvc.NewMockWebPushSender(t),
		Logger:           testLogger(),
	})
	ctx := context.Background()

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, &entity.PushSubscription{Endpoint: "e"}).Return(errors.New("db down"))

	err := svc.Subscribe(ctx, &entity.PushSubscription{Endpoint: "e"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store push subscription")
}

func TestPushSubscriptionService_PublicKey(t *testing.T) {
	webPush := mockSvc.NewMockWebPushSender(t)
	svc := NewPushSubscriptionService(PushSubscriptionServiceParams{
		SubscriptionRepo: mockRepo.NewMockPushSubscriptionRepository(t),
		WebPush:          webPush,
		Logger:           testLogger(),
	})

	webPush.EXPECT().PublicKey().Return("BPublicKey")

	assert.Equal(t, "BPublicKey", svc.PublicKey())
}
