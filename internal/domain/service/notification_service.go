package service

import (
	"context"

	"locust/internal/domain/entity"
)

// EmailSender delivers plain-text alert emails to the single configured recipient.
type EmailSender interface {
	// SendAlertEmail reports delivered=false with a nil error when email is not configured.
	SendAlertEmail(ctx context.Context, subject, text string) (delivered bool, err error)
}

// WebPushSender delivers browser push notifications signed with the VAPID identity.
type WebPushSender interface {
	// Enabled reports whether the VAPID subject and keys are all configured.
	Enabled() bool

	// PublicKey returns the VAPID public key, or an empty string when unset.
	PublicKey() string

	// Send delivers the notification to one subscription.
	Send(ctx context.Context, subscription *entity.PushSubscription, notification *entity.PushNotification) error
}

// TopicNotifier mirrors push notifications to a mobile messaging topic.
type TopicNotifier interface {
	// SendTopicNotification broadcasts the notification to every app instance subscribed to the topic
	SendTopicNotification(ctx context.Context, notification *entity.PushNotification) error
}
