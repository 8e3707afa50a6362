package notification

import (
	"context"
	"log/slog"

	"locust/internal/domain/entity"
	"locust/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// topicMessenger is the subset of *messaging.Client used for topic broadcasts.
type topicMessenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicMessenger
	topic  string
	logger *slog.Logger
}

// NewFirebaseService creates the FCM topic mirror for alert notifications
func NewFirebaseService(ctx context.Context, credentialsPath, topic string, logger *slog.Logger) (service.TopicNotifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// SendTopicNotification broadcasts the notification to the configured topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, notification *entity.PushNotification) error {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: map[string]string{
			"deviceId": notification.Data.DeviceID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send topic notification")
	}

	s.logger.Debug("FCM topic notification sent",
		slog.String("topic", s.topic),
		slog.String("message_id", messageID),
	)

	return nil
}
