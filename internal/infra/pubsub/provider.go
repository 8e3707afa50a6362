// Package pubsub publishes geofence alert events for downstream consumers.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"locust/config"
	"locust/internal/domain/constants"
	"locust/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct{}

func (noopPublisher) PublishAlertEvent(context.Context, *service.AlertEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the alert event sink named by pubsub.provider.
// An absent provider yields a publisher that discards events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, alert events will not be published")

		return noopPublisher{}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, params.Config.Notification.Timeout, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing alert events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, timeout, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// encodedEvent is an alert event ready for either transport.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeAlertEvent serializes the event and derives the attributes consumers filter on.
// Events for one device share an ordering key so entries are seen in arrival order.
func encodeAlertEvent(event *service.AlertEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode alert event")
	}

	attributes := map[string]string{
		"event_type":    constants.EventTypeGeofenceAlert,
		"alert_id":      event.AlertID,
		"device_id":     event.DeviceID,
		"geofence_name": event.GeofenceName,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: event.DeviceID,
	}, nil
}
