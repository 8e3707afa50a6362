package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"locust/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/locust-local/subscriptions/geofence-alerts"
	headerRequestID   = "X-Request-Id"
)

// localHTTPPublisher posts events in the Pub/Sub push format, so a consumer
// written for push subscriptions can be developed without the cloud service.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// pushEnvelope is the body Pub/Sub sends to push endpoints.
type pushEnvelope struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type pushedMessage struct {
	Data        []byte            `json:"data"` // base64 on the wire
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime time.Time         `json:"publishTime"`
}

// NewLocalHTTPPublisher creates a publisher that posts each event to endpoint.
func NewLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	encoded, err := encodeAlertEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Message: pushedMessage{
			Data:        encoded.data,
			Attributes:  encoded.attributes,
			MessageID:   event.AlertID,
			OrderingKey: encoded.orderingKey,
			PublishTime: time.Now().UTC(),
		},
		Subscription: localSubscription,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(headerRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post alert event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("alert event consumer returned status %d", resp.StatusCode)
	}

	p.logger.Debug("Alert event posted", slog.String("alert_id", event.AlertID), slog.String("endpoint", p.endpoint))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
