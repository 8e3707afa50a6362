package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"locust/config"
	"locust/internal/domain/entity"
	"locust/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultWebPushTTL = 60

type webPushService struct {
	cfg        *config.WebPushConfig
	httpClient webpush.HTTPClient
	logger     *slog.Logger
}

// NewWebPushService creates the VAPID browser push channel.
func NewWebPushService(cfg *config.WebPushConfig, logger *slog.Logger) service.WebPushSender {
	return &webPushService{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Enabled reports whether the VAPID subject and both keys are set.
func (s *webPushService) Enabled() bool {
	return s.cfg != nil &&
		strings.TrimSpace(s.cfg.Subject) != "" &&
		strings.TrimSpace(s.cfg.PublicKey) != "" &&
		strings.TrimSpace(s.cfg.PrivateKey) != ""
}

// PublicKey returns the VAPID public key browsers subscribe with.
func (s *webPushService) PublicKey() string {
	if s.cfg == nil {
		return ""
	}

	return s.cfg.PublicKey
}

// Send encrypts the notification for one subscription and posts it to the push service.
func (s *webPushService) Send(ctx context.Context, subscription *entity.PushSubscription, notification *entity.PushNotification) error {
	if !s.Enabled() {
		return errors.New("web push is not configured")
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return errors.WithStack(err)
	}

	ttl := s.cfg.TTL
	if ttl <= 0 {
		ttl = defaultWebPushTTL
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.Keys.P256dh,
			Auth:   subscription.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.cfg.Subject,
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
		TTL:             ttl,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send web push")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push service returned status %d", resp.StatusCode)
	}

	s.logger.Debug("Web push delivered",
		slog.String("endpoint", subscription.Endpoint),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
