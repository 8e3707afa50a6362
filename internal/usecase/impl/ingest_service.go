// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"locust/config"
	deliverycontext "locust/internal/delivery/context"
	"locust/internal/domain/constants"
	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/geofence"
	"locust/internal/domain/repository"
	"locust/internal/domain/service"
	"locust/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ingestService implements the IngestUsecase interface.
type ingestService struct {
	txManager        repository.TransactionManager
	alertRepo        repository.AlertRepository
	subscriptionRepo repository.PushSubscriptionRepository
	emailSender      service.EmailSender
	webPush          service.WebPushSender
	topicNotifier    service.TopicNotifier
	publisher        service.EventPublisher
	cache            service.Cache
	metrics          service.IngestMetrics
	fence            entity.Geofence
	cooldown         time.Duration
	queryTimeout     time.Duration
	deliveryTimeout  time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// IngestServiceParams holds dependencies for IngestService, injected by Fx.
type IngestServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AlertRepo        repository.AlertRepository
	SubscriptionRepo repository.PushSubscriptionRepository
	EmailSender      service.EmailSender
	WebPush          service.WebPushSender
	TopicNotifier    service.TopicNotifier `optional:"true"`
	Publisher        service.EventPublisher
	Cache            service.Cache
	Metrics          service.IngestMetrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewIngestService is the constructor for ingestService.
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	return &ingestService{
		txManager:        params.TxManager,
		alertRepo:        params.AlertRepo,
		subscriptionRepo: params.SubscriptionRepo,
		emailSender:      params.EmailSender,
		webPush:          params.WebPush,
		topicNotifier:    params.TopicNotifier,
		publisher:        params.Publisher,
		cache:            params.Cache,
		metrics:          params.Metrics,
		fence:            GeofenceFromConfig(params.Config.Geofence),
		cooldown:         params.Config.Geofence.Cooldown,
		queryTimeout:     QueryTimeoutFromConfig(params.Config),
		deliveryTimeout:  params.Config.Notification.Timeout,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// GeofenceFromConfig builds the process-wide geofence.
func GeofenceFromConfig(cfg config.GeofenceConfig) entity.Geofence {
	return entity.Geofence{
		Name:     cfg.Name,
		Center:   geofence.NewPoint(cfg.CenterLat, cfg.CenterLng),
		RadiusKm: cfg.RadiusKm,
	}
}

// QueryTimeoutFromConfig returns the per-query deadline, never zero.
func QueryTimeoutFromConfig(cfg *config.Config) time.Duration {
	if cfg.Database.QueryTimeout > 0 {
		return cfg.Database.QueryTimeout
	}

	return constants.FallbackQueryTimeout
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ingestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestFix persists the fix and evaluates the entry transition in one transaction,
// then dispatches notifications for a fired alert after commit.
func (srv *ingestService) IngestFix(ctx context.Context, fix *entity.Fix) (*usecase.IngestOutput, error) {
	now := srv.now().UTC()
	timestamp := fix.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}

	result := geofence.Classify(geofence.NewPoint(fix.Latitude, fix.Longitude), srv.fence)

	// The upsert holds the device row lock until commit; the deadline bounds how long.
	txCtx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	var alert *entity.Alert
	err := srv.txManager.Execute(txCtx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		alert, err = srv.evaluate(txCtx, repoFactory, fix, timestamp, now, result)

		return err
	})
	cancel()
	if err != nil {
		srv.log(ctx).Error("Failed to ingest fix",
			slog.String("deviceId", fix.DeviceID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute ingest transaction")
	}

	srv.metrics.ObserveFix(result.Inside)
	srv.log(ctx).Debug("Fix ingested",
		slog.String("deviceId", fix.DeviceID),
		slog.Bool("inside", result.Inside),
		slog.Float64("distanceKm", result.DistanceKm),
		slog.Bool("alertCreated", alert != nil),
	)

	if alert != nil {
		srv.metrics.ObserveAlert()
		// Delivery and bookkeeping outlive a client that hangs up.
		srv.deliver(context.WithoutCancel(ctx), alert)
	}

	srv.invalidateDashboard(ctx)

	return &usecase.IngestOutput{
		Geofence:     result,
		AlertCreated: alert != nil,
		Alert:        alert,
	}, nil
}

// evaluate runs inside the ingest transaction. The device row stays locked from the
// upsert until commit, so concurrent fixes for one device are serialized here.
func (srv *ingestService) evaluate(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	fix *entity.Fix,
	timestamp, now time.Time,
	result entity.GeofenceResult,
) (*entity.Alert, error) {
	deviceRepo := repoFactory.NewDeviceRepository()
	locationRepo := repoFactory.NewLocationRepository()
	alertRepo := repoFactory.NewAlertRepository()

	previous, err := deviceRepo.UpsertDevice(ctx, &entity.DeviceProfile{
		DeviceID:     fix.DeviceID,
		DeviceName:   fix.DeviceName,
		Manufacturer: fix.Manufacturer,
		Model:        fix.Model,
		OSVersion:    fix.OSVersion,
		LastSeen:     timestamp,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	if err := locationRepo.AppendLocation(ctx, &entity.LocationRecord{
		DeviceID:             fix.DeviceID,
		Latitude:             fix.Latitude,
		Longitude:            fix.Longitude,
		Accuracy:             fix.Accuracy,
		Altitude:             fix.Altitude,
		Speed:                fix.Speed,
		Heading:              fix.Heading,
		Battery:              fix.Battery,
		Timestamp:            timestamp,
		IsInGeofence:         result.Inside,
		DistanceFromCenterKm: result.DistanceKm,
	}); err != nil {
		srv.log(ctx).Error("Failed to append location", slog.String("deviceId", fix.DeviceID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLocationNotRecorded, err.Error())
	}

	if !srv.shouldFire(previous, result.Inside, now) {
		if err := deviceRepo.SetGeofenceState(ctx, fix.DeviceID, result.Inside); err != nil {
			return nil, errors.Wrap(domainerrors.ErrDeviceStateUpdateFailed, err.Error())
		}

		return nil, nil
	}

	claimed, err := deviceRepo.ClaimEntryAlert(ctx, fix.DeviceID, now, srv.cooldown)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDeviceStateUpdateFailed, err.Error())
	}
	if !claimed {
		// Another writer already recorded this entry.
		srv.log(ctx).Info("Entry alert already claimed", slog.String("deviceId", fix.DeviceID))

		if err := deviceRepo.SetGeofenceState(ctx, fix.DeviceID, true); err != nil {
			return nil, errors.Wrap(domainerrors.ErrDeviceStateUpdateFailed, err.Error())
		}

		return nil, nil
	}

	alert := &entity.Alert{
		DeviceID:             fix.DeviceID,
		DeviceName:           fix.DeviceName,
		Latitude:             fix.Latitude,
		Longitude:            fix.Longitude,
		DistanceFromCenterKm: result.DistanceKm,
		Timestamp:            timestamp,
	}
	if err := alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(domainerrors.ErrAlertCreationFailed, err.Error())
	}

	return alert, nil
}

// shouldFire reports whether the fix is an entry that passed the cooldown gate.
// An unknown previous state counts as outside.
func (srv *ingestService) shouldFire(previous *entity.Device, inside bool, now time.Time) bool {
	entered := inside && previous.GeofenceState() != entity.GeofenceStateInside
	if !entered {
		return false
	}

	return previous.LastAlertAt == nil || now.Sub(*previous.LastAlertAt) >= srv.cooldown
}

// deliver attempts both channels, records their outcome once and publishes the alert event.
func (srv *ingestService) deliver(ctx context.Context, alert *entity.Alert) {
	var (
		wg        sync.WaitGroup
		emailSent bool
		pushSent  bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		emailSent = srv.sendEmail(ctx, alert)
	}()
	go func() {
		defer wg.Done()
		pushSent = srv.sendPush(ctx, alert)
	}()
	wg.Wait()

	alert.EmailSent = emailSent
	alert.PushSent = pushSent
	srv.metrics.ObserveDelivery(service.ChannelEmail, emailSent)
	srv.metrics.ObserveDelivery(service.ChannelPush, pushSent)

	// The alert and device state are already durable; a lost flag update only affects reporting.
	updateCtx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	defer cancel()

	if err := srv.alertRepo.UpdateDeliveryStatus(updateCtx, alert.ID, emailSent, pushSent); err != nil {
		srv.log(ctx).Error("Failed to record alert delivery status",
			slog.String("alertId", alert.ID.String()),
			slog.Bool("emailSent", emailSent),
			slog.Bool("pushSent", pushSent),
			slog.Any("error", err),
		)
	}

	srv.publishAlertEvent(ctx, alert)
}

func (srv *ingestService) sendEmail(ctx context.Context, alert *entity.Alert) bool {
	ctx, cancel := context.WithTimeout(ctx, srv.deliveryTimeout)
	defer cancel()

	delivered, err := srv.emailSender.SendAlertEmail(ctx, AlertEmailSubject(alert), AlertEmailText(alert, srv.fence))
	if err != nil {
		srv.log(ctx).Warn("Alert email failed", slog.String("alertId", alert.ID.String()), slog.Any("error", err))

		return false
	}

	return delivered
}

// sendPush broadcasts to every subscription and the optional topic mirror.
// It reports true when at least one delivery succeeded.
func (srv *ingestService) sendPush(ctx context.Context, alert *entity.Alert) bool {
	notification := AlertPushNotification(alert, srv.fence)
	delivered := false

	if srv.webPush.Enabled() {
		loadCtx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
		subscriptions, err := srv.subscriptionRepo.FindAllSubscriptions(loadCtx)
		cancel()

		if err != nil {
			srv.log(ctx).Warn("Failed to load push subscriptions", slog.Any("error", err))
		}

		for _, subscription := range subscriptions {
			if srv.sendWebPush(ctx, subscription, notification) {
				delivered = true
			}
		}
	} else {
		srv.log(ctx).Debug("Web push not configured, skipping subscriptions")
	}

	if srv.topicNotifier != nil {
		topicCtx, cancel := context.WithTimeout(ctx, srv.deliveryTimeout)
		err := srv.topicNotifier.SendTopicNotification(topicCtx, notification)
		cancel()

		if err != nil {
			srv.log(ctx).Warn("FCM topic notification failed", slog.Any("error", err))
		} else {
			delivered = true
		}
	}

	return delivered
}

func (srv *ingestService) sendWebPush(ctx context.Context, subscription *entity.PushSubscription, notification *entity.PushNotification) bool {
	ctx, cancel := context.WithTimeout(ctx, srv.deliveryTimeout)
	defer cancel()

	if err := srv.webPush.Send(ctx, subscription, notification); err != nil {
		srv.log(ctx).Warn("Web push delivery failed",
			slog.String("endpoint", subscription.Endpoint),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

func (srv *ingestService) publishAlertEvent(ctx context.Context, alert *entity.Alert) {
	event := &service.AlertEvent{
		RequestID:            deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:              alert.ID.String(),
		DeviceID:             alert.DeviceID,
		DeviceName:           alert.DeviceName,
		GeofenceName:         srv.fence.Name,
		Latitude:             alert.Latitude,
		Longitude:            alert.Longitude,
		DistanceFromCenterKm: alert.DistanceFromCenterKm,
		Timestamp:            alert.Timestamp,
		EmailSent:            alert.EmailSent,
		PushSent:             alert.PushSent,
	}

	ctx, cancel := context.WithTimeout(ctx, srv.deliveryTimeout)
	defer cancel()

	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish alert event", slog.String("alertId", event.AlertID), slog.Any("error", err))
	}
}

func (srv *ingestService) invalidateDashboard(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	defer cancel()

	if err := srv.cache.Delete(ctx, constants.CacheKeyDashboard); err != nil {
		srv.log(ctx).Warn("Failed to invalidate dashboard cache", slog.Any("error", err))
	}
}

// AlertEmailSubject returns the subject line of an entry alert email.
func AlertEmailSubject(alert *entity.Alert) string {
	return "Geofence entry: " + alert.DeviceName
}

// AlertEmailText renders the plain-text body of an entry alert email.
func AlertEmailText(alert *entity.Alert, fence entity.Geofence) string {
	lat := strconv.FormatFloat(alert.Latitude, 'f', -1, 64)
	lng := strconv.FormatFloat(alert.Longitude, 'f', -1, 64)

	return fmt.Sprintf("Device: %s (%s)\n", alert.DeviceName, alert.DeviceID) +
		fmt.Sprintf("Geofence: %s (%s km)\n", fence.Name, strconv.FormatFloat(fence.RadiusKm, 'f', -1, 64)) +
		"Status: ENTERED\n" +
		fmt.Sprintf("Distance from center: %.2f km\n", alert.DistanceFromCenterKm) +
		fmt.Sprintf("Location: https://maps.google.com/?q=%s,%s\n", lat, lng) +
		fmt.Sprintf("Time: %s\n", alert.Timestamp.UTC().Format(isoMillis))
}

// AlertPushNotification builds the payload shown by subscribed browsers.
func AlertPushNotification(alert *entity.Alert, fence entity.Geofence) *entity.PushNotification {
	return &entity.PushNotification{
		Title: "Geofence alert",
		Body:  fmt.Sprintf("%s entered %s", alert.DeviceName, fence.Name),
		Data: entity.PushNotificationData{
			DeviceID: alert.DeviceID,
		},
	}
}
