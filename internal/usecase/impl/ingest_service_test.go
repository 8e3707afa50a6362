package impl

import (
	"context"
	"testing"
	"time"

	"locust/config"
	"locust/internal/domain/constants"
	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/repository"
	domainservice "locust/internal/domain/service"
	mockRepo "locust/internal/mocks/repository"
	mockSvc "locust/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testNow     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testCenter  = entity.LatLng{Lat: 25.0330, Lng: 121.5654}
	testOutside = entity.LatLng{Lat: 25.1330, Lng: 121.5654} // about 11 km north

	withDeadline = mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()

		return ok
	})
)

func testConfig() *config.Config {
	return &config.Config{
		Geofence: config.GeofenceConfig{
			Name:      "Depot",
			CenterLat: testCenter.Lat,
			CenterLng: testCenter.Lng,
			RadiusKm:  1,
			Cooldown:  30 * time.Minute,
		},
		Database:     config.DatabaseConfig{QueryTimeout: 2 * time.Second},
		Notification: config.NotificationConfig{Timeout: time.Second},
	}
}

// ingestServiceFixtures holds all test dependencies for ingest service tests.
type ingestServiceFixtures struct {
	service          *ingestService
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	deviceRepo       *mockRepo.MockDeviceRepository
	locationRepo     *mockRepo.MockLocationRepository
	txAlertRepo      *mockRepo.MockAlertRepository
	alertRepo        *mockRepo.MockAlertRepository
	subscriptionRepo *mockRepo.MockPushSubscriptionRepository
	emailSender      *mockSvc.MockEmailSender
	webPush          *mockSvc.MockWebPushSender
	publisher        *mockSvc.MockEventPublisher
	cache            *mockSvc.MockCache
	metrics          *mockSvc.MockIngestMetrics
}

func createTestIngestService(t *testing.T, topic domainservice.TopicNotifier) ingestServiceFixtures {
	fx := ingestServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		locationRepo:     mockRepo.NewMockLocationRepository(t),
		txAlertRepo:      mockRepo.NewMockAlertRepository(t),
		alertRepo:        mockRepo.NewMockAlertRepository(t),
		subscriptionRepo: mockRepo.NewMockPushSubscriptionRepository(t),
		emailSender:      mockSvc.NewMockEmailSender(t),
		webPush:          mockSvc.NewMockWebPushSender(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		cache:            mockSvc.NewMockCache(t),
		metrics:          mockSvc.NewMockIngestMetrics(t),
	}

	svc := NewIngestService(IngestServiceParams{
		TxManager:        fx.txManager,
		AlertRepo:        fx.alertRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		EmailSender:      fx.emailSender,
		WebPush:          fx.webPush,
		TopicNotifier:    topic,
		Publisher:        fx.publisher,
		Cache:            fx.cache,
		Metrics:          fx.metrics,
		Config:           testConfig(),
		Logger:           testLogger(),
	}).(*ingestService)
	svc.now = func() time.Time { return testNow }
	fx.service = svc

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		}).Maybe()
	fx.repoFactory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo).Maybe()
	fx.repoFactory.EXPECT().NewLocationRepository().Return(fx.locationRepo).Maybe()
	fx.repoFactory.EXPECT().NewAlertRepository().Return(fx.txAlertRepo).Maybe()

	return fx
}

func fixAt(position entity.LatLng, timestamp time.Time) *entity.Fix {
	return &entity.Fix{
		DeviceID:   "phone-1",
		DeviceName: "Van 1",
		Latitude:   position.Lat,
		Longitude:  position.Lng,
		Accuracy:   5,
		Timestamp:  timestamp,
	}
}

func deviceState(inside *bool, lastAlertAt *time.Time) *entity.Device {
	return &entity.Device{
		DeviceID:           "phone-1",
		DeviceName:         "Van 1",
		IsActive:           true,
		LastGeofenceInside: inside,
		LastAlertAt:        lastAlertAt,
	}
}

func boolPtr(v bool) *bool { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func (fx ingestServiceFixtures) expectRecorded(previous *entity.Device, inside bool) {
	fx.deviceRepo.EXPECT().
		UpsertDevice(mock.Anything, mock.MatchedBy(func(p *entity.DeviceProfile) bool {
			return p.DeviceID == "phone-1" && p.DeviceName == "Van 1"
		})).
		Return(previous, nil)
	fx.locationRepo.EXPECT().
		AppendLocation(mock.Anything, mock.MatchedBy(func(r *entity.LocationRecord) bool {
			return r.DeviceID == "phone-1" && r.IsInGeofence == inside
		})).
		Return(nil)
}

func (fx ingestServiceFixtures) expectNoAlert(inside bool) {
	fx.deviceRepo.EXPECT().SetGeofenceState(mock.Anything, "phone-1", inside).Return(nil)
	fx.metrics.EXPECT().ObserveFix(inside).Return()
	fx.cache.EXPECT().Delete(mock.Anything, constants.CacheKeyDashboard).Return(nil)
}

func (fx ingestServiceFixtures) expectAlertCreated(alertID uuid.UUID) {
	fx.deviceRepo.EXPECT().ClaimEntryAlert(mock.Anything, "phone-1", testNow, 30*time.Minute).Return(true, nil)
	fx.txAlertRepo.EXPECT().
		CreateAlert(mock.Anything, mock.AnythingOfType("*entity.Alert")).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = alertID
			return nil
		})
	fx.metrics.EXPECT().ObserveFix(true).Return()
	fx.metrics.EXPECT().ObserveAlert().Return()
	fx.cache.EXPECT().Delete(mock.Anything, constants.CacheKeyDashboard).Return(nil)
}

func TestIngestService_IngestFix_FirstFixInsideFiresAlert(t *testing.T) {
	fx := createTestIngestService(t, nil)
	ctx := context.Background()
	alertID := uuid.New()
	subscription := &entity.PushSubscription{Endpoint: "https://push.example.com/a"}

	fx.expectRecorded(deviceState(nil, nil), true)
	fx.expectAlertCreated(alertID)

	fx.emailSender.EXPECT().
		SendAlertEmail(mock.Anything, "Geofence entry: Van 1", mock.AnythingOfType("string")).
		Return(true, nil)
	fx.webPush.EXPECT().Enabled().Return(true)
	fx.subscriptionRepo.EXPECT().FindAllSubscriptions(mock.Anything).Return([]*entity.PushSubscription{subscription}, nil)
	fx.webPush.EXPECT().
		Send(mock.Anything, subscription, mock.MatchedBy(func(n *entity.PushNotification) bool {
			return n.Title == "Geofence alert" && n.Body == "Van 1 entered Depot" && n.Data.DeviceID == "phone-1"
		})).
		Return(nil)
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelEmail, true).Return()
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelPush, true).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, true, true).Return(nil)
	fx.publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.MatchedBy(func(e *domainservice.AlertEvent) bool {
			return e.AlertID == alertID.String() && e.GeofenceName == "Depot" && e.EmailSent && e.PushSent
		})).
		Return(nil)

	output, err := fx.service.IngestFix(ctx, fixAt(testCenter, testNow.Add(-time.Second)))
	require.NoError(t, err)
	assert.True(t, output.Geofence.Inside)
	assert.InDelta(t, 0, output.Geofence.DistanceKm, 1e-9)
	assert.True(t, output.AlertCreated)
	require.NotNil(t, output.Alert)
	assert.Equal(t, "Van 1", output.Alert.DeviceName)
	assert.Equal(t, testNow.Add(-time.Second), output.Alert.Timestamp)
	assert.True(t, output.Alert.EmailSent)
	assert.True(t, output.Alert.PushSent)
}

func TestIngestService_IngestFix_StoreAndCacheCallsAreBounded(t *testing.T) {
	fx := createTestIngestService(t, nil)
	alertID := uuid.New()
	subscription := &entity.PushSubscription{Endpoint: "https://push.example.com/a"}

	fx.deviceRepo.EXPECT().UpsertDevice(withDeadline, mock.Anything).Return(deviceState(nil, nil), nil)
	fx.locationRepo.EXPECT().AppendLocation(withDeadline, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().ClaimEntryAlert(withDeadline, "phone-1", testNow, 30*time.Minute).Return(true, nil)
	fx.txAlertRepo.EXPECT().
		CreateAlert(withDeadline, mock.Anything).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = alertID
			return nil
		})
	fx.metrics.EXPECT().ObserveFix(true).Return()
	fx.metrics.EXPECT().ObserveAlert().Return()
	fx.emailSender.EXPECT().SendAlertEmail(withDeadline, mock.Anything, mock.Anything).Return(true, nil)
	fx.webPush.EXPECT().Enabled().Return(true)
	fx.subscriptionRepo.EXPECT().FindAllSubscriptions(withDeadline).Return([]*entity.PushSubscription{subscription}, nil)
	fx.webPush.EXPECT().Send(withDeadline, subscription, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveDelivery(mock.Anything, true).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(withDeadline, alertID, true, true).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(withDeadline, mock.Anything).Return(nil)
	fx.cache.EXPECT().Delete(withDeadline, constants.CacheKeyDashboard).Return(nil)

	_, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
}

func TestIngestService_IngestFix_TransactionDeadline(t *testing.T) {
	cfg := testConfig()
	cfg.Database.QueryTimeout = 50 * time.Millisecond
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewIngestService(IngestServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    testLogger(),
	})

	var txCtx context.Context
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ func(repository.RepositoryFactory) error) error {
			txCtx = ctx
			<-ctx.Done()

			return ctx.Err()
		})

	started := time.Now()
	_, err := svc.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	deadline, ok := txCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, started.Add(50*time.Millisecond), deadline, time.Second)
}

func TestIngestService_IngestFix_NoAlert(t *testing.T) {
	tests := []struct {
		name     string
		previous *entity.Device
		position entity.LatLng
		inside   bool
	}{
		{
			name:     "already inside",
			previous: deviceState(boolPtr(true), timePtr(testNow.Add(-2*time.Hour))),
			position: testCenter,
			inside:   true,
		},
		{
			name:     "re-entry within cooldown",
			previous: deviceState(boolPtr(false), timePtr(testNow.Add(-10*time.Minute))),
			position: testCenter,
			inside:   true,
		},
		{
			name:     "first fix outside",
			previous: deviceState(nil, nil),
			position: testOutside,
			inside:   false,
		},
		{
			name:     "leaving the geofence",
			previous: deviceState(boolPtr(true), timePtr(testNow.Add(-time.Minute))),
			position: testOutside,
			inside:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIngestService(t, nil)

			fx.expectRecorded(tt.previous, tt.inside)
			fx.expectNoAlert(tt.inside)

			output, err := fx.service.IngestFix(context.Background(), fixAt(tt.position, testNow))
			require.NoError(t, err)
			assert.Equal(t, tt.inside, output.Geofence.Inside)
			assert.False(t, output.AlertCreated)
			assert.Nil(t, output.Alert)
		})
	}
}

func TestIngestService_IngestFix_ReentryAfterCooldownFires(t *testing.T) {
	fx := createTestIngestService(t, nil)
	alertID := uuid.New()

	// Exactly one cooldown ago still passes the gate.
	fx.expectRecorded(deviceState(boolPtr(false), timePtr(testNow.Add(-30*time.Minute))), true)
	fx.expectAlertCreated(alertID)
	fx.emailSender.EXPECT().SendAlertEmail(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	fx.webPush.EXPECT().Enabled().Return(false)
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelEmail, false).Return()
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelPush, false).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, false, false).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil)

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.True(t, output.AlertCreated)
}

func TestIngestService_IngestFix_LostClaimRecordsStateOnly(t *testing.T) {
	fx := createTestIngestService(t, nil)

	fx.expectRecorded(deviceState(boolPtr(false), nil), true)
	fx.deviceRepo.EXPECT().ClaimEntryAlert(mock.Anything, "phone-1", testNow, 30*time.Minute).Return(false, nil)
	fx.expectNoAlert(true)

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.False(t, output.AlertCreated)
}

func TestIngestService_IngestFix_MissingTimestampUsesServerTime(t *testing.T) {
	fx := createTestIngestService(t, nil)

	fx.deviceRepo.EXPECT().
		UpsertDevice(mock.Anything, mock.MatchedBy(func(p *entity.DeviceProfile) bool {
			return p.LastSeen.Equal(testNow)
		})).
		Return(deviceState(boolPtr(false), nil), nil)
	fx.locationRepo.EXPECT().
		AppendLocation(mock.Anything, mock.MatchedBy(func(r *entity.LocationRecord) bool {
			return r.Timestamp.Equal(testNow)
		})).
		Return(nil)
	fx.expectNoAlert(false)

	_, err := fx.service.IngestFix(context.Background(), fixAt(testOutside, time.Time{}))
	require.NoError(t, err)
}

func TestIngestService_IngestFix_AppendFailure(t *testing.T) {
	fx := createTestIngestService(t, nil)

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(deviceState(nil, nil), nil)
	fx.locationRepo.EXPECT().AppendLocation(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotRecorded)
}

func TestIngestService_IngestFix_UpsertFailure(t *testing.T) {
	fx := createTestIngestService(t, nil)

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert device")
}

func TestIngestService_IngestFix_AlertCreationFailure(t *testing.T) {
	fx := createTestIngestService(t, nil)

	fx.expectRecorded(deviceState(nil, nil), true)
	fx.deviceRepo.EXPECT().ClaimEntryAlert(mock.Anything, "phone-1", testNow, 30*time.Minute).Return(true, nil)
	fx.txAlertRepo.EXPECT().CreateAlert(mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlertCreationFailed)
}

func TestIngestService_IngestFix_EmailFailureDoesNotBlockPush(t *testing.T) {
	fx := createTestIngestService(t, nil)
	alertID := uuid.New()
	broken := &entity.PushSubscription{Endpoint: "https://push.example.com/gone"}
	working := &entity.PushSubscription{Endpoint: "https://push.example.com/ok"}

	fx.expectRecorded(deviceState(boolPtr(false), nil), true)
	fx.expectAlertCreated(alertID)
	fx.emailSender.EXPECT().SendAlertEmail(mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("smtp down"))
	fx.webPush.EXPECT().Enabled().Return(true)
	fx.subscriptionRepo.EXPECT().FindAllSubscriptions(mock.Anything).Return([]*entity.PushSubscription{broken, working}, nil)
	fx.webPush.EXPECT().Send(mock.Anything, broken, mock.Anything).Return(errors.New("410 gone"))
	fx.webPush.EXPECT().Send(mock.Anything, working, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelEmail, false).Return()
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelPush, true).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, false, true).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil)

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.True(t, output.AlertCreated)
	assert.False(t, output.Alert.EmailSent)
	assert.True(t, output.Alert.PushSent)
}

func TestIngestService_IngestFix_TopicMirrorCountsAsPush(t *testing.T) {
	topic := mockSvc.NewMockTopicNotifier(t)
	fx := createTestIngestService(t, topic)
	alertID := uuid.New()

	fx.expectRecorded(deviceState(nil, nil), true)
	fx.expectAlertCreated(alertID)
	fx.emailSender.EXPECT().SendAlertEmail(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	fx.webPush.EXPECT().Enabled().Return(false)
	topic.EXPECT().SendTopicNotification(mock.Anything, mock.AnythingOfType("*entity.PushNotification")).Return(nil)
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelEmail, false).Return()
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelPush, true).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, false, true).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil)

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.True(t, output.Alert.PushSent)
}

func TestIngestService_IngestFix_BookkeepingFailuresAreNotFatal(t *testing.T) {
	fx := createTestIngestService(t, nil)
	alertID := uuid.New()

	fx.expectRecorded(deviceState(nil, nil), true)
	fx.deviceRepo.EXPECT().ClaimEntryAlert(mock.Anything, "phone-1", testNow, 30*time.Minute).Return(true, nil)
	fx.txAlertRepo.EXPECT().
		CreateAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = alertID
			return nil
		})
	fx.metrics.EXPECT().ObserveFix(true).Return()
	fx.metrics.EXPECT().ObserveAlert().Return()
	fx.emailSender.EXPECT().SendAlertEmail(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	fx.webPush.EXPECT().Enabled().Return(false)
	fx.metrics.EXPECT().ObserveDelivery(mock.Anything, mock.Anything).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, true, false).Return(errors.New("timeout"))
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	fx.cache.EXPECT().Delete(mock.Anything, constants.CacheKeyDashboard).Return(errors.New("redis down"))

	output, err := fx.service.IngestFix(context.Background(), fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.True(t, output.AlertCreated)
}

func TestIngestService_IngestFix_DeliverySurvivesCanceledRequest(t *testing.T) {
	fx := createTestIngestService(t, nil)
	alertID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	fx.expectRecorded(deviceState(nil, nil), true)
	fx.deviceRepo.EXPECT().ClaimEntryAlert(mock.Anything, "phone-1", testNow, 30*time.Minute).Return(true, nil)
	fx.txAlertRepo.EXPECT().
		CreateAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = alertID
			// The client hangs up right after the alert row is written.
			cancel()
			return nil
		})
	fx.metrics.EXPECT().ObserveFix(true).Return()
	fx.metrics.EXPECT().ObserveAlert().Return()
	fx.emailSender.EXPECT().
		SendAlertEmail(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string) (bool, error) {
			return ctx.Err() == nil, ctx.Err()
		})
	fx.webPush.EXPECT().Enabled().Return(false)
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelEmail, true).Return()
	fx.metrics.EXPECT().ObserveDelivery(domainservice.ChannelPush, false).Return()
	fx.alertRepo.EXPECT().UpdateDeliveryStatus(mock.Anything, alertID, true, false).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil)
	fx.cache.EXPECT().Delete(mock.Anything, constants.CacheKeyDashboard).Return(nil)

	output, err := fx.service.IngestFix(ctx, fixAt(testCenter, testNow))
	require.NoError(t, err)
	assert.True(t, output.Alert.EmailSent)
}

func TestAlertEmailText(t *testing.T) {
	fence := GeofenceFromConfig(testConfig().Geofence)
	alert := &entity.Alert{
		DeviceID:             "phone-1",
		DeviceName:           "Van 1",
		Latitude:             25.033,
		Longitude:            121.5654,
		DistanceFromCenterKm: 0.456,
		Timestamp:            time.Date(2026, 3, 1, 20, 0, 0, 120_000_000, time.FixedZone("UTC+8", 8*3600)),
	}

	want := "Device: Van 1 (phone-1)\n" +
		"Geofence: Depot (1 km)\n" +
		"Status: ENTERED\n" +
		"Distance from center: 0.46 km\n" +
		"Location: https://maps.google.com/?q=25.033,121.5654\n" +
		"Time: 2026-03-01T12:00:00.120Z\n"

	assert.Equal(t, "Geofence entry: Van 1", AlertEmailSubject(alert))
	assert.Equal(t, want, AlertEmailText(alert, fence))
}
