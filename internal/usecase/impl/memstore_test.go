package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"locust/internal/domain/entity"
	"locust/internal/domain/repository"
	domainservice "locust/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory database whose transactions run one at a time,
// which models the row lock the ingest transaction holds on its device.
type memStore struct {
	mu         sync.Mutex
	devices    map[string]entity.Device
	locations  []entity.LocationRecord
	alerts     []entity.Alert
	failAppend bool
}

func newMemStore() *memStore {
	return &memStore{devices: map[string]entity.Device{}}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices := maps.Clone(s.devices)
	locations := slices.Clone(s.locations)
	alerts := slices.Clone(s.alerts)

	if err := fn(memFactory{s: s}); err != nil {
		s.devices, s.locations, s.alerts = devices, locations, alerts
		return err
	}

	return nil
}

func (s *memStore) alertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.alerts)
}

func (s *memStore) locationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.locations)
}

func (s *memStore) device(id string) entity.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.devices[id]
}

type memFactory struct{ s *memStore }

func (f memFactory) NewDeviceRepository() repository.DeviceRepository     { return memDevices{s: f.s} }
func (f memFactory) NewLocationRepository() repository.LocationRepository { return memLocations{s: f.s} }
func (f memFactory) NewAlertRepository() repository.AlertRepository       { return memAlerts{s: f.s} }

// memDevices assumes the caller holds the store lock.
type memDevices struct{ s *memStore }

func (r memDevices) UpsertDevice(_ context.Context, profile *entity.DeviceProfile) (*entity.Device, error) {
	previous, ok := r.s.devices[profile.DeviceID]
	if !ok {
		previous = entity.Device{DeviceID: profile.DeviceID, RegisteredAt: profile.LastSeen, IsActive: true}
	}

	updated := previous
	updated.DeviceName = profile.DeviceName
	lastSeen := profile.LastSeen
	updated.LastSeen = &lastSeen
	r.s.devices[profile.DeviceID] = updated

	return &previous, nil
}

func (r memDevices) ClaimEntryAlert(_ context.Context, deviceID string, now time.Time, cooldown time.Duration) (bool, error) {
	device, ok := r.s.devices[deviceID]
	if !ok {
		return false, repository.ErrDeviceNotFound
	}
	if device.LastGeofenceInside != nil && *device.LastGeofenceInside {
		return false, nil
	}
	if device.LastAlertAt != nil && device.LastAlertAt.After(now.Add(-cooldown)) {
		return false, nil
	}

	inside := true
	device.LastGeofenceInside = &inside
	device.LastAlertAt = &now
	r.s.devices[deviceID] = device

	return true, nil
}

func (r memDevices) SetGeofenceState(_ context.Context, deviceID string, inside bool) error {
	device, ok := r.s.devices[deviceID]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	device.LastGeofenceInside = &inside
	r.s.devices[deviceID] = device

	return nil
}

func (r memDevices) FindDeviceByID(_ context.Context, deviceID string) (*entity.Device, error) {
	device, ok := r.s.devices[deviceID]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return &device, nil
}

func (r memDevices) FindActiveDevices(context.Context) ([]*entity.Device, error) {
	var devices []*entity.Device
	for _, device := range r.s.devices {
		if device.IsActive {
			devices = append(devices, &device)
		}
	}

	return devices, nil
}

type memLocations struct{ s *memStore }

func (r memLocations) AppendLocation(_ context.Context, record *entity.LocationRecord) error {
	if r.s.failAppend {
		return errors.New("append rejected")
	}
	record.ID = uuid.New()
	r.s.locations = append(r.s.locations, *record)

	return nil
}

func (r memLocations) FindLatestPerDevice(context.Context) ([]*entity.LocationRecord, error) {
	return nil, nil
}

func (r memLocations) FindRecentByDevice(context.Context, string, int) ([]*entity.LocationRecord, error) {
	return nil, nil
}

type memAlerts struct{ s *memStore }

func (r memAlerts) CreateAlert(_ context.Context, alert *entity.Alert) error {
	alert.ID = uuid.New()
	r.s.alerts = append(r.s.alerts, *alert)

	return nil
}

func (r memAlerts) UpdateDeliveryStatus(_ context.Context, id uuid.UUID, emailSent, pushSent bool) error {
	for i := range r.s.alerts {
		if r.s.alerts[i].ID == id {
			r.s.alerts[i].EmailSent = emailSent
			r.s.alerts[i].PushSent = pushSent
			return nil
		}
	}

	return repository.ErrAlertNotFound
}

func (r memAlerts) FindRecentAlerts(context.Context, int) ([]*entity.Alert, error) {
	return nil, nil
}

// lockedAlerts serves the post-commit bookkeeping outside any transaction.
type lockedAlerts struct{ s *memStore }

func (r lockedAlerts) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return memAlerts(r).CreateAlert(ctx, alert)
}

func (r lockedAlerts) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, emailSent, pushSent bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return memAlerts(r).UpdateDeliveryStatus(ctx, id, emailSent, pushSent)
}

func (r lockedAlerts) FindRecentAlerts(ctx context.Context, limit int) ([]*entity.Alert, error) {
	return nil, nil
}

type noSubscriptions struct{}

func (noSubscriptions) UpsertSubscription(context.Context, *entity.PushSubscription) error {
	return nil
}

func (noSubscriptions) FindAllSubscriptions(context.Context) ([]*entity.PushSubscription, error) {
	return nil, nil
}

// stubChannels accepts every delivery.
type stubChannels struct{}

func (stubChannels) SendAlertEmail(context.Context, string, string) (bool, error) { return true, nil }
func (stubChannels) Enabled() bool                                                  { return false }
func (stubChannels) PublicKey() string                                              { return "" }
func (stubChannels) Send(context.Context, *entity.PushSubscription, *entity.PushNotification) error {
	return nil
}
func (stubChannels) PublishAlertEvent(context.Context, *domainservice.AlertEvent) error { return nil }
func (stubChannels) Close() error                                                      { return nil }
func (stubChannels) Get(context.Context, string) ([]byte, error) {
	return nil, domainservice.ErrCacheMiss
}
func (stubChannels) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (stubChannels) Delete(context.Context, ...string) error                  { return nil }
func (stubChannels) ObserveFix(bool)                                          {}
func (stubChannels) ObserveAlert()                                            {}
func (stubChannels) ObserveDelivery(string, bool)                             {}

// newMemIngestService wires the ingest service onto store with a controllable clock.
func newMemIngestService(store *memStore, clock *time.Time) *ingestService {
	svc := NewIngestService(IngestServiceParams{
		TxManager:        store,
		AlertRepo:        lockedAlerts{s: store},
		SubscriptionRepo: noSubscriptions{},
		EmailSender:      stubChannels{},
		WebPush:          stubChannels{},
		Publisher:        stubChannels{},
		Cache:            stubChannels{},
		Metrics:          stubChannels{},
		Config:           testConfig(),
		Logger:           testLogger(),
	}).(*ingestService)
	svc.now = func() time.Time { return *clock }

	return svc
}
