//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"locust/internal/domain/entity"
	"locust/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startPostgres runs a throwaway PostgreSQL container and returns a migrated connection.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "locust",
			"POSTGRES_PASSWORD": "locust",
			"POSTGRES_DB":       "locust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=locust password=locust dbname=locust sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

func TestDeviceRepository_UpsertReturnsPreviousState(t *testing.T) {
	db := startPostgres(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first, err := repo.UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1", Model: "Pixel", LastSeen: now})
	require.NoError(t, err)
	assert.Equal(t, entity.GeofenceStateUnknown, first.GeofenceState())
	assert.Nil(t, first.LastAlertAt)

	require.NoError(t, repo.SetGeofenceState(ctx, "phone-1", false))

	second, err := repo.UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1 renamed", LastSeen: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, entity.GeofenceStateOutside, second.GeofenceState())
	assert.Equal(t, "Van 1 renamed", second.DeviceName)
	assert.Equal(t, "Pixel", second.Model, "empty metadata keeps the stored value")
	assert.Equal(t, first.RegisteredAt, second.RegisteredAt)
}

func TestDeviceRepository_ClaimEntryAlert(t *testing.T) {
	db := startPostgres(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	cooldown := 30 * time.Minute

	_, err := repo.UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1", LastSeen: now})
	require.NoError(t, err)

	claimed, err := repo.ClaimEntryAlert(ctx, "phone-1", now, cooldown)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimEntryAlert(ctx, "phone-1", now.Add(time.Hour), cooldown)
	require.NoError(t, err)
	assert.False(t, claimed, "already inside")

	require.NoError(t, repo.SetGeofenceState(ctx, "phone-1", false))

	claimed, err = repo.ClaimEntryAlert(ctx, "phone-1", now.Add(cooldown-time.Second), cooldown)
	require.NoError(t, err)
	assert.False(t, claimed, "within cooldown")

	claimed, err = repo.ClaimEntryAlert(ctx, "phone-1", now.Add(cooldown), cooldown)
	require.NoError(t, err)
	assert.True(t, claimed, "cooldown elapsed exactly")

	device, err := repo.FindDeviceByID(ctx, "phone-1")
	require.NoError(t, err)
	require.NotNil(t, device.LastAlertAt)
	assert.True(t, device.LastAlertAt.Equal(now.Add(cooldown)))
}

func TestDeviceRepository_ConcurrentClaimsFireOnce(t *testing.T) {
	db := startPostgres(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1", LastSeen: now})
	require.NoError(t, err)

	const workers = 16
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		claims int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			claimed, err := repo.ClaimEntryAlert(ctx, "phone-1", now, 30*time.Minute)
			assert.NoError(t, err)
			if claimed {
				mu.Lock()
				claims++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, claims)
}

func TestTransactionManager_RollbackDiscardsWrites(t *testing.T) {
	db := startPostgres(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	now := time.Now().UTC()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewDeviceRepository().UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1", LastSeen: now}); err != nil {
			return err
		}
		if err := factory.NewLocationRepository().AppendLocation(ctx, &entity.LocationRecord{
			DeviceID:  "phone-1",
			Latitude:  25.03,
			Longitude: 121.56,
			Timestamp: now,
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewDeviceRepository(db).FindDeviceByID(ctx, "phone-1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	records, err := NewLocationRepository(db).FindRecentByDevice(ctx, "phone-1", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAlertRepository_CreateAndUpdateDelivery(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err := NewDeviceRepository(db).UpsertDevice(ctx, &entity.DeviceProfile{DeviceID: "phone-1", DeviceName: "Van 1", LastSeen: now})
	require.NoError(t, err)

	alerts := NewAlertRepository(db)
	alert := &entity.Alert{
		DeviceID:             "phone-1",
		DeviceName:           "Van 1",
		Latitude:             25.03,
		Longitude:            121.56,
		DistanceFromCenterKm: 1.2,
		Timestamp:            now,
	}
	require.NoError(t, alerts.CreateAlert(ctx, alert))
	require.NoError(t, alerts.UpdateDeliveryStatus(ctx, alert.ID, false, true))

	recent, err := alerts.FindRecentAlerts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, alert.ID, recent[0].ID)
	assert.False(t, recent[0].EmailSent)
	assert.True(t, recent[0].PushSent)
}
