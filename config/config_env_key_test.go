package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"ingest": map[string]any{
			"apiKey": "",
		},
		"geofence": map[string]any{
			"radiusKm": 10,
		},
		"webPush": map[string]any{
			"privateKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "INGEST_APIKEY", want: "ingest.apiKey"},
		{envKey: "GEOFENCE_RADIUSKM", want: "geofence.radiusKm"},
		{envKey: "WEBPUSH_PRIVATEKEY", want: "webPush.privateKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsGeofenceAndTimeouts(t *testing.T) {
	cfg := &Config{
		WebPush: &WebPushConfig{},
		Redis:   &RedisConfig{URL: "redis://localhost:6379/0"},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultGeofenceName, cfg.Geofence.Name)
	assert.InDelta(t, defaultGeofenceCenterLat, cfg.Geofence.CenterLat, 1e-9)
	assert.InDelta(t, defaultGeofenceCenterLng, cfg.Geofence.CenterLng, 1e-9)
	assert.InDelta(t, 10.0, cfg.Geofence.RadiusKm, 1e-9)
	assert.Equal(t, 30*time.Minute, cfg.Geofence.Cooldown)
	assert.Equal(t, defaultNotificationTimeout, cfg.Notification.Timeout)
	assert.Equal(t, defaultQueryTimeout, cfg.Database.QueryTimeout)
	assert.Equal(t, defaultWebPushTTL, cfg.WebPush.TTL)
	assert.Equal(t, defaultDashboardCacheTTL, cfg.Redis.DashboardTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Empty(t, cfg.Ingest.APIKey)
}

func TestApplyDefaults_KeepsConfiguredGeofence(t *testing.T) {
	cfg := &Config{}
	cfg.Geofence = GeofenceConfig{
		Name:      "Depot",
		CenterLat: 25.033,
		CenterLng: 121.5654,
		RadiusKm:  2.5,
		Cooldown:  5 * time.Minute,
	}

	applyDefaults(cfg)

	assert.Equal(t, "Depot", cfg.Geofence.Name)
	assert.InDelta(t, 25.033, cfg.Geofence.CenterLat, 1e-9)
	assert.InDelta(t, 2.5, cfg.Geofence.RadiusKm, 1e-9)
	assert.Equal(t, 5*time.Minute, cfg.Geofence.Cooldown)
}

func TestNew_IngestAPIKeyFallsBackToLegacyVariable(t *testing.T) {
	t.Setenv("INGEST_APIKEY", "")
	t.Setenv(envIngestAPIKey, "legacy-key")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.Ingest.APIKey)
}

func TestNew_IngestAPIKeyPrefersCanonicalVariable(t *testing.T) {
	t.Setenv("INGEST_APIKEY", "canonical-key")
	t.Setenv(envIngestAPIKey, "legacy-key")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "canonical-key", cfg.Ingest.APIKey)
}
