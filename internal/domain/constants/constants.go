package constants

import "time"

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in published message attributes
const (
	EventTypeGeofenceAlert = "geofence.alert"
)

// Cache keys
const (
	CacheKeyDashboard = "locust:dashboard"
)

// FallbackQueryTimeout bounds store calls when no query timeout is configured
const FallbackQueryTimeout = 5 * time.Second

// Query limits
const (
	RecentAlertsLimit = 50
	DefaultTrackLimit = 500
	MaxTrackLimit     = 5000
)
