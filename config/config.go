package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	envIngestAPIKey           = "LOCUST_INGEST_API_KEY"

	defaultGeofenceName      = "Cosmos Greens, Bhiwadi"
	defaultGeofenceCenterLat = 28.2036569
	defaultGeofenceCenterLng = 76.8400441
	defaultGeofenceRadiusKm  = 10.0
	defaultAlertCooldown     = 30 * time.Minute

	defaultQueryTimeout        = 5 * time.Second
	defaultNotificationTimeout = 10 * time.Second
	defaultWebPushTTL          = 60
	defaultDashboardCacheTTL   = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database bounds every store and cache round trip made by the use cases
	Database DatabaseConfig `json:"database" yaml:"database"`

	// Ingest configuration for the device fix endpoint
	Ingest IngestConfig `json:"ingest" yaml:"ingest"`

	// Geofence is the single process-wide entry boundary
	Geofence GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Notification holds settings shared by every alert channel
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// SMTP configuration for alert emails
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// WebPush configuration for browser push (VAPID)
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// Firebase configuration for mirroring alerts to an FCM topic
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the dashboard snapshot cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for device enrollment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IngestConfig defines the shared secret devices present on every fix
type IngestConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// DatabaseConfig defines the deadline applied to each transaction or query
type DatabaseConfig struct {
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// GeofenceConfig defines the circular entry boundary and alert cooldown
type GeofenceConfig struct {
	Name      string        `json:"name" yaml:"name"`
	CenterLat float64       `json:"centerLat" yaml:"centerLat"`
	CenterLng float64       `json:"centerLng" yaml:"centerLng"`
	RadiusKm  float64       `json:"radiusKm" yaml:"radiusKm"`
	Cooldown  time.Duration `json:"cooldown" yaml:"cooldown"`
}

// NotificationConfig defines delivery limits applied to each channel attempt
type NotificationConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SMTPConfig defines the mail relay and the single alert recipient
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	UseTLS   bool   `json:"useTls" yaml:"useTls"`
}

// WebPushConfig defines the VAPID identity used for browser push
type WebPushConfig struct {
	Subject    string `json:"subject" yaml:"subject"`
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
	TTL        int    `json:"ttl" yaml:"ttl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Topic           string `json:"topic" yaml:"topic"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RedisConfig defines the optional dashboard cache backend
type RedisConfig struct {
	URL          string        `json:"url" yaml:"url"`
	DashboardTTL time.Duration `json:"dashboardTtl" yaml:"dashboardTtl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEOFENCE_RADIUSKM -> geofence.radiusKm (not geofence.radiuskm)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Deployments of the tracker configure the key under its historical name.
	if cfg.Ingest.APIKey == "" {
		cfg.Ingest.APIKey = os.Getenv(envIngestAPIKey)
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values that the service cannot run without.
// The ingest API key has no default; a missing key is reported per request.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Geofence.Name) == "" {
		cfg.Geofence.Name = defaultGeofenceName
		cfg.Geofence.CenterLat = defaultGeofenceCenterLat
		cfg.Geofence.CenterLng = defaultGeofenceCenterLng
	}
	if cfg.Geofence.RadiusKm <= 0 {
		cfg.Geofence.RadiusKm = defaultGeofenceRadiusKm
	}
	if cfg.Geofence.Cooldown <= 0 {
		cfg.Geofence.Cooldown = defaultAlertCooldown
	}

	if cfg.Database.QueryTimeout <= 0 {
		cfg.Database.QueryTimeout = defaultQueryTimeout
	}

	if cfg.Notification.Timeout <= 0 {
		cfg.Notification.Timeout = defaultNotificationTimeout
	}

	if cfg.WebPush != nil && cfg.WebPush.TTL <= 0 {
		cfg.WebPush.TTL = defaultWebPushTTL
	}

	if cfg.Redis != nil && cfg.Redis.DashboardTTL <= 0 {
		cfg.Redis.DashboardTTL = defaultDashboardCacheTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
