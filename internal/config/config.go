package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// BoundingBox is the country bounding box coordinates must fall into before
// resolution is attempted.
type BoundingBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Contains reports whether the point lies inside the box (inclusive).
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// ChannelRoute is one configured notification target for a tier.
type ChannelRoute struct {
	Channel   string
	Recipient string
}

// Config holds the application configuration.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Pipeline Config
	CycleInterval    time.Duration
	WorkerCount      int
	ResolveBatchSize int

	// Geo Config
	BoundingBox            BoundingBox
	FallbackEnabled        bool
	ResolutionSuccessFloor float64
	ResolutionWindow       time.Duration

	// Clustering Config
	EpsByLevel      map[models.ZoneLevel]float64
	MinPoints       int
	ClusterWindow   time.Duration
	RecencyHalfLife time.Duration

	// Forecast Config
	ForecastHorizon   time.Duration
	MinHistoryBuckets int
	HistoryWindow     time.Duration

	// Escalation Config
	TierThresholds map[models.Tier]float64
	Cooldown       time.Duration
	ChannelsByTier map[models.Tier][]ChannelRoute

	// Webhook channel Config
	WebhookURL        string
	WebhookSecret     string
	WebhookTimeout    time.Duration
	WebhookMaxRetries int
	WebhookBaseDelay  time.Duration

	// API Keys for authentication
	APIKeys []string
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		CycleInterval:    getEnvAsDuration("CYCLE_INTERVAL", 12*time.Hour),
		WorkerCount:      getEnvAsInt("WORKER_COUNT", 4),
		ResolveBatchSize: getEnvAsInt("RESOLVE_BATCH_SIZE", 500),

		// Defaults cover the Kuwait territory.
		BoundingBox: BoundingBox{
			MinLat: getEnvAsFloat("GEO_BBOX_MIN_LAT", 28.5),
			MinLon: getEnvAsFloat("GEO_BBOX_MIN_LON", 46.5),
			MaxLat: getEnvAsFloat("GEO_BBOX_MAX_LAT", 30.1),
			MaxLon: getEnvAsFloat("GEO_BBOX_MAX_LON", 48.5),
		},
		FallbackEnabled:        getEnvAsBool("GEO_FALLBACK_ENABLED", true),
		ResolutionSuccessFloor: getEnvAsFloat("RESOLUTION_SUCCESS_FLOOR", 0.8),
		ResolutionWindow:       getEnvAsDuration("RESOLUTION_WINDOW", 24*time.Hour),

		// eps is in coordinate degrees, tighter for finer levels.
		EpsByLevel: map[models.ZoneLevel]float64{
			models.LevelGovernorate: getEnvAsFloat("CLUSTER_EPS_GOVERNORATE", 0.02),
			models.LevelDistrict:    getEnvAsFloat("CLUSTER_EPS_DISTRICT", 0.008),
			models.LevelBlock:       getEnvAsFloat("CLUSTER_EPS_BLOCK", 0.003),
		},
		MinPoints:       getEnvAsInt("CLUSTER_MIN_POINTS", 5),
		ClusterWindow:   getEnvAsDuration("CLUSTER_WINDOW", 720*time.Hour),
		RecencyHalfLife: getEnvAsDuration("CLUSTER_RECENCY_HALF_LIFE", 168*time.Hour),

		ForecastHorizon:   getEnvAsDuration("FORECAST_HORIZON", 24*time.Hour),
		MinHistoryBuckets: getEnvAsInt("FORECAST_MIN_HISTORY_BUCKETS", 48),
		HistoryWindow:     getEnvAsDuration("FORECAST_HISTORY_WINDOW", 2160*time.Hour),

		TierThresholds: map[models.Tier]float64{
			models.TierLow:      getEnvAsFloat("TIER_THRESHOLD_LOW", 3),
			models.TierMedium:   getEnvAsFloat("TIER_THRESHOLD_MEDIUM", 5),
			models.TierHigh:     getEnvAsFloat("TIER_THRESHOLD_HIGH", 10),
			models.TierCritical: getEnvAsFloat("TIER_THRESHOLD_CRITICAL", 20),
		},
		Cooldown: getEnvAsDuration("ESCALATION_COOLDOWN", 6*time.Hour),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	cfg.ChannelsByTier = loadChannelRoutes()

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

var defaultRoutes = map[models.Tier]string{
	models.TierLow:      "opsfeed:zone-analyst",
	models.TierMedium:   "webhook:zone-analyst",
	models.TierHigh:     "webhook:duty-officer",
	models.TierCritical: "webhook:ops-room",
}

// loadChannelRoutes parses CHANNELS_<TIER> variables. The format is a comma
// separated list of channel:recipient pairs, e.g.
// CHANNELS_CRITICAL="webhook:ops-room,opsfeed:dispatch".
// Each tier inherits the routes of every lower tier, so a critical alert also
// reaches the analyst channels.
func loadChannelRoutes() map[models.Tier][]ChannelRoute {
	routes := make(map[models.Tier][]ChannelRoute)
	var inherited []ChannelRoute
	for _, tier := range models.Tiers() {
		key := "CHANNELS_" + strings.ToUpper(string(tier))
		raw := getEnv(key, defaultRoutes[tier])
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			channel, recipient, found := strings.Cut(part, ":")
			if !found {
				continue
			}
			inherited = append(inherited, ChannelRoute{Channel: channel, Recipient: recipient})
		}
		routes[tier] = append([]ChannelRoute(nil), inherited...)
	}
	return routes
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the value of an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns the value of an environment variable as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool returns the value of an environment variable as bool or a default.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the value of an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
