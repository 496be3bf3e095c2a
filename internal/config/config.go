package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultEnv              = "development"
	defaultHTTPHost         = "0.0.0.0"
	defaultHTTPPort         = 8080
	defaultProviderBaseURL  = "https://api.marketfeed.dev/v1"
	defaultProviderRPS      = 10
	defaultProviderTimeout  = 30
	defaultRedisDB          = 0
	defaultCacheTTLSeconds  = 3600
	defaultResponseCacheTTL = 60
	defaultPeriods          = 3
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env       string
	HTTP      HTTPConfig
	Provider  ProviderConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Dashboard DashboardConfig
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// ProviderConfig stores market-data provider connection parameters.
type ProviderConfig struct {
	BaseURL        string
	APIKey         string
	RequestsPerSec int
	TimeoutSeconds int
}

// RedisConfig stores Redis connection parameters. An empty Addr disables
// the HTTP response cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig stores cache behavior. TTLSeconds windows the statement
// cache; ResponseTTLSeconds windows the Redis GET response cache.
type CacheConfig struct {
	TTLSeconds         int
	ResponseTTLSeconds int
}

// DashboardConfig stores presentation defaults.
type DashboardConfig struct {
	DefaultPeriods int
}

// Load builds Config from environment variables.
func Load() (*Config, error) {
	host := getString("HTTP_HOST", defaultHTTPHost)
	port, err := getInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_PORT: %w", err)
	}

	apiKey := os.Getenv("PROVIDER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("PROVIDER_API_KEY is required")
	}

	rps, err := getInt("PROVIDER_RATE_LIMIT", defaultProviderRPS)
	if err != nil {
		return nil, fmt.Errorf("parse PROVIDER_RATE_LIMIT: %w", err)
	}

	providerTimeout, err := getInt("PROVIDER_TIMEOUT_SECONDS", defaultProviderTimeout)
	if err != nil {
		return nil, fmt.Errorf("parse PROVIDER_TIMEOUT_SECONDS: %w", err)
	}

	redisDB, err := getInt("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cacheTTL, err := getInt("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL_SECONDS: %w", err)
	}

	responseTTL, err := getInt("RESPONSE_CACHE_TTL_SECONDS", defaultResponseCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("parse RESPONSE_CACHE_TTL_SECONDS: %w", err)
	}

	periods, err := getInt("DEFAULT_PERIODS", defaultPeriods)
	if err != nil {
		return nil, fmt.Errorf("parse DEFAULT_PERIODS: %w", err)
	}
	if periods < 1 || periods > 5 {
		return nil, fmt.Errorf("DEFAULT_PERIODS must be between 1 and 5, got %d", periods)
	}

	return &Config{
		Env:  getString("APP_ENV", defaultEnv),
		HTTP: HTTPConfig{Host: host, Port: port},
		Provider: ProviderConfig{
			BaseURL:        getString("PROVIDER_BASE_URL", defaultProviderBaseURL),
			APIKey:         apiKey,
			RequestsPerSec: rps,
			TimeoutSeconds: providerTimeout,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			TTLSeconds:         cacheTTL,
			ResponseTTLSeconds: responseTTL,
		},
		Dashboard: DashboardConfig{
			DefaultPeriods: periods,
		},
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}
