package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

// Config holds runtime configuration values for the Pellerex site server.
type Config struct {
	ServerPort     int
	LogLevel       string
	SentryDSN      string
	Environment    string
	SiteConfigPath string
	ShutdownGrace  time.Duration
	RateLimit      RateLimitConfig
}

// RateLimitConfig controls the per-client token bucket applied to HTTP requests.
type RateLimitConfig struct {
	Burst             int
	RequestsPerSecond float64
	ClientTTL         time.Duration
}

const (
	defaultServerPort      = 8080
	defaultLogLevel        = "info"
	defaultEnvironment     = "development"
	defaultSiteConfigPath  = "./config.json"
	defaultShutdownGrace   = 10 * time.Second
	defaultRateLimitBurst  = 20
	defaultRateLimitRPS    = 10
	defaultRateLimitClient = 5 * time.Minute
)

// Load reads configuration values from environment variables, applying defaults where necessary.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", defaultLogLevel),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		Environment:    getEnv("ENV", defaultEnvironment),
		SiteConfigPath: getEnv("SEO_CONFIG_PATH", defaultSiteConfigPath),
		ShutdownGrace:  defaultShutdownGrace,
	}

	portValue := getEnv("SERVER_PORT", strconv.Itoa(defaultServerPort))
	port, err := strconv.Atoi(portValue)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid SERVER_PORT value: %s", portValue)
	}
	cfg.ServerPort = port

	burstValue := getEnv("RATE_LIMIT_BURST", strconv.Itoa(defaultRateLimitBurst))
	burst, err := strconv.Atoi(burstValue)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid RATE_LIMIT_BURST value: %s", burstValue)
	}

	rpsValue := getEnv("RATE_LIMIT_RPS", strconv.Itoa(defaultRateLimitRPS))
	rps, err := strconv.ParseFloat(rpsValue, 64)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid RATE_LIMIT_RPS value: %s", rpsValue)
	}

	ttlValue := getEnv("RATE_LIMIT_CLIENT_TTL", defaultRateLimitClient.String())
	ttl, err := time.ParseDuration(ttlValue)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid RATE_LIMIT_CLIENT_TTL value: %s", ttlValue)
	}

	cfg.RateLimit = RateLimitConfig{
		Burst:             burst,
		RequestsPerSecond: rps,
		ClientTTL:         ttl,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
