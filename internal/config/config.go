package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/storage/es"
	"github.com/nusarithm/news-gateway/pkg/config/env"
)

// Config is the full process configuration, loaded from the environment.
type Config struct {
	ES es.ClientConfig

	Port        string
	ProxySecret string

	RateLimits domain.Quotas
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Every field has a working default so a bare `go run` against a
// local cluster comes up without any setup.
func Load() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), ".env"); err != nil {
		slog.Info("Skipping .env, continuing with process environment", "error", err)
	}

	addresses := splitAddresses(getEnv("ES_HOST", "https://local-es.nusarithm.id"))

	return &Config{
		ES: es.ClientConfig{
			Addresses:    addresses,
			IndexPattern: getEnv("ES_INDEX_PATTERN", "online-news-*"),
			Username:     getEnv("ES_USERNAME", "elastic"),
			Password:     os.Getenv("ES_PASSWORD"),
		},
		Port:        getEnv("PORT", "3000"),
		ProxySecret: os.Getenv("RAPIDAPI_PROXY_SECRET"),
		RateLimits: domain.Quotas{
			Basic: getEnvInt("RATE_LIMIT_BASIC", 5),
			Pro:   getEnvInt("RATE_LIMIT_PRO", 100),
			Ultra: getEnvInt("RATE_LIMIT_ULTRA", 1000),
			Mega:  getEnvInt("RATE_LIMIT_MEGA", 10000),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-numeric env value", "key", key, "value", v)
		return fallback
	}
	return n
}

func splitAddresses(raw string) []string {
	parts := strings.Split(raw, ",")
	addresses := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			addresses = append(addresses, trimmed)
		}
	}
	return addresses
}
