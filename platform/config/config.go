// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// ListingsAPIConfig provides settings for the external listings collaborator.
type ListingsAPIConfig interface {
	GetListingsAPIURL() string
	GetFetchTimeout() time.Duration
}

// HostsAPIConfig provides settings for the host autocomplete collaborator.
type HostsAPIConfig interface {
	GetHostsAPIURL() string
	GetFetchTimeout() time.Duration
	GetHostSearchDebounce() time.Duration
}

// HistoryConfig provides settings for the persisted search history.
type HistoryConfig interface {
	GetRedisURL() string
	GetHistoryLimit() int
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// PaginationConfig provides default page sizes per surface.
type PaginationConfig interface {
	GetSearchPageSize() int
	GetMyCarsPageSize() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	ListingsAPIURL     string
	HostsAPIURL        string
	JWTAccessSecret    string
	FetchTimeout       time.Duration
	HostSearchDebounce time.Duration
	RedisURL           string
	HistoryLimit       int
	SearchPageSize     int
	MyCarsPageSize     int
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
}

// =============================================================================
// Interface Implementations
// =============================================================================

// ListingsAPIConfig implementation
func (c *Config) GetListingsAPIURL() string      { return c.ListingsAPIURL }
func (c *Config) GetFetchTimeout() time.Duration { return c.FetchTimeout }

// HostsAPIConfig implementation
func (c *Config) GetHostsAPIURL() string               { return c.HostsAPIURL }
func (c *Config) GetHostSearchDebounce() time.Duration { return c.HostSearchDebounce }

// HistoryConfig implementation
func (c *Config) GetRedisURL() string  { return c.RedisURL }
func (c *Config) GetHistoryLimit() int { return c.HistoryLimit }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// PaginationConfig implementation
func (c *Config) GetSearchPageSize() int { return c.SearchPageSize }
func (c *Config) GetMyCarsPageSize() int { return c.MyCarsPageSize }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ListingsAPIURL:     getEnv("LISTINGS_API_URL", "http://localhost:5000/api"),
		HostsAPIURL:        getEnv("HOSTS_API_URL", ""),
		JWTAccessSecret:    getEnv("JWT_ACCESS_SECRET", ""),
		FetchTimeout:       mustDuration(getEnv("FETCH_TIMEOUT", "10s")),
		HostSearchDebounce: mustDuration(getEnv("HOST_SEARCH_DEBOUNCE", "300ms")),
		RedisURL:           getEnv("REDIS_URL", ""),
		HistoryLimit:       mustInt(getEnv("SEARCH_HISTORY_LIMIT", "10")),
		SearchPageSize:     mustInt(getEnv("SEARCH_PAGE_SIZE", "10")),
		MyCarsPageSize:     mustInt(getEnv("MY_CARS_PAGE_SIZE", "4")),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
	}

	if cfg.HostsAPIURL == "" {
		cfg.HostsAPIURL = cfg.ListingsAPIURL
	}

	if cfg.ListingsAPIURL == "" {
		return nil, fmt.Errorf("LISTINGS_API_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be a positive duration")
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("SEARCH_HISTORY_LIMIT must be positive")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
