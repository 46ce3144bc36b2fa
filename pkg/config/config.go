// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, crawler, and aggregation settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Crawler contains outbound fetching configuration
	Crawler CrawlerConfig

	// Aggregation contains ranking and filtering configuration
	Aggregation AggregationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogFile enables rotating file logging when non-empty
	LogFile string

	// Debug enables debug-level logging
	Debug bool
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// CrawlerConfig holds outbound fetching configuration
type CrawlerConfig struct {
	// TimeoutSeconds bounds a whole adapter fetch
	TimeoutSeconds int

	// SubTimeoutSeconds bounds each sub-request of the multi-query adapter
	SubTimeoutSeconds int

	// Feeds maps a lowercase entity name to its RSS feed URLs
	Feeds map[string][]string
}

// AggregationConfig holds ranking and filtering configuration
type AggregationConfig struct {
	// MaxResults caps the standard response length
	MaxResults int

	// EnterpriseMaxResults caps the enterprise response length
	EnterpriseMaxResults int

	// ImpactThreshold is the default minimum impact score
	ImpactThreshold float64

	// TrustedSources get a credibility boost during ranking
	TrustedSources []string
}

// defaultFeeds lists vendor newsroom feeds for well-known entities
var defaultFeeds = map[string][]string{
	"tesla":     {"https://www.tesla.com/blog/rss"},
	"apple":     {"https://www.apple.com/newsroom/rss-feed.rss"},
	"microsoft": {"https://blogs.microsoft.com/feed/"},
	"google":    {"https://blog.google/rss/"},
	"amazon":    {"https://press.aboutamazon.com/rss/news-releases.xml"},
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8000"),
			LogFile: getEnvOrDefault("LOG_FILE", ""),
			Debug:   getEnvAsBoolOrDefault("DEBUG", false),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Crawler: CrawlerConfig{
			TimeoutSeconds:    getEnvAsIntOrDefault("CRAWLER_TIMEOUT", 30),
			SubTimeoutSeconds: getEnvAsIntOrDefault("CRAWLER_SUB_TIMEOUT", 15),
			Feeds:             defaultFeeds,
		},
		Aggregation: AggregationConfig{
			MaxResults:           getEnvAsIntOrDefault("MAX_RESULTS", 10),
			EnterpriseMaxResults: getEnvAsIntOrDefault("ENTERPRISE_MAX_RESULTS", 12),
			ImpactThreshold:      getEnvAsFloatOrDefault("IMPACT_THRESHOLD", 5.0),
			TrustedSources:       getEnvAsListOrDefault("TRUSTED_SOURCES", []string{"reuters", "bloomberg", "cnbc", "ap", "wsj"}),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns a comma-separated environment variable
// as a slice or a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Crawler.TimeoutSeconds < 1 {
		return errors.New("crawler timeout must be at least 1 second")
	}

	if c.Crawler.SubTimeoutSeconds < 1 {
		return errors.New("crawler sub-timeout must be at least 1 second")
	}

	if c.Aggregation.MaxResults < 1 || c.Aggregation.EnterpriseMaxResults < 1 {
		return errors.New("max results must be at least 1")
	}

	if c.Aggregation.ImpactThreshold < 0 || c.Aggregation.ImpactThreshold > 10 {
		return errors.New("impact threshold must be between 0 and 10")
	}

	return nil
}
