package config

import (
	"os"
	"time"
)

// CacheConfig defines settings for the response-cache middleware applied to
// the public hotel routes.  When Enabled is false or no Redis client is
// configured, caching is disabled and requests pass straight through.
type CacheConfig struct {
	Enabled bool          // master switch
	TTL     time.Duration // lifetime of cache entries
	Prefix  string        // key namespace in Redis
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
