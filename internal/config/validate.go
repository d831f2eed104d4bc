package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("auth.access_ttl must be positive (got %s)", c.Auth.AccessTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Tracking.validate(); err != nil {
		return fmt.Errorf("tracking: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (t *TrackingConfig) validate() error {
	if t.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", t.MaxLimit)
	}
	if t.DefaultLimit <= 0 || t.DefaultLimit > t.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..%d (got %d)", t.MaxLimit, t.DefaultLimit)
	}
	if t.MaxDescription <= 0 {
		return fmt.Errorf("max_description must be > 0 (got %d)", t.MaxDescription)
	}
	return nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
