package http

import (
	"context"
	"log/slog"
	"time"

	"post-scheduler/pkg/config"
)

// DefaultCleanupInterval is the default cleanup interval if not specified.
const DefaultCleanupInterval = 5 * time.Minute

// CleanupConfig holds configuration for rate limit cleanup.
type CleanupConfig struct {
	// Interval specifies how often to run cleanup.
	// Default: 5 minutes
	Interval time.Duration
}

// LoadCleanupConfigFromEnv loads cleanup configuration from environment variables.
//
// Environment variables:
//   - RATELIMIT_CLEANUP_INTERVAL: Cleanup interval (e.g., "5m", "10m")
//     Default: 5 minutes
//
// If parsing fails or values are invalid, defaults are used instead of failing.
func LoadCleanupConfigFromEnv() CleanupConfig {
	return CleanupConfig{
		Interval: config.GetEnvDuration("RATELIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
	}
}

// StartRateLimitCleanup runs a loop that periodically removes expired
// entries from the rate limiter so per-IP records do not accumulate
// indefinitely. It stops when the context is cancelled (e.g., during
// server shutdown).
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return

		case <-ticker.C:
			limiter.CleanupExpired()
			slog.Debug("rate limit cleanup completed")
		}
	}
}
