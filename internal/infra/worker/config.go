package worker

import (
	"fmt"
	"log/slog"
	"time"

	"post-scheduler/internal/pkg/config"
)

// WorkerConfig holds the configuration for the dispatch worker.
// This configuration controls the dispatch cadence, timezone, concurrency
// limits, and other operational parameters for the worker service.
//
// Configuration sources:
//   - Environment variables (loaded via LoadConfigFromEnv)
//   - Default values (provided by DefaultConfig)
//
// All fields have sensible defaults and validation rules so the worker can
// operate safely even with invalid or missing configuration.
type WorkerConfig struct {
	// CronSchedule is the cron expression for the dispatch cycle.
	// Accepts standard 5-field expressions and descriptors like "@every 30s".
	// Default: "@every 30s"
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Example: "Asia/Tokyo", "UTC", "America/New_York"
	// Default: "UTC"
	Timezone string

	// DispatchMaxConcurrent is the maximum number of scheduled items
	// published concurrently within a single dispatch cycle.
	// Range: 1-50
	// Default: 5
	DispatchMaxConcurrent int

	// DispatchTimeout is the maximum duration for a single dispatch cycle.
	// After this timeout, the cycle is cancelled; in-flight items finish
	// their current publish attempt.
	// Default: 5 minutes
	DispatchTimeout time.Duration

	// HealthPort is the port number for the health check HTTP server.
	// Range: 1024-65535 (avoid privileged ports)
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns a WorkerConfig with sensible default values.
//
// The 30-second cadence keeps publish latency well under the one-minute
// granularity of scheduled times, and the 5-minute cycle timeout prevents
// a stuck external API from blocking subsequent cycles indefinitely.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:          "@every 30s",
		Timezone:              "UTC",
		DispatchMaxConcurrent: 5,
		DispatchTimeout:       5 * time.Minute,
		HealthPort:            9091,
	}
}

// Validate checks if the configuration values are valid.
// If multiple fields are invalid, all errors are collected and returned together.
//
// Validation rules:
//   - CronSchedule: Must be a valid cron expression or descriptor
//   - Timezone: Must be a valid IANA timezone name
//   - DispatchMaxConcurrent: Must be between 1 and 50 (inclusive)
//   - DispatchTimeout: Must be positive (> 0)
//   - HealthPort: Must be between 1024 and 65535
func (c *WorkerConfig) Validate() error {
	var errors []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errors = append(errors, fmt.Errorf("cron schedule: %w", err))
	}

	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errors = append(errors, fmt.Errorf("timezone: %w", err))
	}

	if err := config.ValidateIntRange(c.DispatchMaxConcurrent, 1, 50); err != nil {
		errors = append(errors, fmt.Errorf("dispatch max concurrent: %w", err))
	}

	if err := config.ValidatePositiveDuration(c.DispatchTimeout); err != nil {
		errors = append(errors, fmt.Errorf("dispatch timeout: %w", err))
	}

	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errors = append(errors, fmt.Errorf("health port: %w", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation failed: %v", errors)
	}

	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with validation and automatic fallback to default values on failure.
//
// This function implements the fail-open strategy:
//  1. Start with DefaultConfig() as base
//  2. Load each field from environment variables
//  3. Validate each loaded value
//  4. If validation fails: use default value, log warning, increment metrics
//  5. Never return error - always return a valid configuration
//
// Environment variables:
//   - DISPATCH_CRON_SCHEDULE: Cron expression or descriptor (default: "@every 30s")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - DISPATCH_MAX_CONCURRENT: Integer 1-50 (default: 5)
//   - DISPATCH_TIMEOUT: Duration string, e.g., "5m" (default: 5 minutes)
//   - WORKER_HEALTH_PORT: Integer 1024-65535 (default: 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	// Start with default config
	cfg := DefaultConfig()
	fallbackApplied := false

	result := config.LoadEnvWithFallback("DISPATCH_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("cron_schedule")
		metrics.RecordFallback("cron_schedule", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "CronSchedule"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("timezone")
		metrics.RecordFallback("timezone", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "Timezone"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvInt("DISPATCH_MAX_CONCURRENT", cfg.DispatchMaxConcurrent, func(v int) error {
		return config.ValidateIntRange(v, 1, 50)
	})
	cfg.DispatchMaxConcurrent = result.Value.(int)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("dispatch_max_concurrent")
		metrics.RecordFallback("dispatch_max_concurrent", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "DispatchMaxConcurrent"),
				slog.String("warning", warning))
		}
	}

	// Load DispatchTimeout (with 10s-1h range limit)
	result = config.LoadEnvDuration("DISPATCH_TIMEOUT", cfg.DispatchTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 10*time.Second, 1*time.Hour)
	})
	cfg.DispatchTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("dispatch_timeout")
		metrics.RecordFallback("dispatch_timeout", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "DispatchTimeout"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("health_port")
		metrics.RecordFallback("health_port", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "HealthPort"),
				slog.String("warning", warning))
		}
	}

	// Update metrics
	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	// Always return valid config (fail-open strategy)
	return &cfg, nil
}
