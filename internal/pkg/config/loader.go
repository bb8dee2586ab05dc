package config

import (
	"fmt"
	"os"
	"time"
)

// ConfigLoadResult is the outcome of loading one configuration value. The
// loaders never fail: a value that does not parse or validate is replaced by
// the default, the substitution is flagged, and a warning describes it.
// Startup stays fail-open; the caller decides whether to log or count the
// fallbacks (see ConfigMetrics).
//
// Example:
//
//	result := LoadEnvDuration("DISPATCH_TIMEOUT", 30*time.Second, ValidatePositiveDuration)
//	if result.FallbackApplied {
//	    for _, warning := range result.Warnings {
//	        logger.Warn(warning)
//	    }
//	}
//	timeout := result.Value.(time.Duration)
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvWithFallback loads a string from an environment variable, runs the
// validator when one is given, and falls back to the default on validation
// failure. An unset or empty variable uses the default silently; only an
// invalid explicit value produces a warning.
//
// Example:
//
//	result := LoadEnvWithFallback("DISPATCH_CRON_SCHEDULE", "@every 30s", ValidateCronSchedule)
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	if validator != nil {
		if err := validator(value); err != nil {
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{fallbackWarning(envKey, value, err, defaultValue)},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: value}
}

// LoadEnvDuration loads a time.Duration from an environment variable. The
// value must be a Go duration string ("30s", "5m", "1h30m"); parse errors and
// validator rejections both fall back to the default with a warning.
//
// Example:
//
//	result := LoadEnvDuration("DISPATCH_TIMEOUT", 30*time.Second, ValidatePositiveDuration)
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	parsed, err := time.ParseDuration(valueStr)
	if err != nil {
		return ConfigLoadResult{
			Value:           defaultValue,
			Warnings:        []string{fallbackWarning(envKey, valueStr, err, defaultValue)},
			FallbackApplied: true,
		}
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{fallbackWarning(envKey, valueStr, err, defaultValue)},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: parsed}
}

// LoadEnvInt loads an integer from an environment variable with the same
// fail-open contract as LoadEnvDuration. Used for ports, concurrency limits
// and retry budgets, usually with a range validator.
//
// Example:
//
//	result := LoadEnvInt("DISPATCH_MAX_CONCURRENT", 5, func(v int) error {
//	    return ValidateIntRange(v, 1, 50)
//	})
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsed int
	if _, err := fmt.Sscanf(valueStr, "%d", &parsed); err != nil {
		warning := fmt.Sprintf(
			"Invalid %s='%s': invalid integer format, falling back to default '%d'",
			envKey, valueStr, defaultValue,
		)
		return ConfigLoadResult{
			Value:           defaultValue,
			Warnings:        []string{warning},
			FallbackApplied: true,
		}
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{fallbackWarning(envKey, valueStr, err, defaultValue)},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: parsed}
}

func fallbackWarning(envKey, value string, err error, defaultValue interface{}) string {
	return fmt.Sprintf(
		"Invalid %s='%s': %v, falling back to default '%v'",
		envKey, value, err, defaultValue,
	)
}
