// Package config loads application-level configuration files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "post-scheduler/pkg/config"
)

// Duration wraps time.Duration so policy files can use human-readable
// values like "30m" or "1h".
type Duration time.Duration

// UnmarshalYAML parses a duration string such as "30m" or "24h".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// PolicyConfig represents the scheduling policy configuration.
// It controls the slot allocator, the retry schedule for failed publishes,
// and the outgoing publisher rate limit.
type PolicyConfig struct {
	Scheduling struct {
		// CollisionWindow is the half-width of the exclusion zone around
		// existing scheduled times on the same page.
		CollisionWindow Duration `yaml:"collision_window"`
		// LookAhead bounds how far into the future the allocator searches
		// for a free slot.
		LookAhead Duration `yaml:"look_ahead"`
		// Timezone is the IANA name slot times are interpreted in.
		Timezone string `yaml:"timezone"`
	} `yaml:"scheduling"`

	Retry struct {
		BaseDelay  Duration `yaml:"base_delay"`
		MaxDelay   Duration `yaml:"max_delay"`
		MaxRetries int      `yaml:"max_retries"`
	} `yaml:"retry"`

	Publisher struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"publisher"`
}

// DefaultPolicyConfig returns the policy used when no file is configured.
func DefaultPolicyConfig() *PolicyConfig {
	cfg := &PolicyConfig{}
	cfg.Scheduling.CollisionWindow = Duration(30 * time.Minute)
	cfg.Scheduling.LookAhead = Duration(14 * 24 * time.Hour)
	cfg.Scheduling.Timezone = "UTC"
	cfg.Retry.BaseDelay = Duration(1 * time.Minute)
	cfg.Retry.MaxDelay = Duration(1 * time.Hour)
	cfg.Retry.MaxRetries = 3
	cfg.Publisher.RequestsPerSecond = 5
	cfg.Publisher.Burst = 10
	return cfg
}

// LoadPolicyConfig loads the scheduling policy from a YAML file.
// The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func LoadPolicyConfig(path string) (*PolicyConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	config := DefaultPolicyConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	if err := validatePolicyConfig(config); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}

	return config, nil
}

// LoadPolicyFromEnv loads the policy file named by SCHEDULING_POLICY_FILE,
// falling back to defaults when the variable is unset.
func LoadPolicyFromEnv() (*PolicyConfig, error) {
	path := os.Getenv("SCHEDULING_POLICY_FILE")
	if path == "" {
		return DefaultPolicyConfig(), nil
	}
	return LoadPolicyConfig(path)
}

// validatePolicyConfig validates the loaded configuration.
func validatePolicyConfig(config *PolicyConfig) error {
	if err := pkgconfig.ValidatePositiveDuration(config.Scheduling.CollisionWindow.Std()); err != nil {
		return fmt.Errorf("collision_window: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(config.Scheduling.LookAhead.Std()); err != nil {
		return fmt.Errorf("look_ahead: %w", err)
	}
	if config.Scheduling.LookAhead.Std() < config.Scheduling.CollisionWindow.Std() {
		return fmt.Errorf("look_ahead must not be shorter than collision_window")
	}
	if _, err := time.LoadLocation(config.Scheduling.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", config.Scheduling.Timezone, err)
	}
	if err := pkgconfig.ValidatePositiveDuration(config.Retry.BaseDelay.Std()); err != nil {
		return fmt.Errorf("retry base_delay: %w", err)
	}
	if config.Retry.MaxDelay.Std() < config.Retry.BaseDelay.Std() {
		return fmt.Errorf("retry max_delay must not be shorter than base_delay")
	}
	if config.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry max_retries must not be negative")
	}
	if config.Publisher.RequestsPerSecond <= 0 {
		return fmt.Errorf("publisher requests_per_second must be positive")
	}
	if config.Publisher.Burst <= 0 {
		return fmt.Errorf("publisher burst must be positive")
	}
	return nil
}

// Location returns the configured timezone. Validation guarantees the name
// loads, so errors only occur for configs that bypassed LoadPolicyConfig.
func (c *PolicyConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Scheduling.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
