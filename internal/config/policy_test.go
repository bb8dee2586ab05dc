package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}
	return path
}

func TestDefaultPolicyConfig(t *testing.T) {
	cfg := DefaultPolicyConfig()

	if got := cfg.Scheduling.CollisionWindow.Std(); got != 30*time.Minute {
		t.Errorf("CollisionWindow = %v, want 30m", got)
	}
	if got := cfg.Scheduling.LookAhead.Std(); got != 14*24*time.Hour {
		t.Errorf("LookAhead = %v, want 336h", got)
	}
	if cfg.Scheduling.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Scheduling.Timezone)
	}
	if got := cfg.Retry.BaseDelay.Std(); got != time.Minute {
		t.Errorf("BaseDelay = %v, want 1m", got)
	}
	if got := cfg.Retry.MaxDelay.Std(); got != time.Hour {
		t.Errorf("MaxDelay = %v, want 1h", got)
	}
	if cfg.Retry.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.Retry.MaxRetries)
	}

	// Defaults must validate
	if err := validatePolicyConfig(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadPolicyConfig(t *testing.T) {
	path := writePolicyFile(t, `
scheduling:
  collision_window: "15m"
  look_ahead: "168h"
  timezone: "Asia/Tokyo"
retry:
  base_delay: "30s"
  max_delay: "30m"
  max_retries: 5
publisher:
  requests_per_second: 2.5
  burst: 4
`)

	cfg, err := LoadPolicyConfig(path)
	if err != nil {
		t.Fatalf("LoadPolicyConfig() error = %v", err)
	}

	if got := cfg.Scheduling.CollisionWindow.Std(); got != 15*time.Minute {
		t.Errorf("CollisionWindow = %v, want 15m", got)
	}
	if got := cfg.Scheduling.LookAhead.Std(); got != 168*time.Hour {
		t.Errorf("LookAhead = %v, want 168h", got)
	}
	if cfg.Scheduling.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q, want Asia/Tokyo", cfg.Scheduling.Timezone)
	}
	if got := cfg.Retry.BaseDelay.Std(); got != 30*time.Second {
		t.Errorf("BaseDelay = %v, want 30s", got)
	}
	if cfg.Retry.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.Retry.MaxRetries)
	}
	if cfg.Publisher.RequestsPerSecond != 2.5 {
		t.Errorf("RequestsPerSecond = %v, want 2.5", cfg.Publisher.RequestsPerSecond)
	}
	if loc := cfg.Location(); loc.String() != "Asia/Tokyo" {
		t.Errorf("Location() = %v, want Asia/Tokyo", loc)
	}
}

func TestLoadPolicyConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writePolicyFile(t, `
scheduling:
  collision_window: "45m"
`)

	cfg, err := LoadPolicyConfig(path)
	if err != nil {
		t.Fatalf("LoadPolicyConfig() error = %v", err)
	}

	if got := cfg.Scheduling.CollisionWindow.Std(); got != 45*time.Minute {
		t.Errorf("CollisionWindow = %v, want 45m", got)
	}
	// Unspecified fields keep their defaults
	if got := cfg.Retry.MaxDelay.Std(); got != time.Hour {
		t.Errorf("MaxDelay = %v, want default 1h", got)
	}
	if cfg.Publisher.Burst != 10 {
		t.Errorf("Burst = %d, want default 10", cfg.Publisher.Burst)
	}
}

func TestLoadPolicyConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "negative collision window",
			content: `
scheduling:
  collision_window: "-10m"
`,
		},
		{
			name: "look ahead shorter than collision window",
			content: `
scheduling:
  collision_window: "2h"
  look_ahead: "1h"
`,
		},
		{
			name: "bad timezone",
			content: `
scheduling:
  timezone: "Mars/Olympus"
`,
		},
		{
			name: "max delay shorter than base delay",
			content: `
retry:
  base_delay: "10m"
  max_delay: "1m"
`,
		},
		{
			name: "negative max retries",
			content: `
retry:
  max_retries: -1
`,
		},
		{
			name: "malformed duration",
			content: `
scheduling:
  collision_window: "thirty minutes"
`,
		},
		{
			name:    "not yaml",
			content: `{{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePolicyFile(t, tt.content)
			if _, err := LoadPolicyConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadPolicyConfig_MissingFile(t *testing.T) {
	if _, err := LoadPolicyConfig("/nonexistent/policy.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPolicyFromEnv(t *testing.T) {
	t.Run("unset falls back to defaults", func(t *testing.T) {
		t.Setenv("SCHEDULING_POLICY_FILE", "")
		cfg, err := LoadPolicyFromEnv()
		if err != nil {
			t.Fatalf("LoadPolicyFromEnv() error = %v", err)
		}
		if got := cfg.Scheduling.CollisionWindow.Std(); got != 30*time.Minute {
			t.Errorf("CollisionWindow = %v, want default 30m", got)
		}
	})

	t.Run("set loads the file", func(t *testing.T) {
		path := writePolicyFile(t, `
retry:
  max_retries: 7
`)
		t.Setenv("SCHEDULING_POLICY_FILE", path)
		cfg, err := LoadPolicyFromEnv()
		if err != nil {
			t.Fatalf("LoadPolicyFromEnv() error = %v", err)
		}
		if cfg.Retry.MaxRetries != 7 {
			t.Errorf("MaxRetries = %d, want 7", cfg.Retry.MaxRetries)
		}
	})
}
