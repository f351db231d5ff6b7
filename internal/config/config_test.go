package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
fetch:
  latency_ms: 250
seed:
  file: "testdata/seed.yaml"
log:
  level: "debug"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fetch.LatencyMS != 250 {
		t.Errorf("fetch.latency_ms = %d, want 250", cfg.Fetch.LatencyMS)
	}
	if got := cfg.Fetch.Latency(); got != 250*time.Millisecond {
		t.Errorf("Latency() = %v, want 250ms", got)
	}
	if cfg.Seed.File != "testdata/seed.yaml" {
		t.Errorf("seed.file = %q, want %q", cfg.Seed.File, "testdata/seed.yaml")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
}

// TestDefaults verifies the built-in defaults used when no file is given.
func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Fetch.LatencyMS != 150 {
		t.Errorf("default latency_ms = %d, want 150", cfg.Fetch.LatencyMS)
	}
	if cfg.Seed.File != "" || cfg.Seed.Demo {
		t.Errorf("default seed = %+v, want embedded seed data", cfg.Seed)
	}
	if got := cfg.Log.SlogLevel(); got != slog.LevelInfo {
		t.Errorf("default log level = %v, want info", got)
	}
}

// TestEnvOverride verifies that LIFTLOG_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LIFTLOG_FETCH_LATENCY_MS", "10")
	t.Setenv("LIFTLOG_SEED_DEMO", "true")
	t.Setenv("LIFTLOG_SEED_DEMO_DAYS", "7")
	t.Setenv("LIFTLOG_LOG_LEVEL", "warn")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fetch.LatencyMS != 10 {
		t.Errorf("fetch.latency_ms = %d, want 10", cfg.Fetch.LatencyMS)
	}
	if !cfg.Seed.Demo || cfg.Seed.DemoDays != 7 {
		t.Errorf("seed = %+v, want demo over 7 days", cfg.Seed)
	}
	if got := cfg.Log.SlogLevel(); got != slog.LevelWarn {
		t.Errorf("log level = %v, want warn", got)
	}
	// Unchanged fields should keep YAML values
	if cfg.Seed.File != "testdata/seed.yaml" {
		t.Errorf("seed.file = %q, want YAML value", cfg.Seed.File)
	}
}

// TestValidationNegativeLatency verifies that a negative latency is rejected.
func TestValidationNegativeLatency(t *testing.T) {
	_, err := Load(writeTemp(t, `
fetch:
  latency_ms: -5
`))
	if err == nil {
		t.Fatal("expected validation error for negative latency")
	}
}

// TestValidationBadLogLevel verifies unknown log levels are rejected.
func TestValidationBadLogLevel(t *testing.T) {
	_, err := Load(writeTemp(t, `
log:
  level: "verbose"
`))
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

// TestValidationDemoDays verifies demo seeding requires a positive day span.
func TestValidationDemoDays(t *testing.T) {
	_, err := Load(writeTemp(t, `
seed:
  demo: true
  demo_days: 0
`))
	if err == nil {
		t.Fatal("expected validation error for demo_days")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
