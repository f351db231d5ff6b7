package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch FetchConfig `yaml:"fetch"`
	Seed  SeedConfig  `yaml:"seed"`
	Log   LogConfig   `yaml:"log"`
}

type FetchConfig struct {
	LatencyMS int `yaml:"latency_ms"`
}

// Latency returns the simulated fetch delay as a duration.
func (f FetchConfig) Latency() time.Duration {
	return time.Duration(f.LatencyMS) * time.Millisecond
}

type SeedConfig struct {
	File     string `yaml:"file"`
	Demo     bool   `yaml:"demo"`
	DemoDays int    `yaml:"demo_days"`
	DemoSeed int64  `yaml:"demo_seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name onto slog's levels.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the config used when no file is given: 150ms simulated
// fetch latency, embedded seed data, info logging.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{LatencyMS: 150},
		Seed:  SeedConfig{DemoDays: 14},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix LIFTLOG_ and underscore-separated
// paths:
//
//	LIFTLOG_FETCH_LATENCY_MS,
//	LIFTLOG_SEED_FILE, LIFTLOG_SEED_DEMO, LIFTLOG_SEED_DEMO_DAYS,
//	LIFTLOG_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_FETCH_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.LatencyMS = ms
		}
	}
	if v := os.Getenv("LIFTLOG_SEED_FILE"); v != "" {
		cfg.Seed.File = v
	}
	if v := os.Getenv("LIFTLOG_SEED_DEMO"); v != "" {
		if demo, err := strconv.ParseBool(v); err == nil {
			cfg.Seed.Demo = demo
		}
	}
	if v := os.Getenv("LIFTLOG_SEED_DEMO_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Seed.DemoDays = days
		}
	}
	if v := os.Getenv("LIFTLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Fetch.LatencyMS < 0 {
		return fmt.Errorf("fetch.latency_ms must not be negative, got %d", c.Fetch.LatencyMS)
	}
	if c.Seed.Demo && c.Seed.DemoDays <= 0 {
		return fmt.Errorf("seed.demo_days must be positive when demo seeding is on, got %d", c.Seed.DemoDays)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}
