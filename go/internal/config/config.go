package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendNATS   = "nats"
)

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Server   ServerConfig  `yaml:"server"`
	Sleeper  SleeperConfig `yaml:"sleeper"`
	Cache    CacheConfig   `yaml:"cache"`
	Trades   TradesConfig  `yaml:"trades"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type SleeperConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxAttempts    int           `yaml:"max_attempts"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	NATSURL string        `yaml:"nats_url"`
	Bucket  string        `yaml:"bucket"`
}

type TradesConfig struct {
	ScanWeeks            int `yaml:"scan_weeks"`
	PageSize             int `yaml:"page_size"`
	FetchConcurrency     int `yaml:"fetch_concurrency"`
	EnrichConcurrency    int `yaml:"enrich_concurrency"`
	FuturePickFloorValue int `yaml:"future_pick_floor_value"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Sleeper: SleeperConfig{
			BaseURL:        "https://api.sleeper.app/v1",
			RequestTimeout: 10 * time.Second,
			MaxAttempts:    3,
		},
		Cache: CacheConfig{
			Backend: CacheBackendMemory,
			TTL:     15 * time.Minute,
			NATSURL: "nats://localhost:4222",
			Bucket:  "LEAGUE_RESPONSES",
		},
		Trades: TradesConfig{
			ScanWeeks:            21,
			PageSize:             20,
			FetchConcurrency:     8,
			EnrichConcurrency:    8,
			FuturePickFloorValue: 750,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Sleeper.BaseURL = getEnv("SLEEPER_BASE_URL", c.Sleeper.BaseURL)
	c.Cache.Backend = getEnv("CACHE_BACKEND", c.Cache.Backend)
	c.Cache.NATSURL = getEnv("NATS_URL", c.Cache.NATSURL)
	c.Trades.FetchConcurrency = getEnvAsInt("FETCH_CONCURRENCY", c.Trades.FetchConcurrency)
}

func (c Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Sleeper.BaseURL == "" {
		errs = append(errs, errors.New("sleeper.base_url is required"))
	}
	if c.Sleeper.RequestTimeout <= 0 {
		errs = append(errs, errors.New("sleeper.request_timeout must be positive"))
	}
	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendNATS:
		if c.Cache.NATSURL == "" {
			errs = append(errs, errors.New("cache.nats_url is required for the nats backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be %q or %q, got %q", CacheBackendMemory, CacheBackendNATS, c.Cache.Backend))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.Trades.ScanWeeks <= 0 {
		errs = append(errs, errors.New("trades.scan_weeks must be positive"))
	}
	if c.Trades.PageSize <= 0 {
		errs = append(errs, errors.New("trades.page_size must be positive"))
	}
	if c.Trades.FetchConcurrency <= 0 || c.Trades.EnrichConcurrency <= 0 {
		errs = append(errs, errors.New("trades concurrency limits must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
