package models

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from an optional
// config.yaml, overridden by environment variables (a local .env file
// is honored when present).
type Config struct {
	ListenAddr       string `yaml:"listen_addr"`
	AmazonDomain     string `yaml:"amazon_domain"`
	FetchTimeoutSecs int    `yaml:"fetch_timeout_secs"`
	WorkerCount      int    `yaml:"worker_count"`
	UserAgent        string `yaml:"user_agent"`
	CachePath        string `yaml:"cache_path"`    // empty disables the fetch cache
	CacheMaxAge      string `yaml:"cache_max_age"` // duration string, e.g. "1h"
}

// DefaultUserAgent mimics a current desktop browser. Some storefronts
// refuse requests with a bare Go user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func defaultConfig() Config {
	return Config{
		ListenAddr:       ":8080",
		AmazonDomain:     "www.amazon.com",
		FetchTimeoutSecs: 10,
		WorkerCount:      4,
		UserAgent:        DefaultUserAgent,
	}
}

// LoadConfig reads the YAML file at path if it exists and applies
// environment overrides. A missing file is not an error; defaults
// apply.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("AMAZON_DOMAIN"); v != "" {
		cfg.AmazonDomain = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FetchTimeoutSecs = n
		}
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WorkerCount = n
		}
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("CACHE_MAX_AGE"); v != "" {
		cfg.CacheMaxAge = v
	}

	if cfg.FetchTimeoutSecs <= 0 {
		cfg.FetchTimeoutSecs = 10
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}

	return cfg, nil
}

// FetchTimeout returns the fetch timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

// CacheTTL parses CacheMaxAge, defaulting to one hour when unset or
// malformed.
func (c Config) CacheTTL() time.Duration {
	if c.CacheMaxAge == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(c.CacheMaxAge)
	if err != nil {
		return time.Hour
	}
	return d
}
