// Package config loads the service settings and workflow input files.
//
// Settings resolve in three layers: built-in defaults, an optional YAML file,
// then environment variables. Command-line flags are applied last by the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultAddr              = ":8080"
	DefaultAppURL            = "http://localhost:8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultOpenAIModel       = "gpt-4"
	DefaultImageModel        = "dall-e-3"
	DefaultGenerationTimeout = 30 * time.Second
	DefaultCacheBackend      = "memory"
	DefaultCacheTTL          = 10 * time.Minute
	DefaultCacheMaxEntries   = 10000
	DefaultCacheSweep        = time.Minute
	DefaultRedisAddr         = "localhost:6379"
)

// DemoAPIKey is treated the same as an empty key: content generation runs in demo mode.
const DemoAPIKey = "demo-key"

// Settings holds all configuration for the tweetflow service.
type Settings struct {
	Addr      string `yaml:"addr"`
	AppURL    string `yaml:"app_url"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
	OpenAIModel   string `yaml:"openai_model"`
	ImageModel    string `yaml:"image_model"`

	GenerationTimeout time.Duration `yaml:"generation_timeout"`

	Cache CacheSettings `yaml:"cache"`
}

// CacheSettings selects the content cache backend.
type CacheSettings struct {
	// Backend is "memory", "redis" or "none".
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
	// MaxEntries bounds the memory backend; zero means unbounded.
	MaxEntries int `yaml:"max_entries"`
	// SweepInterval is how often the memory backend drops expired entries.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Addr:              DefaultAddr,
		AppURL:            DefaultAppURL,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		OpenAIModel:       DefaultOpenAIModel,
		ImageModel:        DefaultImageModel,
		GenerationTimeout: DefaultGenerationTimeout,
		Cache: CacheSettings{
			Backend:   DefaultCacheBackend,
			RedisAddr: DefaultRedisAddr,
			TTL:           DefaultCacheTTL,
			MaxEntries:    DefaultCacheMaxEntries,
			SweepInterval: DefaultCacheSweep,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if non-empty)
// and then with environment variables.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}
	s.applyEnv(os.LookupEnv)
	return s, s.Validate()
}

// applyEnv overlays environment variables using lookup.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	str("TWEETFLOW_ADDR", &s.Addr)
	str("APP_URL", &s.AppURL)
	str("TWEETFLOW_LOG_LEVEL", &s.LogLevel)
	str("TWEETFLOW_LOG_FORMAT", &s.LogFormat)
	str("OPENAI_API_KEY", &s.OpenAIAPIKey)
	str("OPENAI_BASE_URL", &s.OpenAIBaseURL)
	str("OPENAI_MODEL", &s.OpenAIModel)
	str("TWEETFLOW_IMAGE_MODEL", &s.ImageModel)
	dur("TWEETFLOW_GENERATION_TIMEOUT", &s.GenerationTimeout)

	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str("TWEETFLOW_CACHE", &s.Cache.Backend)
	str("TWEETFLOW_REDIS_ADDR", &s.Cache.RedisAddr)
	str("TWEETFLOW_REDIS_PASSWORD", &s.Cache.RedisPassword)
	num("TWEETFLOW_REDIS_DB", &s.Cache.RedisDB)
	dur("TWEETFLOW_CACHE_TTL", &s.Cache.TTL)
	num("TWEETFLOW_CACHE_MAX_ENTRIES", &s.Cache.MaxEntries)
	dur("TWEETFLOW_CACHE_SWEEP_INTERVAL", &s.Cache.SweepInterval)
}

// DemoMode reports whether content generation should skip the OpenAI API.
func (s Settings) DemoMode() bool {
	return s.OpenAIAPIKey == "" || s.OpenAIAPIKey == DemoAPIKey
}

// Validate checks the settings for values that cannot work.
func (s Settings) Validate() error {
	switch s.Cache.Backend {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("unknown cache backend %q (want memory, redis or none)", s.Cache.Backend)
	}
	if s.GenerationTimeout <= 0 {
		return fmt.Errorf("generation_timeout must be positive, got %s", s.GenerationTimeout)
	}
	if s.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", s.Cache.TTL)
	}
	return nil
}
