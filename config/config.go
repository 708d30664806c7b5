// Package config provides configuration settings for the ID codec service.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "sqid"

// Config holds the configuration settings for the application.
type Config struct {
	ServerPort       string        `envconfig:"SERVER_PORT"`
	RateLimit        int           `envconfig:"RATE_LIMIT"`
	RatePeriod       time.Duration `envconfig:"RATE_PERIOD"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DisableRateLimit bool          `envconfig:"DISABLE_RATE_LIMIT"`

	// Codec settings. An empty Alphabet selects the codec default; MinLength
	// pads identifiers; ExtraBlocklist words are merged into the default
	// blocklist rather than replacing it.
	Alphabet       string   `envconfig:"CODEC_ALPHABET"`
	MinLength      int      `envconfig:"CODEC_MIN_LENGTH"`
	ExtraBlocklist []string `envconfig:"CODEC_BLOCKLIST_EXTRA"`
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() *Config {
	return &Config{
		ServerPort:       ":3000",
		RateLimit:        10,
		RatePeriod:       time.Second,
		RequestTimeout:   5 * time.Second,
		DisableRateLimit: false,
	}
}

// Load returns the default configuration overridden by SQID_* environment
// variables. Invalid settings fail loading; they are never silently replaced
// with defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the server cannot start without. Codec
// settings (alphabet, blocklist) are validated by the codec constructor.
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.RatePeriod <= 0 {
		return fmt.Errorf("rate period must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.MinLength < 0 {
		return fmt.Errorf("minimum identifier length cannot be negative")
	}
	return nil
}
