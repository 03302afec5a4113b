package chargify

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings sourced from the environment.
// Variables are read with the CHARGIFY_ prefix, e.g. CHARGIFY_API_KEY.
type Config struct {
	APIKey    string        `envconfig:"API_KEY" required:"true"`
	Subdomain string        `envconfig:"SUBDOMAIN" required:"true"`
	BaseURL   string        `envconfig:"BASE_URL"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from CHARGIFY_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CHARGIFY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Options translates cfg into client options. Caller-supplied options passed
// to New after these take precedence.
func (cfg *Config) Options() []Option {
	opts := []Option{WithHTTPTimeout(cfg.Timeout)}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}

// NewFromConfig builds a Client from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	return New(cfg.APIKey, cfg.Subdomain, append(cfg.Options(), opts...)...)
}

// NewFromEnv builds a Client from CHARGIFY_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
