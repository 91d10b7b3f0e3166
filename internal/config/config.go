// Package config provides configuration loading for the seeder.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingBaseURL is returned when no target base URL is configured.
// The seeder refuses to start without one; nothing is submitted.
var ErrMissingBaseURL = errors.New("base URL is required: set RENDER_EXTERNAL_URL (or API_URL)")

// Config holds seeder configuration loaded from environment variables.
type Config struct {
	RenderExternalURL string        `mapstructure:"RENDER_EXTERNAL_URL"`
	APIURL            string        `mapstructure:"API_URL"`
	NumUsuarios       int           `mapstructure:"SEED_USUARIOS"`
	NumProductos      int           `mapstructure:"SEED_PRODUCTOS"`
	NumClientes       int           `mapstructure:"SEED_CLIENTES"`
	HTTPTimeout       time.Duration `mapstructure:"HTTP_TIMEOUT"`
	HTTPRetries       int           `mapstructure:"HTTP_RETRIES"`
	LogFile           string        `mapstructure:"LOG_FILE"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from the environment with development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Conservative submission defaults; the upstream contract does not
	// specify retry or timeout behaviour.
	v.SetDefault("RENDER_EXTERNAL_URL", "")
	v.SetDefault("API_URL", "")
	v.SetDefault("SEED_USUARIOS", 10)
	v.SetDefault("SEED_PRODUCTOS", 30)
	v.SetDefault("SEED_CLIENTES", 20)
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("HTTP_RETRIES", 1)
	v.SetDefault("LOG_FILE", "semilla.log")
	v.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// BaseURL returns the effective seeding target. RENDER_EXTERNAL_URL wins over
// API_URL; trailing slashes are trimmed so resource paths can be appended.
func (c *Config) BaseURL() string {
	base := strings.TrimSpace(c.RenderExternalURL)
	if base == "" {
		base = strings.TrimSpace(c.APIURL)
	}
	return strings.TrimRight(base, "/")
}

// Validate ensures required values are present and sane.
func (c *Config) Validate() error {
	base := c.BaseURL()
	if base == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base URL %q is not a valid http(s) URL", base)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", base)
	}
	if c.NumUsuarios < 0 || c.NumProductos < 0 || c.NumClientes < 0 {
		return errors.New("seed counts must not be negative")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	if c.HTTPRetries < 0 {
		return errors.New("HTTP_RETRIES must not be negative")
	}
	return nil
}
