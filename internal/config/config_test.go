package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_MissingBaseURL(t *testing.T) {
	t.Setenv("RENDER_EXTERNAL_URL", "")
	t.Setenv("API_URL", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RENDER_EXTERNAL_URL", "https://api.example.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL() != "https://api.example.test" {
		t.Fatalf("unexpected base url: %s", cfg.BaseURL())
	}
	if cfg.NumUsuarios != 10 || cfg.NumProductos != 30 || cfg.NumClientes != 20 {
		t.Fatalf("unexpected default counts: %d/%d/%d", cfg.NumUsuarios, cfg.NumProductos, cfg.NumClientes)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.HTTPTimeout)
	}
	if cfg.HTTPRetries != 1 {
		t.Fatalf("unexpected default retries: %d", cfg.HTTPRetries)
	}
}

func TestLoad_APIURLFallbackAndTrailingSlash(t *testing.T) {
	t.Setenv("RENDER_EXTERNAL_URL", "")
	t.Setenv("API_URL", "http://localhost:8000/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL() != "http://localhost:8000" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.BaseURL())
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"negative count", func(c *Config) { c.NumProductos = -1 }},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }},
		{"negative retries", func(c *Config) { c.HTTPRetries = -1 }},
		{"bad scheme", func(c *Config) { c.RenderExternalURL = "ftp://example.test" }},
		{"not a url", func(c *Config) { c.RenderExternalURL = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				RenderExternalURL: "https://api.example.test",
				HTTPTimeout:       10 * time.Second,
			}
			tt.mod(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
