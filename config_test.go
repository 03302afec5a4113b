package chargify

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "k")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if cfg.Debug || cfg.BaseURL != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "")
	os.Unsetenv("CHARGIFY_API_KEY")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when CHARGIFY_API_KEY is unset")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "k")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")
	t.Setenv("CHARGIFY_BASE_URL", "http://localhost:3000")
	t.Setenv("CHARGIFY_TIMEOUT", "5s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.BaseURL() != "http://localhost:3000" {
		t.Fatalf("base url = %q", c.BaseURL())
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
}
