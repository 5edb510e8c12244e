package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected env: %q", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.HTTPAddr)
	}
	if cfg.InitialBudget != 1000 {
		t.Fatalf("unexpected budget: %d", cfg.InitialBudget)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache settings: %v %v", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Production() {
		t.Fatal("development must not report production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_HTTP_ADDR", ":9000")
	t.Setenv("APP_READ_TIMEOUT", "5s")
	t.Setenv("AUCTION_INITIAL_BUDGET", "2500")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Production() {
		t.Fatal("expected production")
	}
	if cfg.HTTPAddr != ":9000" || cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected server settings: %+v", cfg)
	}
	if cfg.InitialBudget != 2500 {
		t.Fatalf("unexpected budget: %d", cfg.InitialBudget)
	}
	if cfg.CacheEnabled {
		t.Fatal("cache must be disabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_MalformedValues(t *testing.T) {
	cases := map[string]string{
		"APP_READ_TIMEOUT":       "soon",
		"CACHE_ENABLED":          "yep",
		"AUCTION_INITIAL_BUDGET": "lots",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error naming %s, got %v", key, err)
			}
		})
	}
}

func TestLoad_RejectsNonPositiveBudget(t *testing.T) {
	t.Setenv("AUCTION_INITIAL_BUDGET", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero budget")
	}
}
