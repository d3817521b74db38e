package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %q", cfg.RedisAddr)
	}
	if cfg.RateWindow != 60*time.Second {
		t.Fatalf("expected default window 60s, got %s", cfg.RateWindow)
	}
	if cfg.RateMaxRequests != 100 {
		t.Fatalf("expected default max requests 100, got %d", cfg.RateMaxRequests)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token ttl 24h, got %s", cfg.TokenTTL)
	}
	if cfg.NotificationTTL != 300*time.Second {
		t.Fatalf("expected default notification ttl 300s, got %s", cfg.NotificationTTL)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("RATE_MAX_REQUESTS", "5")
	t.Setenv("RATE_STORE", "memory")
	t.Setenv("TRUST_XFF", "true")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RateWindow != 30*time.Second {
		t.Fatalf("expected window 30s, got %s", cfg.RateWindow)
	}
	if cfg.RateMaxRequests != 5 {
		t.Fatalf("expected max requests 5, got %d", cfg.RateMaxRequests)
	}
	if cfg.RateStore != "memory" {
		t.Fatalf("expected memory store, got %q", cfg.RateStore)
	}
	if !cfg.TrustXFF {
		t.Fatalf("expected TRUST_XFF to be true")
	}
}

func TestLoadFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("RATE_STORE", "carrier-pigeon")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatalf("expected error for unknown RATE_STORE")
	}
}
