package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "secret",
		"DATABASE_URL": "postgres://localhost/rental",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %s", cfg.JWTTTL)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("expected 50 open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" {
		t.Errorf("expected optional stores to be disabled by default")
	}
	if cfg.IsProduction() {
		t.Errorf("expected development env by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DATABASE_URL": "postgres://localhost/rental",
	}))
	if err == nil {
		t.Fatal("expected an error when JWT_SECRET is missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "secret",
		"DATABASE_URL":  "postgres://localhost/rental",
		"JWT_TTL":       "30m",
		"REDIS_ADDR":    "redis:6379",
		"AUDIT_WORKERS": "2",
		"ENV":           "production",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTTTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %s", cfg.JWTTTL)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("expected redis addr override, got %q", cfg.Redis.Addr)
	}
	if cfg.AuditWorkers != 2 {
		t.Errorf("expected 2 audit workers, got %d", cfg.AuditWorkers)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production env")
	}
}
