package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "CORS_ALLOWED_ORIGINS", "JWT_ISSUER", "JWT_TOKEN_TTL", "PGSSLMODE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Server.Addr != ":5000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.Issuer != "zmtwc" {
		t.Errorf("Issuer = %q", cfg.Auth.Issuer)
	}
	if cfg.Auth.TokenTTL != "24h" {
		t.Errorf("TokenTTL = %q", cfg.Auth.TokenTTL)
	}
	if cfg.Postgres.SSLMode != "disable" {
		t.Errorf("SSLMode = %q", cfg.Postgres.SSLMode)
	}
	if cfg.Server.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ISSUER", "other")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.Issuer != "other" {
		t.Errorf("Issuer = %q", cfg.Auth.Issuer)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v want %v", cfg.Server.AllowedOrigins, want)
	}
}
