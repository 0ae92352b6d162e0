package config

import (
	"strings"
	"testing"
)

func setAllEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EW_API_APP_NAME", "ElectroWay API")
	t.Setenv("EW_API_APP_VERSION", "v1.0.0")
	t.Setenv("EW_API_SERVER_PORT", "3000")
	t.Setenv("EW_API_SERVER_LOG_LEVEL", "debug")
	t.Setenv("EW_API_CORS_ORIGIN", "https://electroway.example.com")
	t.Setenv("EW_API_JWT_SECRET", "test-signing-secret")
	t.Setenv("EW_API_PG_DSN", "host=localhost user=ew dbname=ew")
	t.Setenv("EW_API_PG_LOG_LEVEL", "warn")
	t.Setenv("EW_API_REDIS_HOST", "localhost")
	t.Setenv("EW_API_REDIS_PORT", "6379")
	t.Setenv("EW_API_REDIS_PASSWORD", "redispass")
}

func TestLoadFromEnv(t *testing.T) {
	setAllEnv(t)

	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		t.Fatalf("loadFromEnv() error: %v", err)
	}
	if cfg.JWTSecret != "test-signing-secret" {
		t.Fatalf("expected JWT secret to be loaded, got %q", cfg.JWTSecret)
	}
	if cfg.ServerPort != "3000" {
		t.Fatalf("expected server port 3000, got %q", cfg.ServerPort)
	}
}

func TestLoadFromEnvMissingSecret(t *testing.T) {
	setAllEnv(t)
	t.Setenv("EW_API_JWT_SECRET", "")

	cfg := &Config{}
	err := cfg.loadFromEnv()
	if err == nil {
		t.Fatalf("expected error when EW_API_JWT_SECRET is unset, got nil")
	}
	if !strings.Contains(err.Error(), "EW_API_JWT_SECRET") {
		t.Fatalf("expected error to name the missing variable, got %v", err)
	}
}

func TestStringMasksSecrets(t *testing.T) {
	setAllEnv(t)

	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		t.Fatalf("loadFromEnv() error: %v", err)
	}

	s := cfg.String()
	if strings.Contains(s, "test-signing-secret") {
		t.Fatalf("String() must not print the signing secret:\n%s", s)
	}
	if strings.Contains(s, "redispass") {
		t.Fatalf("String() must not print the redis password:\n%s", s)
	}
}
