package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("REFRESH_TOKEN_TTL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:3000" {
		t.Fatalf("BaseURL default expected 'localhost:3000', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:3000" {
		t.Fatalf("ServerURL default expected 'http://localhost:3000', got %q", cfg.ServerURL)
	}
	if cfg.SQLitePath != "catalog.db" {
		t.Fatalf("SQLitePath default expected 'catalog.db', got %q", cfg.SQLitePath)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("AccessTokenTTL default expected 15m, got %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTokenTTL default expected 168h, got %s", cfg.RefreshTokenTTL)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("RedisAddr must stay empty by default, got %q", cfg.RedisAddr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel default expected 'info', got %q", cfg.LogLevel)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("ACCESS_TOKEN_TTL", "1m")
	t.Setenv("REFRESH_TOKEN_TTL", "2h")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.AccessTokenTTL != time.Minute || cfg.RefreshTokenTTL != 2*time.Hour {
		t.Fatalf("unexpected TTLs: access=%s refresh=%s", cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}
	if cfg.RedisAddr != "cache:6379" || cfg.RedisDB != 3 {
		t.Fatalf("unexpected redis settings: %q db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:3000
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:3000" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:3000', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:3000") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_PortOnlyBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", ":8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != ":8080" {
		t.Fatalf("port-only BASE_URL must be accepted, got %q", cfg.BaseURL)
	}
}
