package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_JWTSecretRequiredInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without JWT_SECRET")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.JWTTokenTTL != 720*time.Hour {
		t.Fatalf("unexpected JWTTokenTTL: %s", cfg.JWTTokenTTL)
	}
	if !cfg.WeeklyResetEnabled {
		t.Fatalf("expected WeeklyResetEnabled=true by default")
	}
	if cfg.WeeklyResetGrace != time.Hour {
		t.Fatalf("unexpected WeeklyResetGrace: %s", cfg.WeeklyResetGrace)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
}

func TestLoad_CacheTTLMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "-10s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative CACHE_TTL")
	}
}

func TestLoad_WeeklyResetTuning(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEEKLY_RESET_ENABLED", "false")
	t.Setenv("WEEKLY_RESET_GRACE", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WeeklyResetEnabled {
		t.Fatalf("expected WeeklyResetEnabled=false")
	}
	if cfg.WeeklyResetGrace != 30*time.Minute {
		t.Fatalf("unexpected WeeklyResetGrace: %s", cfg.WeeklyResetGrace)
	}
}
