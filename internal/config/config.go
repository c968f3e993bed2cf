package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

const devJWTSecret = "dev-secret-change-me"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	DBURL                  string
	JWTSecret              string
	JWTTokenTTL            time.Duration
	CORSAllowedOrigins     []string
	CacheEnabled           bool
	CacheTTL               time.Duration
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	WeeklyResetEnabled     bool
	WeeklyResetGrace       time.Duration
	PprofEnabled           bool
	PprofAddr              string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	UptraceEnabled         bool
	UptraceDSN             string
	LogLevel               logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	jwtSecret := strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if jwtSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=prod")
		}
		jwtSecret = devJWTSecret
	}

	jwtTokenTTL, err := time.ParseDuration(getEnv("JWT_TOKEN_TTL", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_TOKEN_TTL: %w", err)
	}
	if jwtTokenTTL <= 0 {
		return Config{}, fmt.Errorf("JWT_TOKEN_TTL must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	weeklyResetEnabled, err := strconv.ParseBool(getEnv("WEEKLY_RESET_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEEKLY_RESET_ENABLED: %w", err)
	}

	weeklyResetGrace, err := time.ParseDuration(getEnv("WEEKLY_RESET_GRACE", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEEKLY_RESET_GRACE: %w", err)
	}
	if weeklyResetGrace < 0 {
		return Config{}, fmt.Errorf("WEEKLY_RESET_GRACE must be >= 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "pingpong-league-api")

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            serviceName,
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		JWTSecret:              jwtSecret,
		JWTTokenTTL:            jwtTokenTTL,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		CacheEnabled:           cacheEnabled,
		CacheTTL:               cacheTTL,
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		WeeklyResetEnabled:     weeklyResetEnabled,
		WeeklyResetGrace:       weeklyResetGrace,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev:
		return EnvDev, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: must be %s or %s", v, EnvDev, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
