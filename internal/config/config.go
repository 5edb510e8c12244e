// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every runtime setting the process needs.
type Config struct {
	Env      string
	HTTPAddr string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel           string
	CORSAllowedOrigins []string

	InitialBudget int64

	CacheEnabled bool
	CacheTTL     time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceDSN         string
	UptraceServiceName string

	PyroscopeEnabled    bool
	PyroscopeServerAddr string
	PyroscopeAppName    string
}

// Load reads the environment and applies defaults. It returns an error on
// malformed values rather than silently falling back.
func Load() (Config, error) {
	cfg := Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:           getEnv("APP_LOG_LEVEL", "info"),
		PprofAddr:          getEnv("PPROF_ADDR", ":6060"),
		UptraceDSN:         getEnv("UPTRACE_DSN", ""),
		UptraceServiceName: getEnv("UPTRACE_SERVICE_NAME", "cricket-auction-hub"),
		PyroscopeServerAddr: getEnv(
			"PYROSCOPE_SERVER_ADDR", "http://localhost:4040",
		),
		PyroscopeAppName: getEnv("PYROSCOPE_APP_NAME", "cricket-auction-hub"),
	}

	var err error
	if cfg.ReadTimeout, err = getDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getDuration("APP_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.IdleTimeout, err = getDuration("APP_IDLE_TIMEOUT", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheEnabled, err = getBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PprofEnabled, err = getBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled, err = getBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.InitialBudget, err = getInt64("AUCTION_INITIAL_BUDGET", 1000); err != nil {
		return Config{}, err
	}
	if cfg.InitialBudget <= 0 {
		return Config{}, fmt.Errorf("config: AUCTION_INITIAL_BUDGET must be positive, got %d", cfg.InitialBudget)
	}

	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

// Production reports whether the process runs with production settings.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	return b, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	return n, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
