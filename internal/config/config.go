package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "tatvaops.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultSaveDelay   = "800ms"
	defaultSavedTTL    = "2s"
)

// RuntimeConfig carries everything the API process reads from the
// environment. SaveDelay stands in for the upstream round-trip of a
// milestone save; SavedTTL is how long the "saved" indicator stays up.
type RuntimeConfig struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	SaveDelay   time.Duration
	SavedTTL    time.Duration
}

func Load() (*RuntimeConfig, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.SaveDelay, err = parseDurationEnv("MILESTONE_SAVE_DELAY", defaultSaveDelay); err != nil {
		return nil, err
	}
	if cfg.SavedTTL, err = parseDurationEnv("MILESTONE_SAVED_TTL", defaultSavedTTL); err != nil {
		return nil, err
	}

	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside dev")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
