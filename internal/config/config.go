package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	HistoryLimit int
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:    24 * time.Hour,
		HistoryLimit: getEnvInt("HISTORY_LIMIT", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
