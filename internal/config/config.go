// Package config reads process settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendBolt     = "bolt"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	HTTPAddr      string
	SaveBackend   string
	BoltPath      string
	RedisAddr     string
	DBDSN         string
	MigrationsDir string

	ClockTick    time.Duration
	MonsterTick  time.Duration
	FeedbackTick time.Duration
	// Seed drives world generation and every roll. Zero means time-based.
	Seed int64

	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		HTTPAddr:      strEnv("OGV_HTTP_ADDR", ":8080"),
		SaveBackend:   strings.ToLower(strEnv("OGV_SAVE_BACKEND", BackendBolt)),
		BoltPath:      strEnv("OGV_BOLT_PATH", "ogvalley.db"),
		RedisAddr:     strEnv("OGV_REDIS_ADDR", "localhost:6379"),
		DBDSN:         strEnv("OGV_DB_DSN", ""),
		MigrationsDir: strEnv("OGV_MIGRATIONS_DIR", "migrations"),
		ClockTick:     msEnv("OGV_CLOCK_TICK_MS", 1000),
		MonsterTick:   msEnv("OGV_MONSTER_TICK_MS", 800),
		FeedbackTick:  msEnv("OGV_FEEDBACK_TICK_MS", 30),
		Seed:          int64(intEnv("OGV_SEED", 0)),
		LogLevel:      strEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(strEnv("LOG_FORMAT", "text")),
	}
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// msEnv reads a positive millisecond period.
func msEnv(key string, fallbackMS int) time.Duration {
	n := intEnv(key, fallbackMS)
	if n <= 0 {
		n = fallbackMS
	}
	return time.Duration(n) * time.Millisecond
}
