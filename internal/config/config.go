package config

import (
	"os"
	"strings"
	"time"
)

// Config collects everything the binaries read from the environment.
type Config struct {
	Port          string
	DatabaseDSN   string
	SessionSecret string

	// Session lifetime without and with the "remember me" flag.
	SessionTTL  time.Duration
	RememberTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
}

// Load reads the configuration from environment variables, applying
// the same defaults in every binary.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseDSN:   getenv("DATABASE_DSN", "host=localhost user=postgres dbname=notes port=5432 sslmode=disable"),
		SessionSecret: getenv("SESSION_SECRET", ""),
		SessionTTL:    12 * time.Hour,
		RememberTTL:   30 * 24 * time.Hour,
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		KafkaBrokers:  strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
