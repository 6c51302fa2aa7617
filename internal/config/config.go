package config

import (
	"os"
	"strconv"
	"time"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
)

type Config struct {
	PumpFun           pumpfun.Config
	DbUri             string
	MonitorInterval   time.Duration
	DataRetentionDays int
	ArchiveBatchSize  int
}

func Load() *Config {
	return &Config{
		PumpFun: pumpfun.Config{
			APIKey:             getEnv("PUMPFUN_API_KEY", ""),
			BaseURL:            getEnv("PUMPFUN_BASE_URL", pumpfun.BaseURL),
			MaxRetries:         getEnvInt("PUMPFUN_MAX_RETRIES", 3),
			BackoffFactor:      getEnvDuration("PUMPFUN_BACKOFF", 1*time.Second),
			MinRequestInterval: getEnvDuration("PUMPFUN_MIN_INTERVAL", 100*time.Millisecond),
		},
		DbUri:             getEnv("DB_URI", "postgres://localhost/pumpfun?sslmode=disable"),
		MonitorInterval:   getEnvDuration("MONITOR_INTERVAL", 5*time.Minute),
		DataRetentionDays: getEnvInt("DATA_RETENTION_DAYS", 30),
		ArchiveBatchSize:  getEnvInt("ARCHIVE_BATCH_SIZE", 200),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
