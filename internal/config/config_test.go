package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 3, cfg.PumpFun.MaxRetries)
	assert.Equal(t, 1*time.Second, cfg.PumpFun.BackoffFactor)
	assert.Equal(t, 100*time.Millisecond, cfg.PumpFun.MinRequestInterval)
	assert.Equal(t, 5*time.Minute, cfg.MonitorInterval)
	assert.Equal(t, 30, cfg.DataRetentionDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PUMPFUN_API_KEY", "secret")
	t.Setenv("PUMPFUN_MAX_RETRIES", "5")
	t.Setenv("PUMPFUN_MIN_INTERVAL", "250ms")
	t.Setenv("MONITOR_INTERVAL", "1m")

	cfg := Load()

	assert.Equal(t, "secret", cfg.PumpFun.APIKey)
	assert.Equal(t, 5, cfg.PumpFun.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.PumpFun.MinRequestInterval)
	assert.Equal(t, 1*time.Minute, cfg.MonitorInterval)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PUMPFUN_MAX_RETRIES", "many")
	t.Setenv("MONITOR_INTERVAL", "soon")

	cfg := Load()

	assert.Equal(t, 3, cfg.PumpFun.MaxRetries)
	assert.Equal(t, 5*time.Minute, cfg.MonitorInterval)
}
