package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerStampsServiceField(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	logger := NewLogger("unit-test")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("hello")

	assert.Contains(t, buf.String(), `"service":"unit-test"`)
}

func TestNewLoggerServiceFieldSurvivesWithFields(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	logger := NewLogger("unit-test")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.WithField("mint", "m1").Warn("slow")

	out := buf.String()
	assert.Contains(t, out, `"service":"unit-test"`)
	assert.Contains(t, out, `"mint":"m1"`)
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, NewLogger("x").GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, logrus.InfoLevel, NewLogger("x").GetLevel())
}
