package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "REED_API_KEY", "REED_API_BASE_URL", "REED_JOBS_BASE_URL", "REED_REQUEST_TIMEOUT",
		"REED_REQUESTS_PER_SECOND", "REED_RATE_BURST", "FLUENTBIT_ENABLED", "OPENROUTER_API_KEY", "METRICS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, "", cfg.Reed.APIKey)
	assert.Equal(t, DefaultReedBaseURL, cfg.Reed.BaseURL)
	assert.Equal(t, DefaultJobsBaseURL, cfg.Reed.JobsBaseURL)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("REED_API_KEY", " secret ")
	t.Setenv("REED_API_BASE_URL", "http://localhost:9999/api/")
	t.Setenv("REED_REQUEST_TIMEOUT", "5s")
	t.Setenv("REED_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("REED_RATE_BURST", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "secret", cfg.Reed.APIKey)
	assert.Equal(t, "http://localhost:9999/api", cfg.Reed.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Reed.RequestTimeout)
	assert.Equal(t, 0.5, cfg.Reed.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Reed.Burst)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REED_REQUEST_TIMEOUT", "soon")
	t.Setenv("REED_RATE_BURST", "many")

	cfg := LoadConfig()

	assert.Equal(t, 30*time.Second, cfg.Reed.RequestTimeout)
	assert.Equal(t, 1, cfg.Reed.Burst)
}

func TestLoadConfig_FluentBitNeedsHost(t *testing.T) {
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg := LoadConfig()

	assert.False(t, cfg.FluentBit.Enabled)
}
