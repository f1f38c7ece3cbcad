package app

import (
	"context"
	"testing"

	"github.com/reed-jobs-mcp/infrastructure"
	"github.com/reed-jobs-mcp/internal/config"
	"github.com/reed-jobs-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MinimalConfig(t *testing.T) {
	cfg := &config.AppConfig{
		AppName: "test",
		Reed: config.ReedConfig{
			BaseURL:     "http://127.0.0.1:1",
			JobsBaseURL: config.DefaultJobsBaseURL,
		},
	}

	a, err := New(cfg, infrastructure.DBConfig{})
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Logger)
	assert.False(t, a.Handlers.AnalyzerEnabled())

	res := a.Handlers.SearchJobs(context.Background(), models.SearchCriteria{Keywords: "x"})
	assert.True(t, res.IsError)
}

func TestNew_AnalyzerFromConfig(t *testing.T) {
	cfg := &config.AppConfig{
		AppName:    "test",
		OpenRouter: config.OpenRouterConfig{APIKey: "k", Model: "m"},
	}

	a, err := New(cfg, infrastructure.DBConfig{})
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.Handlers.AnalyzerEnabled())
}

func TestServeMetrics_DisabledWithoutAddr(t *testing.T) {
	a, err := New(&config.AppConfig{AppName: "test"}, infrastructure.DBConfig{})
	require.NoError(t, err)

	a.ServeMetrics(context.Background())
	assert.NoError(t, a.Close())
}
