package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	ToolCallsTotal.WithLabelValues("search_jobs", OutcomeOK).Inc()
	UpstreamRequestDuration.WithLabelValues("search", OutcomeOK).Observe(0.2)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `reed_mcp_tool_calls_total{outcome="ok",tool="search_jobs"}`)
	assert.Contains(t, string(body), "reed_upstream_request_duration_seconds_bucket")
}

func TestHandler_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
