package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ToolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reed_mcp_tool_calls_total",
		Help: "Total number of MCP tool calls",
	}, []string{"tool", "outcome"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reed_upstream_request_duration_seconds",
		Help:    "Duration of Reed API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "outcome"})
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Outcome returns the label value for err.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// Handler exposes the default registry.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
