package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	tags     []string
	messages []map[string]any
}

func (p *fakePoster) Post(tag string, message interface{}) error {
	p.tags = append(p.tags, tag)
	p.messages = append(p.messages, message.(map[string]any))
	return nil
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_WritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, IsJSON: true})

	log.Info("hello", "tool", "search_jobs")
	log.Debug("hidden")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"tool":"search_jobs"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFluentHandler(t *testing.T) {
	poster := &fakePoster{}
	handler, err := NewFluentHandler(poster, "reed-jobs-mcp", slog.LevelWarn)
	require.NoError(t, err)

	log := slog.New(handler).With("request_id", "abc").WithGroup("http")
	log.Info("ignored")
	log.Error("upstream failed", "error", errors.New("timeout"), "took", 2*time.Second, "status", 502)

	require.Len(t, poster.messages, 1)
	assert.Equal(t, "reed-jobs-mcp.error", poster.tags[0])

	msg := poster.messages[0]
	assert.Equal(t, "upstream failed", msg["message"])
	assert.Equal(t, "abc", msg["request_id"])
	assert.Equal(t, "timeout", msg["http.error"])
	assert.Equal(t, "2s", msg["http.took"])
	assert.Equal(t, int64(502), msg["http.status"])
}

func TestNewFluentHandler_NilClient(t *testing.T) {
	_, err := NewFluentHandler(nil, "app", nil)
	assert.Error(t, err)
}

func TestMultiHandler_FansOut(t *testing.T) {
	var text bytes.Buffer
	poster := &fakePoster{}
	fluentHandler, err := NewFluentHandler(poster, "app", slog.LevelInfo)
	require.NoError(t, err)

	log := New(Config{Writer: &text, Extra: []slog.Handler{fluentHandler}}).With("tool", "get_job_details")
	log.Info("done")

	assert.Contains(t, text.String(), "tool=get_job_details")
	require.Len(t, poster.messages, 1)
	assert.Equal(t, "get_job_details", poster.messages[0]["tool"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf})

	FromContext(context.Background()).Info("discarded")
	FromContext(ContextWithLogger(context.Background(), log)).Info("kept")

	assert.NotContains(t, buf.String(), "discarded")
	assert.Contains(t, buf.String(), "kept")
}
