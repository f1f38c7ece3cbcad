package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRequester_Do_SendsAuthAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Empty(t, pass)
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	requester := NewHTTPRequester(RequestConfig{}, &BasicAuth{Username: "key"})
	res, err := requester.Do(context.Background(), srv.URL, http.MethodGet, nil, http.Header{"X-Test": {"yes"}})
	require.NoError(t, err)
	res.Body.Close()
}

func TestHTTPRequester_Do_StatusError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPRequester(RequestConfig{}, nil).Do(context.Background(), srv.URL, http.MethodGet, nil, nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "request failed with status code 503", err.Error())
	assert.Equal(t, 1, calls)
}

func TestHTTPRequester_Do_InvalidURL(t *testing.T) {
	_, err := NewHTTPRequester(RequestConfig{}, nil).Do(context.Background(), "://bad", http.MethodGet, nil, nil)

	assert.ErrorContains(t, err, "failed to create request")
}
