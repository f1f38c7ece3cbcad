package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "reed-jobs-mcp/1.0"

type RequestConfig struct {
	Timeout   time.Duration // Timeout for a single HTTP request
	UserAgent string
	Client    *http.Client // Optional, overrides Timeout
}

// BasicAuth is sent with every request when set on the requester.
type BasicAuth struct {
	Username string
	Password string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

type HTTPRequester struct {
	client *http.Client
	config RequestConfig
	auth   *BasicAuth
}

func NewHTTPRequester(config RequestConfig, auth *BasicAuth) *HTTPRequester {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}

	client := config.Client
	if client == nil {
		client = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &HTTPRequester{
		client: client,
		config: config,
		auth:   auth,
	}
}

// Do performs a single request. The caller owns the body of a successful response.
func (s *HTTPRequester) Do(ctx context.Context, url, method string, body io.Reader, headers http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if s.auth != nil {
		req.SetBasicAuth(s.auth.Username, s.auth.Password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp, nil
}
