package reed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/reed-jobs-mcp/internal/logger"
	"github.com/reed-jobs-mcp/internal/metrics"
	"github.com/reed-jobs-mcp/internal/models"
	"github.com/reed-jobs-mcp/internal/utils"
	"golang.org/x/time/rate"
)

var ErrInvalidJobID = errors.New("job id must be a positive number")

type Config struct {
	BaseURL           string        // API root without trailing slash
	APIKey            string        // Basic-auth username, password is always empty
	RequestTimeout    time.Duration // Timeout for a single request
	RequestsPerSecond float64       // 0 disables the client-side limit
	Burst             int
	HTTPClient        *http.Client // Optional, used by tests
}

// Client talks to the Reed jobseeker API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	requester *utils.HTTPRequester
	limiter   *rate.Limiter
}

func NewClient(config Config) *Client {
	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		requester: utils.NewHTTPRequester(utils.RequestConfig{
			Timeout: config.RequestTimeout,
			Client:  config.HTTPClient,
		}, &utils.BasicAuth{Username: config.APIKey, Password: ""}),
		limiter: rate.NewLimiter(limit, config.Burst),
	}
}

// Search runs one page of a job search. params are sent as the query string unchanged.
func (c *Client) Search(ctx context.Context, params url.Values) (*models.SearchResponse, error) {
	var out models.SearchResponse
	if err := c.get(ctx, "search", "/search", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JobDetails fetches a single job by its Reed identifier.
func (c *Client) JobDetails(ctx context.Context, jobID int64) (*models.JobDetail, error) {
	if jobID <= 0 {
		return nil, ErrInvalidJobID
	}

	var out models.JobDetail
	if err := c.get(ctx, "jobs", "/jobs/"+strconv.FormatInt(jobID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint, metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	log := logger.FromContext(ctx).With("component", "reed.Client", "endpoint", endpoint)
	log.Debug("Making request to Reed API", "path", path, "query", params.Encode())

	res, err := c.requester.Do(ctx, target, http.MethodGet, nil, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	log.Debug("Reed API request completed", "took", time.Since(start))
	return nil
}
