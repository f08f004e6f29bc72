package devsly

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// LoadTestService exposes the load testing endpoints.
type LoadTestService struct {
	client *Client
}

// runConfig holds configuration for a load test run.
type runConfig struct {
	requests    int
	concurrency int
	duration    time.Duration
	method      string
}

// RunOption configures a load test run.
type RunOption func(*runConfig)

// WithRequests sets the total number of requests to issue. Default: 100.
func WithRequests(n int) RunOption {
	return func(c *runConfig) {
		c.requests = n
	}
}

// WithConcurrency sets the number of parallel workers. Default: 10.
func WithConcurrency(n int) RunOption {
	return func(c *runConfig) {
		c.concurrency = n
	}
}

// WithDuration bounds the run by wall-clock time instead of request
// count. Sent to the server in whole seconds.
func WithDuration(d time.Duration) RunOption {
	return func(c *runConfig) {
		c.duration = d
	}
}

// WithMethod sets the HTTP method the workers use. Default: GET.
func WithMethod(method string) RunOption {
	return func(c *runConfig) {
		c.method = method
	}
}

// Run starts a load test against targetURL and returns the server's
// run descriptor, including the run id used by [LoadTestService.Status].
func (s *LoadTestService) Run(ctx context.Context, targetURL string, opts ...RunOption) (Result, error) {
	cfg := &runConfig{
		requests:    100,
		concurrency: 10,
		method:      http.MethodGet,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	body := map[string]any{
		"url":         targetURL,
		"requests":    cfg.requests,
		"concurrency": cfg.concurrency,
		"method":      cfg.method,
	}
	if cfg.duration > 0 {
		body["duration"] = int(cfg.duration.Seconds())
	}

	return s.client.Do(ctx, http.MethodPost, "/v1/loadtest/run", nil, body)
}

// Status fetches the current state and metrics of a run.
func (s *LoadTestService) Status(ctx context.Context, id string) (Result, error) {
	return s.client.Do(ctx, http.MethodGet, "/v1/loadtest/"+url.PathEscape(id), nil, nil)
}

// History lists recent runs, newest first, up to limit entries.
func (s *LoadTestService) History(ctx context.Context, limit int) (Result, error) {
	return s.client.Do(ctx, http.MethodGet, "/v1/loadtest/history", Params{
		{Key: "limit", Value: limit},
	}, nil)
}

// Delete removes a stored run and its results.
func (s *LoadTestService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Do(ctx, http.MethodDelete, "/v1/loadtest/"+url.PathEscape(id), nil, nil)
	return err
}
