package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Defaults applied by the public client layer.
const (
	DefaultBaseURL        = "https://devsly.io"
	DefaultTimeout        = 30 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultRetries        = 3
)

// Config holds the settings for a Client. All fields are validated by
// [NewClient]; the resulting Client is immutable and safe for
// concurrent use.
type Config struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration // total per-attempt timeout
	ConnectTimeout time.Duration // connection/TLS phase timeout
	Retries        int           // extra attempts beyond the first

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	UserAgent string
	Headers   map[string]string // merged over defaults, winning collisions

	// HTTPClient, when set, replaces the transport built from the
	// timeout and TLS settings above.
	HTTPClient *http.Client

	// Limiter, when set, gates every attempt (including retries).
	Limiter *rate.Limiter

	Logger  Logger
	Backoff *BackoffPolicy
}

// Client executes HTTP requests against the Devsly API with bounded
// retry on transport failures and typed classification of responses.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	headers    map[string]string
	httpClient *http.Client
	retries    int
	limiter    *rate.Limiter
	logger     Logger
	backoff    *BackoffPolicy
}

// NewClient validates cfg and creates a Client. Validation fails fast,
// before any network activity.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Message: "API key is required"}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if u, err := url.Parse(baseURL); err != nil || !u.IsAbs() || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return nil, &ConfigError{Message: fmt.Sprintf("base URL %q is not a valid absolute URL", baseURL)}
	}
	if cfg.Timeout <= 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("timeout must be positive, got %v", cfg.Timeout)}
	}
	if cfg.ConnectTimeout <= 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("connect timeout must be positive, got %v", cfg.ConnectTimeout)}
	}
	if cfg.Retries < 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("retries must not be negative, got %d", cfg.Retries)}
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		retries:   cfg.Retries,
		limiter:   cfg.Limiter,
		logger:    cfg.Logger,
		backoff:   cfg.Backoff,
	}
	if c.userAgent == "" {
		c.userAgent = "devsly-go"
	}
	if len(cfg.Headers) > 0 {
		c.headers = make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			c.headers[k] = v
		}
	}
	if c.logger == nil {
		c.logger = &NoopLogger{}
	}
	if c.backoff == nil {
		c.backoff = DefaultBackoffPolicy()
	}

	c.httpClient = cfg.HTTPClient
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: cfg.InsecureSkipVerify,
				},
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}

	return c, nil
}

// SetHTTPClient replaces the underlying HTTP client. Intended for tests
// and callers that need custom transports; not safe to call once
// requests are in flight.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the base URL with any trailing slash removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns the full header set sent with every request: the
// default headers with custom headers merged on top, custom winning on
// collision.
func (c *Client) Headers() map[string]string {
	h := map[string]string{
		"X-API-Key":    c.apiKey,
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   c.userAgent,
	}
	for k, v := range c.headers {
		h[k] = v
	}
	return h
}

// Execute performs one API call: it builds the URL, runs the request
// with bounded retry on transport failures, and classifies the
// response. The returned map is the decoded JSON body; non-2xx
// responses and malformed bodies come back as typed errors and are
// never retried.
func (c *Client) Execute(ctx context.Context, method, path string, query Params, body map[string]any) (map[string]any, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method %q", method)
	}

	reqURL := c.requestURL(path, query)

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	maxAttempts := c.retries + 1
	for attempt := 1; ; attempt++ {
		status, respBody, err := c.attempt(ctx, method, reqURL, payload)
		if err == nil {
			return c.classify(status, respBody)
		}

		// Transport failures are retried; a dead caller context is not
		// worth waiting out.
		if attempt >= maxAttempts || ctx.Err() != nil {
			return nil, &NetworkError{Err: err, URL: reqURL, Attempts: attempt}
		}
		c.logger.Warnf("%s %s attempt %d/%d failed, retrying in %v: %v",
			method, reqURL, attempt, maxAttempts, c.backoff.Delay(attempt), err)
		if werr := c.backoff.Wait(ctx, attempt); werr != nil {
			return nil, &NetworkError{Err: err, URL: reqURL, Attempts: attempt}
		}
	}
}

// requestURL joins the base URL and path with exactly one slash and
// appends the encoded query string when present.
func (c *Client) requestURL(path string, query Params) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if q := query.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// attempt performs one full request/response cycle. Any returned error
// is transport-level and subject to retry.
func (c *Client) attempt(ctx context.Context, method, reqURL string, payload []byte) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return 0, nil, err
	}
	for k, v := range c.Headers() {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.logger.Debugf("%s %s", method, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// classify maps a completed HTTP response onto a success payload or a
// typed API error. Empty and "null" bodies decode to an empty map so a
// bare status still classifies.
func (c *Client) classify(status int, body []byte) (map[string]any, error) {
	payload, err := decodeBody(body)
	if err != nil {
		return nil, &APIError{
			Kind:       KindAPI,
			StatusCode: status,
			Code:       CodeUnknown,
			Message:    fmt.Sprintf("invalid JSON response: %v", err),
		}
	}

	if status >= 200 && status < 300 {
		return payload, nil
	}

	message := stringField(payload, "message", "Unknown error")
	code := stringField(payload, "error", CodeUnknown)

	switch {
	case status == http.StatusTooManyRequests || code == CodeRateLimitExceeded:
		return nil, &APIError{Kind: KindRateLimit, StatusCode: status, Code: code, Message: message}
	case status == http.StatusUnauthorized || code == CodeUnauthorized:
		return nil, &APIError{Kind: KindAuthentication, StatusCode: status, Code: code, Message: message}
	case status == http.StatusBadRequest || code == CodeBadRequest || code == CodeValidationError:
		return nil, &APIError{Kind: KindValidation, StatusCode: status, Code: code, Message: message}
	case status == http.StatusNotFound:
		return nil, &APIError{Kind: KindAPI, StatusCode: status, Code: code, Message: "Resource not found: " + message}
	case status >= 500:
		return nil, &APIError{Kind: KindAPI, StatusCode: status, Code: code, Message: "Server error: " + message}
	default:
		return nil, &APIError{Kind: KindAPI, StatusCode: status, Code: code, Message: message}
	}
}

func decodeBody(body []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

func stringField(payload map[string]any, key, fallback string) string {
	if s, ok := payload[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
