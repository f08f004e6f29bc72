package devsly

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// clientConfig holds configuration for the client. Validation happens
// at construction, not here: options record values as given.
type clientConfig struct {
	baseURL            string
	timeout            time.Duration
	connectTimeout     time.Duration
	retries            int
	insecureSkipVerify bool
	userAgent          string
	headers            map[string]string
	httpClient         *http.Client
	limiter            *rate.Limiter
	logger             Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Default: https://devsly.io.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the total per-attempt request timeout. Default: 30s.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithConnectTimeout sets the connection-phase timeout. Default: 10s.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.connectTimeout = timeout
	}
}

// WithRetries sets the number of extra attempts beyond the first for
// transport-level failures. Default: 3. HTTP-level errors are never
// retried regardless of this setting.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Only
// for test environments with self-signed certificates.
func WithInsecureSkipVerify() Option {
	return func(c *clientConfig) {
		c.insecureSkipVerify = true
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithHeader adds a custom header sent with every request. Custom
// headers override the defaults on key collision.
func WithHeader(key, value string) Option {
	return func(c *clientConfig) {
		c.headers[key] = value
	}
}

// WithHeaders merges a set of custom headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient sets a custom HTTP client, replacing the transport
// built from the timeout and TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. The limiter gates every attempt, including retries.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used for request and retry logging.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
