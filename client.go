package devsly

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/devsly/devsly-go/internal/api"
)

// EnvAPIKey is the environment variable read by [NewFromEnv].
const EnvAPIKey = "DEVSLY_API_KEY"

// Defaults applied when the corresponding option is not given.
const (
	DefaultBaseURL        = api.DefaultBaseURL
	DefaultTimeout        = api.DefaultTimeout
	DefaultConnectTimeout = api.DefaultConnectTimeout
	DefaultRetries        = api.DefaultRetries
)

// Result is the decoded JSON payload of a successful API call, passed
// through from the server unmodified.
type Result = map[string]any

// Param is a single query-string key/value pair.
type Param = api.Param

// Params is an ordered list of query parameters for [Client.Do].
type Params = api.Params

// Client is the Devsly API client. It is safe for concurrent use;
// configuration is immutable after construction.
type Client struct {
	api *api.Client

	network      *NetworkService
	loadTest     *LoadTestService
	devTools     *DevToolsService
	codeAnalysis *CodeAnalysisService
}

// New creates a client with the given API key. Configuration is
// validated here, before any network activity; an invalid combination
// returns a [ConfigurationError].
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "API key is required", Err: ErrMissingAPIKey}
	}

	cfg := &clientConfig{
		baseURL:        DefaultBaseURL,
		timeout:        DefaultTimeout,
		connectTimeout: DefaultConnectTimeout,
		retries:        DefaultRetries,
		headers:        make(map[string]string),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.userAgent == "" {
		cfg.userAgent = defaultUserAgent()
	}

	apiClient, err := api.NewClient(api.Config{
		APIKey:             apiKey,
		BaseURL:            cfg.baseURL,
		Timeout:            cfg.timeout,
		ConnectTimeout:     cfg.connectTimeout,
		Retries:            cfg.retries,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		UserAgent:          cfg.userAgent,
		Headers:            cfg.headers,
		HTTPClient:         cfg.httpClient,
		Limiter:            cfg.limiter,
		Logger:             cfg.logger,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	c := &Client{api: apiClient}
	c.network = &NetworkService{client: c}
	c.loadTest = &LoadTestService{client: c}
	c.devTools = &DevToolsService{client: c}
	c.codeAnalysis = &CodeAnalysisService{client: c}
	return c, nil
}

// NewFromEnv creates a client with the API key from the DEVSLY_API_KEY
// environment variable. A .env file in the working directory is loaded
// first if present.
func NewFromEnv(opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, &ConfigurationError{
			Message: EnvAPIKey + " environment variable is not set",
			Err:     ErrMissingAPIKey,
		}
	}
	return New(apiKey, opts...)
}

// Network returns the network diagnostics service.
func (c *Client) Network() *NetworkService {
	return c.network
}

// LoadTest returns the load testing service.
func (c *Client) LoadTest() *LoadTestService {
	return c.loadTest
}

// DevTools returns the developer utilities service.
func (c *Client) DevTools() *DevToolsService {
	return c.devTools
}

// CodeAnalysis returns the code analysis service.
func (c *Client) CodeAnalysis() *CodeAnalysisService {
	return c.codeAnalysis
}

// Do executes a raw API call. It is the escape hatch for endpoints not
// covered by the typed services; all typed methods funnel through it.
// Method must be one of GET, POST, PUT, DELETE; query is appended to
// the URL for GET/DELETE calls and body is JSON-encoded for POST/PUT.
func (c *Client) Do(ctx context.Context, method, path string, query Params, body map[string]any) (Result, error) {
	result, err := c.api.Execute(ctx, method, path, query, body)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
