package devsly

import (
	"errors"
	"fmt"

	"github.com/devsly/devsly-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when the server rejects the request
	// parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
)

// ErrorKind discriminates the HTTP-level error categories carried by
// [APIError].
type ErrorKind = api.ErrorKind

// HTTP-level error categories.
const (
	KindAPI            = api.KindAPI
	KindAuthentication = api.KindAuthentication
	KindRateLimit      = api.KindRateLimit
	KindValidation     = api.KindValidation
)

// DevslyError is implemented by all SDK errors.
type DevslyError interface {
	error
	DevslyError() // marker method
}

// ConfigurationError reports invalid or missing client configuration.
// It is returned before any network activity and is never retried.
type ConfigurationError struct {
	Message string
	Err     error // optional sentinel, e.g. ErrMissingAPIKey
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Message
}

// Unwrap returns the wrapped sentinel, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DevslyError implements the DevslyError interface.
func (e *ConfigurationError) DevslyError() {}

// NetworkError represents a transport-level failure (DNS, connect, TLS,
// timeout, unreadable response) that survived the retry budget.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DevslyError implements the DevslyError interface.
func (e *NetworkError) DevslyError() {}

// APIError represents an HTTP-level failure from the Devsly API:
// malformed JSON bodies, 404s, 5xx, and the classified authentication,
// rate-limit, and validation categories (see Kind). Catch the whole
// family with errors.As, or narrow with errors.Is against the
// sentinels.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string // server "error" field, e.g. RATE_LIMIT_EXCEEDED
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// DevslyError implements the DevslyError interface.
func (e *APIError) DevslyError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindRateLimit:
		return target == ErrRateLimited
	case KindValidation:
		return target == ErrInvalidRequest
	}
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	return false
}

// wrapError converts internal API errors to public errors so that
// errors.Is and errors.As work against the public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	var cfgErr *api.ConfigError
	if errors.As(err, &cfgErr) {
		return &ConfigurationError{Message: cfgErr.Message}
	}

	return err
}
