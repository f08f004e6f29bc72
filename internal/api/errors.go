package api

import (
	"fmt"
)

// Server error codes returned in the "error" field of error bodies.
const (
	CodeUnknown           = "UNKNOWN_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeValidationError   = "VALIDATION_ERROR"
)

// ErrorKind discriminates the HTTP-level error categories. The base
// category is KindAPI; the others narrow it without a type hierarchy.
type ErrorKind string

const (
	// KindAPI is an unclassified HTTP-level failure: malformed JSON
	// body, 404, 5xx, or any other non-2xx status.
	KindAPI ErrorKind = "api"
	// KindAuthentication is a 401 or an UNAUTHORIZED error code.
	KindAuthentication ErrorKind = "authentication"
	// KindRateLimit is a 429 or a RATE_LIMIT_EXCEEDED error code.
	KindRateLimit ErrorKind = "rate_limit"
	// KindValidation is a 400 or a BAD_REQUEST/VALIDATION_ERROR code.
	KindValidation ErrorKind = "validation"
)

// ConfigError reports invalid client configuration. It is returned
// before any network activity and is never retried.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Message
}

// APIError represents an HTTP-level failure from the Devsly API.
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

// NetworkError represents a transport-level failure that survived the
// retry budget.
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
