// Package api implements the HTTP request engine for the Devsly API.
// It builds request URLs, attaches authentication and content headers,
// executes each call with bounded retry and exponential backoff, and
// classifies responses into a success payload or a typed error.
//
// # Retry Behavior
//
// Only transport-level failures (connection refused, DNS, TLS,
// timeouts, unreadable bodies) are retried. A configured budget of N
// retries yields at most N+1 attempts with delays of 1s, 2s, 4s, ...
// between them. Once any HTTP response is obtained — regardless of
// status code — the result is classified and returned immediately;
// HTTP-level errors are never retried, so write endpoints cannot be
// duplicated by the engine.
//
// # Classification
//
// Error bodies carry optional "message" and "error" string fields.
// Classification checks, in order: rate limiting (429 or
// RATE_LIMIT_EXCEEDED), authentication (401 or UNAUTHORIZED),
// validation (400, BAD_REQUEST, or VALIDATION_ERROR), then not-found,
// server-error, and generic API errors. Every classified error carries
// the HTTP status code.
//
// # Thread Safety
//
// A [Client] holds no mutable state across calls; retry state is local
// to each Execute invocation. Multiple goroutines may call methods on a
// single Client simultaneously.
package api
