// Package devsly provides a Go client SDK for the Devsly API: network
// diagnostics, load testing, developer utilities, and code analysis.
//
// All computation happens server-side; the SDK builds requests,
// injects authentication headers, retries transient network failures
// with exponential backoff, and maps error responses onto typed errors.
//
// Basic usage:
//
//	client, err := devsly.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Network().Whois(ctx, "example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result["registrar"])
//
// The API key can also come from the DEVSLY_API_KEY environment
// variable via [NewFromEnv].
//
// # Error Handling
//
// Failures are typed: [ConfigurationError] before any network
// activity, [NetworkError] after the retry budget is exhausted, and
// [APIError] for HTTP-level errors. Narrow API errors with errors.Is:
//
//	if errors.Is(err, devsly.ErrRateLimited) {
//	    // back off and try later
//	}
//	if errors.Is(err, devsly.ErrUnauthorized) {
//	    // prompt for a new API key
//	}
//
// # Retry Behavior
//
// Only transport-level failures (connection refused, DNS, TLS,
// timeouts) are retried, with delays of 1s, 2s, 4s, ... up to the
// configured budget. HTTP error responses are never retried, so
// non-idempotent endpoints cannot be duplicated by the SDK. Bound
// total latency with context.WithTimeout; both requests and backoff
// waits honor cancellation.
package devsly
