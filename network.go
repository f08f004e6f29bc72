package devsly

import (
	"context"
	"net/http"
)

// NetworkService exposes the network diagnostic endpoints. It is a
// stateless adapter: every method packages its arguments into one API
// call; retry, auth, and parsing all happen in the request engine.
type NetworkService struct {
	client *Client
}

// Whois looks up WHOIS registration data for a domain.
func (s *NetworkService) Whois(ctx context.Context, domain string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/network/whois", nil, map[string]any{
		"domain": domain,
	})
}

// ScanPorts scans the given ports on a host. Ports travel in the
// request body, not the query string.
func (s *NetworkService) ScanPorts(ctx context.Context, host string, ports []int) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/network/port-scan", nil, map[string]any{
		"host":  host,
		"ports": ports,
	})
}

// Ping measures reachability and latency of a host.
func (s *NetworkService) Ping(ctx context.Context, host string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/network/ping", nil, map[string]any{
		"host": host,
	})
}

// DNSLookup resolves DNS records for a domain. recordType is e.g. "A",
// "AAAA", "MX", "TXT".
func (s *NetworkService) DNSLookup(ctx context.Context, domain, recordType string) (Result, error) {
	return s.client.Do(ctx, http.MethodGet, "/v1/network/dns", Params{
		{Key: "domain", Value: domain},
		{Key: "type", Value: recordType},
	}, nil)
}

// SSLInfo inspects the TLS certificate presented by a domain.
func (s *NetworkService) SSLInfo(ctx context.Context, domain string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/network/ssl", nil, map[string]any{
		"domain": domain,
	})
}
