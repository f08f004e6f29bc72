package devsly

import (
	"context"
	"net/http"
)

// DevToolsService exposes the developer utility endpoints.
type DevToolsService struct {
	client *Client
}

// FormatJSON pretty-prints a JSON document with the given indent width.
func (s *DevToolsService) FormatJSON(ctx context.Context, input string, indent int) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/devtools/json/format", nil, map[string]any{
		"input":  input,
		"indent": indent,
	})
}

// EncodeBase64 encodes input as base64.
func (s *DevToolsService) EncodeBase64(ctx context.Context, input string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/devtools/base64/encode", nil, map[string]any{
		"input": input,
	})
}

// DecodeBase64 decodes a base64 string.
func (s *DevToolsService) DecodeBase64(ctx context.Context, input string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/devtools/base64/decode", nil, map[string]any{
		"input": input,
	})
}

// Hash digests input with the given algorithm, e.g. "sha256" or "md5".
func (s *DevToolsService) Hash(ctx context.Context, input, algorithm string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/devtools/hash", nil, map[string]any{
		"input":     input,
		"algorithm": algorithm,
	})
}

// GenerateUUIDs returns count server-generated UUIDs.
func (s *DevToolsService) GenerateUUIDs(ctx context.Context, count int) (Result, error) {
	return s.client.Do(ctx, http.MethodGet, "/v1/devtools/uuid", Params{
		{Key: "count", Value: count},
	}, nil)
}
