package devsly

import (
	"context"
	"net/http"
)

// CodeAnalysisService exposes the code analysis endpoints.
type CodeAnalysisService struct {
	client *Client
}

// Analyze reports structural metrics for a source snippet.
func (s *CodeAnalysisService) Analyze(ctx context.Context, code, language string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/code/analyze", nil, map[string]any{
		"code":     code,
		"language": language,
	})
}

// Lint checks a source snippet for style and correctness issues.
func (s *CodeAnalysisService) Lint(ctx context.Context, code, language string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/code/lint", nil, map[string]any{
		"code":     code,
		"language": language,
	})
}

// SecurityScan checks a source snippet for known vulnerability patterns.
func (s *CodeAnalysisService) SecurityScan(ctx context.Context, code, language string) (Result, error) {
	return s.client.Do(ctx, http.MethodPost, "/v1/code/security", nil, map[string]any{
		"code":     code,
		"language": language,
	})
}
