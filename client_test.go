package devsly

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Fatal("expected error for empty API key")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigurationError", err)
	}
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Error("errors.Is(err, ErrMissingAPIKey) = false, want true")
	}
}

func TestNew_ValidatesConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero timeout", []Option{WithTimeout(0)}},
		{"zero connect timeout", []Option{WithConnectTimeout(0)}},
		{"negative retries", []Option{WithRetries(-1)}},
		{"invalid base URL", []Option{WithBaseURL("not-a-url")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test-key", tt.opts...)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error type = %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestNew_ServicesAvailable(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Network() == nil {
		t.Error("Network() is nil")
	}
	if client.LoadTest() == nil {
		t.Error("LoadTest() is nil")
	}
	if client.DevTools() == nil {
		t.Error("DevTools() is nil")
	}
	if client.CodeAnalysis() == nil {
		t.Error("CodeAnalysis() is nil")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		_, err := NewFromEnv()
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("error type = %T, want *ConfigurationError", err)
		}
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Error("errors.Is(err, ErrMissingAPIKey) = false, want true")
		}
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-API-Key") != "env-key" {
				t.Errorf("X-API-Key = %s, want env-key", r.Header.Get("X-API-Key"))
			}
			w.Write([]byte("{}"))
		}))
		defer server.Close()

		client, err := NewFromEnv(WithBaseURL(server.URL))
		if err != nil {
			t.Fatalf("NewFromEnv() error = %v", err)
		}
		if _, err := client.Do(context.Background(), "GET", "/v1/health", nil, nil); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
	})
}

func TestNew_DefaultUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		if !strings.HasPrefix(ua, "devsly-go/"+Version) {
			t.Errorf("User-Agent = %s, want devsly-go/%s prefix", ua, Version)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.Do(context.Background(), "GET", "/v1/health", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_WrapsEngineErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"slow down"}`))
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Do(context.Background(), "GET", "/v1/test", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Message != "slow down" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "slow down")
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false, want true")
	}
}

func TestDo_NetworkErrorAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := New("test-key",
		WithBaseURL(server.URL),
		WithRetries(0),
		WithTimeout(2*time.Second),
		WithConnectTimeout(time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Do(context.Background(), "GET", "/v1/test", nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error type = %T, want *NetworkError", err)
	}
	if netErr.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", netErr.Attempts)
	}
}
