//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	devsly "github.com/devsly/devsly-go"
)

var apiKey string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	_ = godotenv.Load("../.env")

	apiKey = os.Getenv("DEVSLY_API_KEY")
	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: DEVSLY_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *devsly.Client {
	t.Helper()

	opts := []devsly.Option{}
	if baseURL := os.Getenv("DEVSLY_URL"); baseURL != "" {
		opts = append(opts, devsly.WithBaseURL(baseURL))
	}

	client, err := devsly.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestDNSLookup(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := client.Network().DNSLookup(ctx, "example.com", "A")
	if err != nil {
		t.Fatalf("DNSLookup() error = %v", err)
	}
	if len(result) == 0 {
		t.Error("DNSLookup() returned an empty payload")
	}
}

func TestGenerateUUIDs(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := client.DevTools().GenerateUUIDs(ctx, 2)
	if err != nil {
		t.Fatalf("GenerateUUIDs() error = %v", err)
	}
	if len(result) == 0 {
		t.Error("GenerateUUIDs() returned an empty payload")
	}
}
