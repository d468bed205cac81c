package main

import (
	"net/http"
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
)

// TestSmoke drives the public endpoints of a running server. It only
// runs when SMOKE_BASE_URL points at one, e.g.
// SMOKE_BASE_URL=http://localhost:8080 go test -run TestSmoke .
func TestSmoke(t *testing.T) {
	baseURL := os.Getenv("SMOKE_BASE_URL")
	if baseURL == "" {
		t.Skip("SMOKE_BASE_URL not set")
	}

	client := resty.New()
	client.SetBaseURL(baseURL)

	resp, err := client.R().Get("/health")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("GET /health = %d, want 200", resp.StatusCode())
	}

	resp, err = client.R().Get("/")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("GET / = %d, want 200", resp.StatusCode())
	}

	// Gated routes bounce anonymous clients to the login page.
	client.SetRedirectPolicy(resty.NoRedirectPolicy())
	resp, _ = client.R().Get("/folders")
	if resp.StatusCode() != http.StatusSeeOther {
		t.Errorf("GET /folders anonymous = %d, want 303", resp.StatusCode())
	}
}
