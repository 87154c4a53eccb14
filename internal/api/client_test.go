package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	apierrors "github.com/diogo/geminirepl/internal/errors"
	"github.com/diogo/geminirepl/internal/models"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	if err == nil {
		t.Fatal("expected an error for an empty API key")
	}
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != models.DefaultModel {
		t.Errorf("expected default model, got %q", client.Model())
	}
	if client.baseURL != models.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.baseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", client.httpClient.Timeout)
	}
}

func TestClientOptions(t *testing.T) {
	httpClient := &http.Client{}
	client, err := NewClient("key",
		WithModel("pro"),
		WithHTTPClient(httpClient),
		WithTimeout(5*time.Second),
		WithBaseURL("http://localhost:9999"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.Model() != models.ModelPro {
		t.Errorf("expected alias 'pro' to resolve to %q, got %q", models.ModelPro, client.Model())
	}
	if client.httpClient != httpClient {
		t.Error("expected injected HTTP client")
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", client.httpClient.Timeout)
	}
	if client.baseURL != "http://localhost:9999" {
		t.Errorf("unexpected base URL %q", client.baseURL)
	}
}
