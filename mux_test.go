package mux

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestNewWiresServices(t *testing.T) {
	client := New("id", "secret")

	if client.Video == nil || client.Video.LiveStreams == nil || client.Video.Assets == nil {
		t.Fatal("video services not wired")
	}
	if client.Data == nil || client.Data.Metrics == nil || client.Data.VideoViews == nil {
		t.Fatal("data services not wired")
	}
}

func TestClientAgainstBackend(t *testing.T) {
	var gotPath, gotAuthID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthID, _, _ = r.BasicAuth()
		_, _ = w.Write([]byte(`{"data": {"id": "ls1"}}`))
	}))
	defer backend.Close()

	base, err := url.Parse(backend.URL)
	if err != nil {
		t.Fatal(err)
	}

	client := New("token_id", "token_secret", WithBaseURL(base))

	stream, err := client.Video.LiveStreams.Get(context.Background(), "ls1")
	if err != nil {
		t.Fatal(err)
	}

	if stream.ID != "ls1" {
		t.Errorf("wrong stream ID: got %q, want %q", stream.ID, "ls1")
	}
	if gotPath != "/video/v1/live-streams/ls1" {
		t.Errorf("wrong path: got %q", gotPath)
	}
	if gotAuthID != "token_id" {
		t.Errorf("wrong basic auth user: got %q", gotAuthID)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("MUX_TOKEN_ID", "env_id")
	t.Setenv("MUX_TOKEN_SECRET", "env_secret")
	t.Setenv("MUX_BASE_URL", "https://api.example.com")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if client.tx.TokenID != "env_id" {
		t.Errorf("wrong token ID: got %q", client.tx.TokenID)
	}
	if client.tx.Base.String() != "https://api.example.com" {
		t.Errorf("wrong base URL: got %q", client.tx.Base)
	}
}

func TestNewFromEnvMissingCredentials(t *testing.T) {
	t.Setenv("MUX_TOKEN_ID", "")
	t.Setenv("MUX_TOKEN_SECRET", "")

	if _, err := NewFromEnv(); err == nil {
		t.Error("expected an error, got none")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MUX_TOKEN_ID", "abc")
	t.Setenv("MUX_WEBHOOK_SECRET", "whsec")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TokenID != "abc" {
		t.Errorf("wrong token ID: got %q", cfg.TokenID)
	}
	if cfg.WebhookSecret != "whsec" {
		t.Errorf("wrong webhook secret: got %q", cfg.WebhookSecret)
	}
}
