package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Teams.WebhookURL != "https://outlook.office.com/webhook/abc" {
		t.Fatalf("unexpected Teams URL: %q", cfg.Teams.WebhookURL)
	}

	if got := cfg.Teams.PostTimeout; got != 10*time.Second {
		t.Fatalf("expected default post timeout 10s, got %v", got)
	}

	if cfg.Dashboard.BaseURL != "https://app.keygen.sh" {
		t.Fatalf("unexpected dashboard base url %q", cfg.Dashboard.BaseURL)
	}

	if cfg.Redis.Enabled() {
		t.Fatal("expected redis to be disabled without a url")
	}

	if got := cfg.Webhook.IdempotencyTTL; got != 24*time.Hour {
		t.Fatalf("expected default idempotency ttl 24h, got %v", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvTeamsWebhookURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvTeamsWebhookURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsNonHTTPWebhookURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvTeamsWebhookURL, "ftp://example.com/hook")

	if _, err := Load(); err == nil {
		t.Fatal("expected non-http webhook url to be rejected")
	}
}

func TestLoad_TrimsDashboardTrailingSlash(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDashboardBaseURL, "https://portal.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Dashboard.BaseURL != "https://portal.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Dashboard.BaseURL)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	dev := AppConfig{Env: "Development"}
	if !dev.IsDev() || dev.IsProd() {
		t.Fatal("expected development env helpers to match")
	}

	prod := AppConfig{Env: "PRODUCTION"}
	if !prod.IsProd() || prod.IsDev() {
		t.Fatal("expected production env helpers to match")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvAppPort, "8081")
	t.Setenv(EnvTeamsWebhookURL, "https://outlook.office.com/webhook/abc")
	os.Unsetenv(EnvRedisURL)
	os.Unsetenv(EnvDashboardBaseURL)
}
