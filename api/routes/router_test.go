package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/licensing-relay/internal/event"
	"github.com/angelmondragon/licensing-relay/pkg/config"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/metrics"
	"github.com/angelmondragon/licensing-relay/pkg/types"
)

type stubRelayService struct{}

func (stubRelayService) Relay(_ context.Context, env *event.Envelope) (*types.WebhookReceipt, error) {
	payload, err := env.Unwrap()
	if err != nil {
		return nil, err
	}
	return &types.WebhookReceipt{Received: true, Forwarded: true, DeliveryID: payload.DeliveryID}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "test", Port: "0"},
		Teams: config.TeamsConfig{WebhookURL: "https://example.com/webhook"},
	}
}

func newTestRouter(reg *prometheus.Registry) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		testConfig(),
		logg,
		nil, // redis pinger: guard disabled
		stubRelayService{},
		nil, // duplicate guard
		metrics.NewWebhookMetrics(reg),
		reg,
	)
}

func TestHealthRoutes(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestEventsRoute(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestWebhookRouteAcceptsDelivery(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	inner := `{"data":{"id":"lic_1","type":"licenses","attributes":{"status":"ACTIVE"}}}`
	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"id":   "whe_1",
			"type": "webhook-events",
			"attributes": map[string]any{
				"event":   "license.created",
				"payload": inner,
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/licensing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Data types.WebhookReceipt `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if !out.Data.Forwarded || out.Data.DeliveryID != "whe_1" {
		t.Fatalf("unexpected receipt %+v", out.Data)
	}
}

func TestWebhookRouteRejectsBadJSON(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/licensing", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestMetricsRoute(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a request id header")
	}
}
